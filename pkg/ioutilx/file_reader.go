package ioutilx

import "os"

//go:generate counterfeiter . FileReader

// FileReader is the read seam for code whose recovery policy depends on
// the kind of failure the filesystem reports.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type InjectableIOReader struct{}

func (InjectableIOReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
