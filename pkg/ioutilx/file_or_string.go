// Package ioutilx holds small file helpers shared by the command
// binaries.
package ioutilx

import (
	"fmt"
	"os"
	"strings"
)

// FileOrString is a configuration value that may be either a literal
// string or the path of a file holding the string. A value that stats
// as a regular file is read; anything else is taken literally, with
// escaped newlines expanded.
type FileOrString string

func (f FileOrString) Bytes() ([]byte, error) {
	value := string(f)

	stat, err := os.Stat(value)
	if err != nil {
		return []byte(strings.ReplaceAll(value, "\\n", "\n")), nil
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path '%s' is a directory, not a file", value)
	}

	return os.ReadFile(value)
}
