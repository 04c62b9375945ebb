package acl

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
	"github.com/PartTimeHarmacist/ServerStatusBot/logx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/ioutilx"
)

const fileIndent = "    "

// Store owns the permission document and its backing file. Mutations
// take the writer lock, persist the full document, and publish the new
// snapshot atomically; readers take whatever snapshot is current
// without locking.
type Store struct {
	path   string
	reader ioutilx.FileReader

	mu  sync.Mutex
	doc atomic.Pointer[Document]
}

func NewStore(path string, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s := &Store{
		path:   path,
		reader: o.reader,
	}
	s.doc.Store(NewDocument())
	return s
}

// Document returns the current in-memory snapshot. Snapshots are
// immutable; mutations replace the whole document.
func (s *Store) Document() *Document {
	return s.doc.Load()
}

// Load reads and parses the backing file without any recovery policy.
// A missing file yields statusbot.ErrPermissionsMissing after an empty
// placeholder has been created; the placeholder is deliberately left
// empty rather than populated with the default document, and an empty
// file parses as the default document on later loads.
func (s *Store) Load(logger logx.Logger) (*Document, error) {
	logger = logger.WithData(logx.Data{Key: "path", Value: s.path})

	data, err := s.reader.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if touchErr := s.touch(); touchErr != nil {
			logger.Error(failedToCreatePlaceholder, touchErr)
			return nil, statusbot.NewErrUnreadable("permissions file", touchErr)
		}
		return nil, statusbot.ErrPermissionsMissing
	case err != nil:
		return nil, statusbot.NewErrUnreadable("permissions file", err)
	}

	if len(data) == 0 {
		return NewDocument(), nil
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, statusbot.NewErrUnreadable("permissions file", err)
	}
	return doc, nil
}

// Bootstrap loads the backing file and applies the startup recovery
// policy: a missing file becomes the default empty document, a
// permission error is logged and the default document is used (locking
// out all non-admin actions until fixed), and any other read error is
// returned so the process can refuse to run with an undefined ACL.
func (s *Store) Bootstrap(logger logx.Logger) error {
	logger = logger.WithName("acl-store")
	logger.Debug(starting)

	doc, err := s.Load(logger)
	switch {
	case err == nil:
	case errors.Is(err, statusbot.ErrPermissionsMissing):
		logger.Info(createdPlaceholder, logx.Data{Key: "path", Value: s.path})
		doc = NewDocument()
	case errors.Is(err, fs.ErrPermission):
		logger.Error(failedToReadPermissions, err)
		doc = NewDocument()
	default:
		logger.Error(failedToReadPermissions, err)
		return err
	}

	s.doc.Store(doc)
	logger.Debug(finished)
	return nil
}

// Grant authorizes identity for action on target, creating the server
// entry and action key as needed, and persists the full document before
// returning.
func (s *Store) Grant(logger logx.Logger, target, action, identity string) error {
	return s.mutate(logger.WithName("grant"), func(doc *Document) {
		doc.EnsureEntry(target).Grant(action, identity)
	})
}

// Revoke removes identity from the action's set on target. Like Grant
// it materializes the entry and the action key, and persists before
// returning.
func (s *Store) Revoke(logger logx.Logger, target, action, identity string) error {
	return s.mutate(logger.WithName("revoke"), func(doc *Document) {
		doc.EnsureEntry(target).Revoke(action, identity)
	})
}

func (s *Store) mutate(logger logx.Logger, change func(*Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Load().Clone()
	change(doc)

	if err := s.save(logger, doc); err != nil {
		return err
	}

	s.doc.Store(doc)
	return nil
}

// save writes the serialized document to a temporary file in the same
// directory and renames it over the backing file, so a concurrent
// reader never observes a partial document.
func (s *Store) save(logger logx.Logger, doc *Document) error {
	data, err := Serialize(doc)
	if err != nil {
		logger.Error(failedToSerializePermissions, err)
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		logger.Error(failedToWritePermissions, err)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logger.Error(failedToWritePermissions, err)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		logger.Error(failedToWritePermissions, err)
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		logger.Error(failedToWritePermissions, err)
		return err
	}
	return nil
}

func (s *Store) touch() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Serialize renders the document in its persisted form: sorted keys,
// four-space indentation. The output is stable for identical content so
// the file diffs cleanly.
func Serialize(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", fileIndent)
}
