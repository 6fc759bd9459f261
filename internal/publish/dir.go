package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/elevensolutions/whits/internal/errors"
)

// DirSink writes files below a local directory.
type DirSink struct {
	dir string
}

// NewDirSink creates a sink rooted at dir. The directory is created on
// the first write.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Dir returns the root directory.
func (s *DirSink) Dir() string {
	return s.dir
}

// Put writes data to name, creating parent directories.
func (s *DirSink) Put(ctx context.Context, name, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, err := cleanName(name)
	if err != nil {
		return err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.New(errors.CodeOutputWrite).WithFile(target).Wrap(err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.New(errors.CodeOutputWrite).WithFile(target).Wrap(err)
	}
	return nil
}

// Clean removes the output directory.
func (s *DirSink) Clean() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return errors.New(errors.CodeOutputWrite).WithFile(s.dir).Wrap(err)
	}
	return nil
}
