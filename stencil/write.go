package stencil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/teranos/stencil/casing"
	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/logger"
)

// FileExtension is the extension of generated files.
const FileExtension = "php"

// DefaultFilePermissions applies to newly created class files.
const DefaultFilePermissions = 0o644

// WriteStatus reports what Write did.
type WriteStatus uint8

const (
	// Created means the file did not exist and was written
	Created WriteStatus = iota + 1
	// Skipped means a file already existed at the path and was left untouched
	Skipped
)

func (s WriteStatus) String() string {
	switch s {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// FileName returns the generated file name, e.g. "User.php".
func (c *Class) FileName() string {
	return casing.ToPascal(c.fileBase) + "." + FileExtension
}

// FilePath returns the target path of the class file inside dir.
func (c *Class) FilePath(dir string) string {
	return filepath.Join(dir, c.FileName())
}

// Write writes the rendered class into dir on the OS filesystem.
// See WriteTo.
func (c *Class) Write(dir string) (WriteStatus, error) {
	return c.WriteTo(afero.NewOsFs(), dir)
}

// WriteTo writes the rendered class into dir on fs. An existing file is
// never overwritten: WriteTo returns Skipped and leaves it alone.
//
// A failed write removes the partial file. The existence check and the
// exclusive create are separate steps; a
// concurrent writer creating the same file in between also yields Skipped.
// Callers that need a single winner must serialize writes per path.
func (c *Class) WriteTo(fs afero.Fs, dir string) (WriteStatus, error) {
	path := c.FilePath(dir)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to check %s", path)
	}
	if exists {
		logger.Debugw("Class file exists, skipping",
			logger.FieldClass, c.className,
			logger.FieldPath, path,
			logger.FieldStatus, Skipped.String())
		return Skipped, nil
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return Skipped, nil
		}
		return 0, errors.Wrapf(err, "failed to create %s", path)
	}

	if _, err := f.WriteString(c.Render()); err != nil {
		f.Close()
		return 0, discard(fs, path, errors.Wrapf(err, "failed to write %s", path))
	}
	if err := f.Close(); err != nil {
		return 0, discard(fs, path, errors.Wrapf(err, "failed to close %s", path))
	}

	logger.Debugw("Class file written",
		logger.FieldClass, c.className,
		logger.FieldPath, path,
		logger.FieldStatus, Created.String())
	return Created, nil
}

// discard removes a partly written file so a later write can recreate it.
func discard(fs afero.Fs, path string, cause error) error {
	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.WithDetailf(cause, "partial file %s could not be removed: %v", path, err)
	}
	return cause
}
