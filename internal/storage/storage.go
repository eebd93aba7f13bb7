package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// DefaultPerm is used for created files when Config.Perm is zero.
const DefaultPerm os.FileMode = 0o644

// Config holds filesystem client configuration.
type Config struct {
	Fs   afero.Fs    // afero.NewOsFs() in production
	Perm os.FileMode // permissions for newly created files
}

// Client reads and writes whole files for fmu-uuid.
type Client struct {
	fs   afero.Fs
	perm os.FileMode
}

// New creates a new filesystem client.
func New(config Config) (*Client, error) {
	if config.Fs == nil {
		return nil, fmt.Errorf("filesystem is required")
	}

	perm := config.Perm
	if perm == 0 {
		perm = DefaultPerm
	}

	return &Client{
		fs:   config.Fs,
		perm: perm,
	}, nil
}

// Read returns the exact contents of the file at path.
func (c *Client) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, cause(err))
	}
	return data, nil
}

// Write replaces the contents of the file at path with data,
// creating the file if needed.
func (c *Client) Write(path string, data []byte) error {
	if err := afero.WriteFile(c.fs, path, data, c.perm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, cause(err))
	}
	return nil
}

// cause strips the *fs.PathError wrapper so the path is not repeated
// in the message. errors.Is still sees the underlying errno.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
