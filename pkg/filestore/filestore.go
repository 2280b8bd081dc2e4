// Package filestore stores uploaded files on the shared data volume and keeps
// the group-writable permissions that the web and worker processes rely on.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"plasmodocking/pkg/logger"

	"go.uber.org/zap"
)

// SharedDirMode is applied to every directory created on the data volume:
// group writable with the setgid bit so new entries inherit the group.
const SharedDirMode os.FileMode = 0o775 | os.ModeSetgid

// ErrInvalidName is returned for file names that are empty or refer to a directory.
var ErrInvalidName = errors.New("invalid file name")

// EnsureDir creates dir and its parents, then applies SharedDirMode. Failing
// to change the mode is logged and ignored.
func EnsureDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o775); err != nil { //nolint: gosec
		return fmt.Errorf("could not create directory %s: %w", dir, err)
	}

	Chmod(ctx, dir)

	return nil
}

// Chmod applies SharedDirMode to dir on a best-effort basis.
func Chmod(ctx context.Context, dir string) {
	if err := os.Chmod(dir, SharedDirMode); err != nil {
		logger.Warn(ctx, "could not change directory mode", zap.String("dir", dir), zap.Error(err))
	}
}

// BaseName returns the last element of an uploaded file name, accepting
// both slash styles since browsers may send client paths.
func BaseName(name string) (string, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return base, nil
}

// Save writes r into dir under the base name of name and returns the full
// path of the stored file. Existing files are overwritten.
func Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	base, err := BaseName(name)
	if err != nil {
		return "", err
	}

	if err := EnsureDir(ctx, dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, base)
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o664) //nolint: gosec
	if err != nil {
		return "", fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("could not close %s: %w", path, err)
	}

	return path, nil
}
