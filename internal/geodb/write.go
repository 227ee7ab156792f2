package geodb

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/meguca/geolocdb/internal/ioctx"
	"github.com/meguca/geolocdb/internal/progress"
)

// writeFile streams body into a temporary file next to dest and renames it
// over dest once complete. dest is left untouched on failure.
// If dest is a symlink the file it points to is replaced, and an existing
// file keeps its permissions.
func writeFile(ctx context.Context, dest string, body io.ReadCloser, size int64, visible bool) (n int64, err error) {
	mode := os.FileMode(0o644)
	if resolved, evalErr := filepath.EvalSymlinks(dest); evalErr == nil {
		dest = resolved
		if info, statErr := os.Stat(dest); statErr == nil {
			mode = info.Mode().Perm()
		}
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bar := progress.NewBytesBar(size, "Downloading", visible)
	n, err = io.Copy(io.MultiWriter(tmp, bar), ioctx.NewReadCloser(ctx, body))
	_ = bar.Close()
	if err != nil {
		return n, fmt.Errorf("failed to write to file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		return n, fmt.Errorf("failed to flush file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return n, fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return n, fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), dest); err != nil {
		return n, fmt.Errorf("failed to move file: %w", err)
	}

	return n, nil
}
