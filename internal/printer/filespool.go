package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// fileSpool writes command streams into a spool directory, one file per job.
// A CUPS raw queue or a print daemon watching the directory picks them up.
type fileSpool struct {
	dir  string
	kind string
}

// NewFileSpool creates a Backend that spools jobs as .tspl files under dir.
// The directory is created if it does not exist.
func NewFileSpool(dir, kind string) (Backend, error) {
	if dir == "" {
		return nil, fmt.Errorf("spool dir is required")
	}
	if kind == "" {
		return nil, fmt.Errorf("printer kind is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &fileSpool{dir: dir, kind: kind}, nil
}

func (f *fileSpool) Kind() string { return f.kind }

// IsAvailable checks that the spool directory still exists and is a directory.
func (f *fileSpool) IsAvailable(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	st, err := os.Stat(f.dir)
	return err == nil && st.IsDir()
}

// Submit writes the stream under <dir>/<jobName>.tspl and returns the path.
// The write goes through a temp file and rename so the consumer never sees a
// partially written job.
func (f *fileSpool) Submit(ctx context.Context, jobName string, stream []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if jobName == "" {
		return "", fmt.Errorf("job name is required")
	}

	dst := filepath.Join(f.dir, jobName+".tspl")
	tmp, err := os.CreateTemp(f.dir, jobName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create spool file: %w", err)
	}
	if _, err := tmp.Write(stream); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write spool file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close spool file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish spool file: %w", err)
	}
	return dst, nil
}
