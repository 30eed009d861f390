package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/odmoptions/internal/ctxlog"
)

// Emit writes payload followed by a newline to w. When dest is not empty the
// payload also replaces the file at dest. Nothing reaches w if the file could
// not be written.
func Emit(ctx context.Context, w io.Writer, dest string, payload []byte) error {
	logger := ctxlog.FromContext(ctx)
	if dest != "" {
		if err := writeFileAtomic(dest, payload); err != nil {
			return err
		}
		logger.Info("Option table written.", "path", dest, "bytes", len(payload))
	}

	line := append(append(make([]byte, 0, len(payload)+1), payload...), '\n')
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("writing option table: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
