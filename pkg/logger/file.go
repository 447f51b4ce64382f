package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// fileWriter is a log file writer with size-based rotation.
// Rotated files are renamed to <name>.<timestamp><ext> and old backups pruned.
type fileWriter struct {
	// Filename is the file to write logs to
	Filename string

	// MaxSize is the maximum size in megabytes of the log file before rotation
	MaxSize int

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int

	mu   sync.Mutex
	file *os.File
	size int64
}

// Write implements io.Writer
func (w *fileWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := w.openFile(); err != nil {
			return 0, err
		}
	}

	if w.size+int64(len(p)) > w.maxBytes() {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// Close closes the current log file
func (w *fileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

func (w *fileWriter) maxBytes() int64 {
	if w.MaxSize <= 0 {
		return 100 * 1024 * 1024
	}
	return int64(w.MaxSize) * 1024 * 1024
}

func (w *fileWriter) openFile() error {
	f, err := os.OpenFile(w.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	w.file = f
	w.size = info.Size()
	return nil
}

func (w *fileWriter) rotate() error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return err
		}
		w.file = nil
	}

	backup := w.backupName(time.Now())
	if err := os.Rename(w.Filename, backup); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if err := w.pruneBackups(); err != nil {
		return err
	}

	return w.openFile()
}

func (w *fileWriter) backupName(t time.Time) string {
	dir := filepath.Dir(w.Filename)
	base := filepath.Base(w.Filename)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s.%s%s", prefix, t.Format("20060102-150405"), ext))
}

func (w *fileWriter) pruneBackups() error {
	if w.MaxBackups <= 0 {
		return nil
	}

	dir := filepath.Dir(w.Filename)
	base := filepath.Base(w.Filename)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var backups []string
	for _, e := range entries {
		name := e.Name()
		if name == base || e.IsDir() {
			continue
		}
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ext) {
			backups = append(backups, name)
		}
	}

	if len(backups) <= w.MaxBackups {
		return nil
	}

	// Timestamped names sort chronologically
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-w.MaxBackups] {
		_ = os.Remove(filepath.Join(dir, name))
	}
	return nil
}
