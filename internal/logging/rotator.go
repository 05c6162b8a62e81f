package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	logFilePerm = 0o600
	logDirPerm  = 0o755
)

// RotatorConfig configures a LogRotator.
type RotatorConfig struct {
	Dir  string
	Name string
	// MaxSize is the size in bytes at which the file is rotated.
	MaxSize int64
	// MaxBackups caps rotated files kept on disk; 0 keeps all.
	MaxBackups int
	// MaxAge removes rotated files older than this; 0 keeps all.
	MaxAge   time.Duration
	Compress bool
}

// LogRotator is an io.WriteCloser appending to Dir/Name and rotating the
// file once it would grow past MaxSize. Rotated files carry a timestamp
// suffix.
type LogRotator struct {
	mu   sync.Mutex
	cfg  RotatorConfig
	file *os.File
	size int64
	now  func() time.Time
}

// NewLogRotator opens (or creates) the current log file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("log file name is required")
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r := &LogRotator{cfg: cfg, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the current log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.Name)
}

func (r *LogRotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}
	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = file
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.cfg.MaxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.cfg.MaxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := fmt.Sprintf("%s.%s", r.Path(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.cfg.Compress {
		// A failed compression leaves the plain backup in place.
		if err := compressFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}

	r.prune()
	return r.open()
}

func compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// prune removes expired and excess backups, oldest first.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	now := r.now()
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.cfg.Name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.cfg.MaxAge > 0 && now.Sub(info.ModTime()) > r.cfg.MaxAge {
			_ = os.Remove(filepath.Join(r.cfg.Dir, e.Name()))
			continue
		}
		backups = append(backups, backup{name: e.Name(), mod: info.ModTime()})
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int {
		if c := a.mod.Compare(b.mod); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range backups[:len(backups)-r.cfg.MaxBackups] {
		_ = os.Remove(filepath.Join(r.cfg.Dir, b.name))
	}
}

// Close implements io.Closer.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
