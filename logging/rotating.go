package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	filePrefix = "atcmap-"
	fileSuffix = ".log"

	defaultMaxFileSize = 100 * 1024 * 1024
)

var numberedFileRegex = regexp.MustCompile(`^atcmap-\d{4}-W\d{2}_(\d{2})\.log$`)

// RotatingLogger is an io.Writer that writes to one file per ISO week,
// starting a numbered sibling when a file reaches its size limit.
type RotatingLogger struct {
	dir         string
	retention   time.Duration
	maxFileSize int64

	mu          sync.Mutex
	file        *os.File
	week        string
	size        atomic.Int64
	cleanupDone chan struct{}
	cancel      context.CancelFunc
	now         func() time.Time
}

// NewRotatingLogger creates a writer for dir. It does not open a file until
// the first write or an explicit Open.
func NewRotatingLogger(dir string, retentionWeeks int, maxFileSize int64) *RotatingLogger {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &RotatingLogger{
		dir:         dir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// weekKey returns the ISO week of t as YYYY-Www.
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Open creates the log directory and opens the file for the current week.
func (rl *RotatingLogger) Open() error {
	if err := os.MkdirAll(rl.dir, 0755); err != nil {
		return fmt.Errorf("create log directory %s: %w", rl.dir, err)
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.rotate(weekKey(rl.now()), false)
}

// rotate switches to the file for week. Caller holds mu.
func (rl *RotatingLogger) rotate(week string, full bool) error {
	if rl.file != nil {
		if err := rl.file.Close(); err != nil {
			slog.Warn("Failed to close log file during rotation", "error", err)
		}
		rl.file = nil
	}

	name := rl.pickFile(week, full)
	path := filepath.Join(rl.dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	rl.file = file
	rl.week = week
	rl.size.Store(0)
	if info, err := file.Stat(); err == nil {
		rl.size.Store(info.Size())
	}
	return nil
}

// pickFile returns the file to append to for week. When full is set the
// current file is known to be at its limit and the next numbered file is used.
func (rl *RotatingLogger) pickFile(week string, full bool) string {
	last, lastName, lastSize := rl.lastNumbered(week)
	switch {
	case full:
		return numberedName(week, last+1)
	case last > 0 && lastSize < rl.maxFileSize:
		return lastName
	case last > 0:
		return numberedName(week, last+1)
	}

	base := filePrefix + week + fileSuffix
	if info, err := os.Stat(filepath.Join(rl.dir, base)); err == nil && info.Size() >= rl.maxFileSize {
		return numberedName(week, 1)
	}
	return base
}

func numberedName(week string, n int) string {
	return fmt.Sprintf("%s%s_%02d%s", filePrefix, week, n, fileSuffix)
}

// lastNumbered finds the highest numbered file for week.
func (rl *RotatingLogger) lastNumbered(week string) (int, string, int64) {
	matches, _ := filepath.Glob(filepath.Join(rl.dir, filePrefix+week+"_??"+fileSuffix))

	highest := 0
	var name string
	var size int64
	for _, match := range matches {
		m := numberedFileRegex.FindStringSubmatch(filepath.Base(match))
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		if num <= highest {
			continue
		}
		highest = num
		name = filepath.Base(match)
		size = 0
		if info, err := os.Stat(match); err == nil {
			size = info.Size()
		}
	}
	return highest, name, size
}

// Write implements io.Writer.
func (rl *RotatingLogger) Write(p []byte) (int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	week := weekKey(rl.now())
	switch {
	case rl.file == nil || rl.week != week:
		if err := rl.rotate(week, false); err != nil {
			return 0, err
		}
	case rl.size.Load()+int64(len(p)) > rl.maxFileSize && rl.size.Load() > 0:
		if err := rl.rotate(week, true); err != nil {
			return 0, err
		}
	}

	n, err := rl.file.Write(p)
	rl.size.Add(int64(n))
	return n, err
}

// Cleanup removes log files last modified before the retention window.
// It returns the number of files removed.
func (rl *RotatingLogger) Cleanup() (int, error) {
	entries, err := os.ReadDir(rl.dir)
	if err != nil {
		return 0, fmt.Errorf("read log directory: %w", err)
	}

	cutoff := rl.now().Add(-rl.retention)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(rl.dir, name)) == nil {
			removed++
		}
	}
	return removed, nil
}

// StartCleanup runs Cleanup every interval until Close.
func (rl *RotatingLogger) StartCleanup(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	rl.cancel = cancel
	rl.cleanupDone = make(chan struct{})

	go func() {
		defer close(rl.cleanupDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := rl.Cleanup(); err != nil {
					// the logger may be writing to this file, so report on stderr
					fmt.Fprintf(os.Stderr, "log cleanup failed: %v\n", err)
				} else if n > 0 {
					fmt.Fprintf(os.Stderr, "removed %d old log files\n", n)
				}
			}
		}
	}()
}

// Close stops the cleanup goroutine and closes the current file.
func (rl *RotatingLogger) Close() error {
	if rl.cancel != nil {
		rl.cancel()
		<-rl.cleanupDone
		rl.cancel = nil
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.file == nil {
		return nil
	}
	err := rl.file.Close()
	rl.file = nil
	return err
}
