package filehandler

import (
	"os"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/formatter"
	"github.com/philipp01105/rotolog/handler"
)

// Sentinel errors for construction failures. Callers match them with
// errors.Is.
var (
	// ErrInvalidConfiguration reports MaxBytes or MaxBackups below 1,
	// a missing path, or an unknown open mode.
	ErrInvalidConfiguration = errors.New("invalid file handler configuration")
	// ErrBackupCollision reports exclusive-create mode finding backup
	// files left over from a previous run.
	ErrBackupCollision = errors.New("backup file already exists")
)

// OpenMode selects how the primary log file is opened.
type OpenMode string

const (
	// ModeAppend opens or creates the file and appends; existing
	// content seeds the size counter.
	ModeAppend OpenMode = "append"
	// ModeTruncate opens or creates the file, truncates existing
	// content, and deletes stale backups from prior runs.
	ModeTruncate OpenMode = "truncate"
	// ModeExclusive creates the file, failing if the primary or any
	// backup already exists.
	ModeExclusive OpenMode = "exclusive"
)

// Config holds configuration for the rotating file handler
type Config struct {
	// Path is the primary log file; backups live at Path.1 .. Path.MaxBackups
	Path string
	// Mode selects the open behavior (default: ModeAppend)
	Mode OpenMode
	// MaxBytes is the size a write may not push the file past (>= 1)
	MaxBytes int64
	// MaxBackups is the number of rotated files to retain (>= 1)
	MaxBackups int
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the handler's own severity threshold
	Level core.Level
}

// RotatingFileHandler writes formatted records to a file, rotating it
// into numbered backups once a write would cross MaxBytes.
type RotatingFileHandler struct {
	handler.Base

	path       string
	maxBytes   int64
	maxBackups int

	mu          sync.Mutex // serializes emit, rotate, and Close
	file        *os.File   // nil once closed or after a failed rotation
	currentSize int64      // bytes written since the file was (re)opened
	closed      chan struct{}
}

// NewFileHandler creates a rotating file handler, opening the primary
// file according to cfg.Mode. A constructor failure never leaves an
// open file handle behind.
func NewFileHandler(cfg Config) (*RotatingFileHandler, error) {
	if cfg.Path == "" {
		return nil, errors.Wrap(ErrInvalidConfiguration, "path is required")
	}
	if cfg.MaxBytes < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "max bytes %d", cfg.MaxBytes)
	}
	if cfg.MaxBackups < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "max backups %d", cfg.MaxBackups)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeAppend
	}

	h := &RotatingFileHandler{
		Base:       handler.NewBase(cfg.Level, cfg.Formatter),
		path:       cfg.Path,
		maxBytes:   cfg.MaxBytes,
		maxBackups: cfg.MaxBackups,
		closed:     make(chan struct{}),
	}

	switch cfg.Mode {
	case ModeAppend:
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		// Initial size recovery: the one stat this handler ever does.
		info, err := file.Stat()
		if err != nil {
			file.Close()
			return nil, err
		}
		h.file = file
		h.currentSize = info.Size()

	case ModeTruncate:
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, err
		}
		// The primary has been reset; stale backups from a prior run
		// must not accumulate next to it.
		for i := 1; i <= cfg.MaxBackups; i++ {
			if err := os.Remove(h.backupPath(i)); err != nil && !os.IsNotExist(err) {
				file.Close()
				return nil, err
			}
		}
		h.file = file

	case ModeExclusive:
		// Collision check runs before anything is opened, so a failure
		// here cannot leak a handle.
		for i := 1; i <= cfg.MaxBackups; i++ {
			if _, err := os.Stat(h.backupPath(i)); err == nil {
				return nil, errors.Wrapf(ErrBackupCollision, "%s", h.backupPath(i))
			} else if !os.IsNotExist(err) {
				return nil, err
			}
		}
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		h.file = file

	default:
		return nil, errors.Wrapf(ErrInvalidConfiguration, "open mode %q", cfg.Mode)
	}

	return h, nil
}

// Handle gates the record by the handler's threshold, formats it, and
// writes it to the file, rotating first if the write would cross the
// size limit.
func (h *RotatingFileHandler) Handle(record *core.Record) error {
	if !h.Enabled(record.Level) {
		return nil
	}
	line, err := h.Format(record)
	if err != nil {
		return err
	}
	return h.emit(line)
}

// emit appends one encoded line to the file. currentSize always equals
// the bytes written to the currently open file, so no stat is needed
// to decide when to rotate.
func (h *RotatingFileHandler) emit(line []byte) error {
	encoded := append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		// Either Close ran or a previous rotation failed; surface it.
		return errors.Wrapf(os.ErrClosed, "log file %s", h.path)
	}

	if h.currentSize+int64(len(encoded)) > h.maxBytes {
		if err := h.rotate(); err != nil {
			return err
		}
	}

	n, err := h.file.Write(encoded)
	h.currentSize += int64(n)
	return err
}

// rotate shifts the backup chain and reopens a fresh primary file.
// Callers hold h.mu. On any failure the handler is left with no open
// file and the error is returned unmasked; there is no retry.
func (h *RotatingFileHandler) rotate() error {
	file := h.file
	h.file = nil
	if err := file.Close(); err != nil {
		return err
	}

	// Highest index first: renaming path.(maxBackups-1) onto
	// path.maxBackups evicts the oldest backup, and working downward
	// guarantees no rename overwrites a not-yet-moved backup.
	for i := h.maxBackups - 1; i >= 0; i-- {
		src := h.path
		if i > 0 {
			src = h.backupPath(i)
		}
		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		if err := os.Rename(src, h.backupPath(i+1)); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	h.file = file
	h.currentSize = 0
	return nil
}

// Close closes the underlying file. Calling it twice is a no-op.
func (h *RotatingFileHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	file := h.file
	h.file = nil
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (h *RotatingFileHandler) backupPath(i int) string {
	return h.path + "." + strconv.Itoa(i)
}
