package logger

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/rotolog/handler"
)

// ErrMissingHandler reports a logger configuration that references a
// handler name that is neither part of the same Configure call nor
// previously registered.
var ErrMissingHandler = errors.New("missing handler")

// Config is the declarative configuration shape accepted by Configure.
type Config struct {
	// Handlers maps handler names to constructed handler instances.
	Handlers map[string]handler.Handler
	// Loggers maps logger names to their level and handler references.
	Loggers map[string]LoggerConfig
}

// LoggerConfig describes one logger entry in a Config.
type LoggerConfig struct {
	// Level is the severity name for the logger's threshold.
	Level string
	// Handlers lists handler names in fan-out order.
	Handlers []string
}

// Manager is the process-scoped registry mapping logger names to
// loggers and handler names to handlers. Configuration typically runs
// once at process start (single writer); reads afterward come from
// arbitrary goroutines, so the maps sit behind an RWMutex.
type Manager struct {
	mu       sync.RWMutex
	loggers  map[string]*Logger
	handlers map[string]handler.Handler
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		loggers:  make(map[string]*Logger),
		handlers: make(map[string]handler.Handler),
	}
}

// GetLogger returns the named logger, creating it with threshold
// NOTSET and no handlers if absent. Idempotent: the same name always
// yields the same instance.
func (m *Manager) GetLogger(name string) *Logger {
	m.mu.RLock()
	l, ok := m.loggers[name]
	m.mu.RUnlock()
	if ok {
		return l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.loggers[name]; ok {
		return l
	}
	l = New(name)
	m.loggers[name] = l
	return l
}

// GetHandler returns a registered handler by name.
func (m *Manager) GetHandler(name string) (handler.Handler, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.handlers[name]
	return h, ok
}

// Configure applies a declarative configuration. It may be called
// repeatedly; each call adds or replaces entries. Handler references
// are resolved against the handlers of this call plus everything
// registered before, and the whole call is validated before any
// logger is touched, so a MissingHandler failure leaves the loggers
// unchanged.
func (m *Manager) Configure(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, h := range cfg.Handlers {
		m.handlers[name] = h
	}

	resolved := make(map[string][]handler.Handler, len(cfg.Loggers))
	levels := make(map[string]Level, len(cfg.Loggers))
	for name, lc := range cfg.Loggers {
		level, err := ParseLevel(lc.Level)
		if err != nil {
			return err
		}
		levels[name] = level

		hs := make([]handler.Handler, 0, len(lc.Handlers))
		for _, ref := range lc.Handlers {
			h, ok := m.handlers[ref]
			if !ok {
				return errors.Wrapf(ErrMissingHandler, "logger %q references %q", name, ref)
			}
			hs = append(hs, h)
		}
		resolved[name] = hs
	}

	for name := range cfg.Loggers {
		l, ok := m.loggers[name]
		if !ok {
			l = New(name)
			m.loggers[name] = l
		}
		l.level = levels[name]
		l.setHandlers(resolved[name])
	}
	return nil
}

// Close closes every registered handler, keeping the first error. It
// is the documented shutdown point for file handlers; handler Close is
// idempotent, so calling this more than once is safe.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var first error
	for _, h := range m.handlers {
		if err := h.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
