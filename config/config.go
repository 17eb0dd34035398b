package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/handler"
	"github.com/philipp01105/rotolog/handler/consolehandler"
	"github.com/philipp01105/rotolog/handler/filehandler"
	"github.com/philipp01105/rotolog/logger"
)

// Document is the TOML shape of a logging configuration.
type Document struct {
	Handlers map[string]HandlerDecl `toml:"handlers"`
	Loggers  map[string]LoggerDecl  `toml:"loggers"`
}

// HandlerDecl declares one named handler.
type HandlerDecl struct {
	// Type is "console" or "rotating_file".
	Type string `toml:"type"`
	// Level is the handler threshold name (default "NOTSET").
	Level string `toml:"level"`

	// Colors applies to console handlers: "auto", "always", or
	// "never" (default "auto": colorize only when stdout is a TTY).
	Colors string `toml:"colors"`

	// Rotating file fields.
	Path       string `toml:"path"`
	Mode       string `toml:"mode"`
	MaxBytes   int64  `toml:"max_bytes"`
	MaxBackups int    `toml:"max_backups"`
}

// LoggerDecl declares one named logger.
type LoggerDecl struct {
	Level    string   `toml:"level"`
	Handlers []string `toml:"handlers"`
}

// Load reads a TOML file and builds the logger configuration.
func Load(path string) (logger.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Config{}, err
	}
	return Parse(data)
}

// Parse decodes a TOML document and builds the logger configuration.
func Parse(data []byte) (logger.Config, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return logger.Config{}, errors.Wrap(err, "decode logging config")
	}
	return Build(doc)
}

// Build constructs handlers from their declarations and assembles a
// logger.Config ready for Manager.Configure. On any failure, handlers
// constructed earlier in the same call are closed before returning.
func Build(doc Document) (logger.Config, error) {
	cfg := logger.Config{
		Handlers: make(map[string]handler.Handler, len(doc.Handlers)),
		Loggers:  make(map[string]logger.LoggerConfig, len(doc.Loggers)),
	}

	fail := func(err error) (logger.Config, error) {
		for _, h := range cfg.Handlers {
			h.Close()
		}
		return logger.Config{}, err
	}

	for name, decl := range doc.Handlers {
		h, err := buildHandler(name, decl)
		if err != nil {
			return fail(err)
		}
		cfg.Handlers[name] = h
	}

	for name, decl := range doc.Loggers {
		level := decl.Level
		if level == "" {
			level = "NOTSET"
		}
		cfg.Loggers[name] = logger.LoggerConfig{
			Level:    level,
			Handlers: decl.Handlers,
		}
	}
	return cfg, nil
}

func buildHandler(name string, decl HandlerDecl) (handler.Handler, error) {
	level := core.NotSet
	if decl.Level != "" {
		parsed, err := core.ParseLevel(decl.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "handler %q", name)
		}
		level = parsed
	}

	switch decl.Type {
	case "console":
		useColors, err := resolveColors(decl.Colors)
		if err != nil {
			return nil, errors.Wrapf(err, "handler %q", name)
		}
		return consolehandler.NewConsoleHandler(consolehandler.Config{
			Level:     level,
			UseColors: useColors,
		}), nil

	case "rotating_file":
		h, err := filehandler.NewFileHandler(filehandler.Config{
			Path:       decl.Path,
			Mode:       filehandler.OpenMode(decl.Mode),
			MaxBytes:   decl.MaxBytes,
			MaxBackups: decl.MaxBackups,
			Level:      level,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "handler %q", name)
		}
		return h, nil

	default:
		return nil, errors.Errorf("handler %q: unknown type %q", name, decl.Type)
	}
}

func resolveColors(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		return consolehandler.TerminalWriter(os.Stdout), nil
	default:
		return false, errors.Errorf("unknown color mode %q", mode)
	}
}
