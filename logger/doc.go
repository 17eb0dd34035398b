// Package logger is the public API of rotolog. Most users only need
// to import this package.
//
// A Logger is a named entry point that gates records by its severity
// threshold and fans them out to an ordered list of handlers. Loggers
// live in a Manager, which maps logger names to loggers and handler
// names to handlers; Configure wires the two together declaratively:
//
//	fh, err := filehandler.NewFileHandler(filehandler.Config{
//	    Path: "app.log", MaxBytes: 1 << 20, MaxBackups: 5,
//	})
//	if err != nil { ... }
//	err = logger.Setup(logger.Config{
//	    Handlers: map[string]handler.Handler{"file": fh},
//	    Loggers: map[string]logger.LoggerConfig{
//	        "default": {Level: "INFO", Handlers: []string{"file"}},
//	    },
//	})
//
// The package keeps one default Manager so simple programs can call
// logger.Info(...) without any setup; programs that care about
// construction order or test isolation create their own Manager and
// pass it around explicitly.
//
// Log calls return the resolved message, so a logger can sit inline in
// a data flow (`x, _ = log.Info(x)`), and they return handler errors
// instead of swallowing them — log delivery failure is caller-visible.
//
// Level checks happen before anything else, so a filtered-out call
// costs one comparison and never evaluates a core.Deferred message
// producer.
package logger
