// Package config loads declarative logging setup from TOML documents
// and turns it into a logger.Config.
//
// A document declares named handlers and named loggers:
//
//	[handlers.console]
//	type = "console"
//	level = "DEBUG"
//	colors = "auto"
//
//	[handlers.file]
//	type = "rotating_file"
//	path = "/var/log/app.log"
//	mode = "append"
//	max_bytes = 1048576
//	max_backups = 5
//
//	[loggers.default]
//	level = "INFO"
//	handlers = ["console", "file"]
//
// Handler construction happens inside Build, so a bad rotating-file
// declaration fails the whole load with the handler's own error and
// leaves no file handle open.
package config
