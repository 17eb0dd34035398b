// Package formatter defines how log records are serialized into bytes.
//
// The Formatter interface produces one formatted line per record,
// without a trailing line terminator — each handler owns its own
// terminator (the console handler appends a newline, the rotating file
// handler encodes one into its size accounting).
//
// The built-in TextFormatter emits the default line shape
//
//	[<RFC3339 timestamp>][<LEVEL>][<logger name>] <message>
//
// with any record arguments appended space-separated after the
// message. It uses a pooled bytes.Buffer and time.AppendFormat to keep
// the common path allocation-light. Buffers larger than 64 KiB are not
// returned to the pool so a single huge line cannot permanently
// inflate memory usage.
package formatter
