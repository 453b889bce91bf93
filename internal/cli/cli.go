// Package cli implements the marquee command-line interface.
//
// The root command runs the poster carousel TUI. The frames subcommand
// prints the spring animation of the active index frame by frame without
// opening the TUI, which helps when tuning the [spring] settings.
//
// # Logging
//
// The TUI owns the terminal, so it logs to a file (log_file in the config,
// or the XDG state directory). Other commands log to stderr. --verbose (-v)
// switches either to debug level. Loggers are passed through
// context.Context.
package cli
