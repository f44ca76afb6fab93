// Package logging provides structured logging for promock.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context-aware logging with entity IDs and test names
//   - Configurable log levels (debug, info, warn, error)
//   - A discarding logger for engines that should stay silent
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "text",
//	})
//
//	logger.Debug("entity overridden",
//	    "entity_id", id,
//	    "mode", "partial",
//	)
//
//	ctx := logging.WithTestName(context.Background(), t.Name())
//	logger.WithContext(ctx).Debug("restored")
//
// Output goes to os.Stderr unless Config.Writer is set.
package logging
