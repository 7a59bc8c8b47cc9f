// Package logging provides structured logging for learnquest.
//
// This package wraps a zap logger with convenience functions and a handful of
// domain helpers for the events worth recording: tab switches, crystal
// selections, celebrations and tones that could not be played.
//
// # Silent by Default
//
// The interactive UI draws on stdout, so nothing is logged unless a level is
// requested with --log-level or LEARNQUEST_LOG_LEVEL. Pair it with --log-file
// (or LEARNQUEST_LOG_FILE) when running the UI:
//
//	LEARNQUEST_LOG_LEVEL=debug LEARNQUEST_LOG_FILE=/tmp/lq.log learnquest
//
// # Configuration
//
//	if err := logging.Initialize(logging.Options{Level: "debug"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
