// Package ui renders the output of learnquest's non-interactive commands.
//
// Unlike the full-screen TUI, these components print once and exit:
//
//   - Printer: header, success and error boxes written to any io.Writer
//   - CrystalCard: a crystal's details with its markdown description
//     rendered by glamour
//   - StepList: per-action progress for the script command
//   - PlaybackModel: a small Bubble Tea program showing a bar while a tone
//     plays
//
// Widths come from golang.org/x/term and are clamped to a readable range.
// When stdout is not a terminal, callers should pass StyleNoTTY so the
// markdown output stays free of escape codes.
//
// # Logging Integration
//
// Logging is controlled by LEARNQUEST_LOG_LEVEL. When it is unset the zap
// logger is silent, so only the curated output reaches the terminal.
package ui
