// Package logging provides structured logging for facetdrawer sessions.
//
// This package wraps Go's log/slog to provide JSON-formatted logs. The
// interactive drawer owns the terminal, so logs always go to a file
// ({log dir}/debug.log) while the TUI is running.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The catalog watcher
// logs from its own goroutine while the Bubbletea loop logs from another.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("filter changed", "category", "color", "values", []string{"Red"})
//
// # Context Propagation
//
//	runLogger := logger.WithSession(logging.NewSessionID())
//	panelLogger := runLogger.WithComponent("panel")
//	panelLogger.Debug("drawer visibility changed", "from", "closed", "to", "open")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"drawer visibility changed","session_id":"6f1c...","component":"panel","from":"closed","to":"open"}
//
// # Testing
//
// Use [NopLogger] to get a logger that discards all output, or
// [NewWriterLogger] over a buffer to assert on the lines a component writes.
package logging
