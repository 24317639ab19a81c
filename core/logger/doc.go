// Package logger provides a structured logging facility based on Zap.
//
// The sync command uses it for per-record progress lines and the final run summary,
// and the history API uses it for request logging.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (human readable, colored levels) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Record uploaded", zap.String("company", "Acme"))
//
//	// In a request handler:
//	l := logger.WithRequestID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
