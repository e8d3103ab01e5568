// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by the schedule view.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so that all logs related to a specific request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//   - File: optional rotating log file (lumberjack), always JSON encoded
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Sync started")
package logger
