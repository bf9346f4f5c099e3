// Package logger provides a structured logging facility based on Zap.
//
// It builds the process logger from configuration (development vs production
// presets, console or JSON encoding) and offers helpers that scope a logger
// to a request or a guild.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber
// context, so that every entry written while serving one HTTP request can be
// correlated. WithGuild tags entries produced during a reconciliation pass
// with the guild id.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Bot connected")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Apply failed", zap.Error(err))
package logger
