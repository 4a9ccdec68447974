// Package logger provides structured logging utilities built on Go's standard
// slog package: an option-driven factory for environment-specific loggers and
// a set of attribute helpers shared by the PDI client packages.
//
// # Basic Usage
//
//	import "github.com/meupdi/pdi/core/logger"
//
//	// Development: text format, debug level, stderr
//	log := logger.New(logger.WithDevelopment("pdi"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("pdi"),
//		logger.WithLevel(slog.LevelWarn),
//	)
//
//	log.Info("session refreshed",
//		logger.Component("apiclient"),
//		logger.RequestID(id),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for zero inputs where that makes sense, so
// calls like log.Warn("refresh failed", logger.Error(err)) need no nil checks.
// Credentials are never logged; use HasToken to record whether one was present.
//
// Nop returns a logger that discards everything and is the default for every
// component that accepts a *slog.Logger option.
package logger
