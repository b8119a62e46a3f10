// Package log provides the structured logging facade for contiguous-ds.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that preserves the
// formatter/outputs pipeline, so slog-aware libraries and this facade
// produce consistent output.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("contigset"))
//	l.Info("reconciled", log.Int("ops", 64))
//
// # Interop
//
// To capture output from libraries using the standard library's log package,
// use RedirectStdLog.
package log
