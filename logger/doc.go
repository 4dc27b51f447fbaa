// Package logger provides structured logging for paycheck using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("payment")
//	log.Info("amount rejected", logger.Fields("amount", 100000))
package logger
