// Package errors provides the structured error type used across paycheck.
// Errors carry a machine-readable code, a human-readable message, an HTTP
// status hint and optional details, following RFC 7807.
package errors
