// Package logging builds the process logger.
//
// Every logger is a log/slog logger whose handler redacts key material and
// fingerprints session identifiers before records reach the output.
package logging
