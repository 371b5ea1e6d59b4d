// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (sessions, keys, results), contracts (interfaces)
// and the sentinel errors every layer classifies failures with.
package domain
