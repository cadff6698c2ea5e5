// Package logx configures goseq's structured logging.
//
// It provides zerolog constructors (JSON, console, no-op) and a
// sequence observer that reports pass and command events through a
// zerolog.Logger.
package logx
