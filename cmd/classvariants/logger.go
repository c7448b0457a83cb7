package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger. Verbose enables debug events, quiet
// silences everything. Diagnostics go to stderr so they never pollute
// resolved output on stdout.
func newLogger(verbose, quiet bool) zerolog.Logger {
	if quiet {
		return zerolog.New(io.Discard)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.NewConsoleWriter()
	console.Out = os.Stderr
	console.TimeFormat = time.Kitchen

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// cliLogger returns the logger configured from koanf state.
func cliLogger() zerolog.Logger {
	return newLogger(
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
	)
}
