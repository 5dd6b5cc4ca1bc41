package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when a host OS or target triple is not in the recognized set.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrMissingEnvironment is returned when a required environment variable is absent.
	ErrMissingEnvironment = zerr.New("missing environment variable")

	// ErrCommandFailed is returned when an external process exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrIO is returned when a filesystem operation fails or a process cannot be started.
	ErrIO = zerr.New("io failure")
)
