package main

import "errors"

var (
	// ErrUsage occurs when a command is invoked with wrong arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownCommand occurs when the requested command does not exist.
	ErrUnknownCommand = errors.New("unknown command")
)
