package main

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitLimit       = 3 // expansion budget exhausted
	ExitCancelled   = 4
	ExitConfigError = 10
	ExitMazeError   = 11
)

var (
	errConfig = errors.New("configuration error")
	errMaze   = errors.New("maze error")
	errUsage  = errors.New("usage error")
)

// exitCode maps err onto one of the Exit* codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, search.ErrExpansionLimit):
		return ExitLimit
	case errors.Is(err, errConfig), errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, errMaze):
		return ExitMazeError
	default:
		return ExitError
	}
}

// handleError prints err on the command's error stream and returns the exit code.
func handleError(cmd *cobra.Command, err error) int {
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}

	return exitCode(err)
}
