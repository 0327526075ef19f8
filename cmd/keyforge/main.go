package main

import (
	"errors"
	"os"

	"keyforge/cmd/keyforge/commands"
	"keyforge/internal/domain"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps caller mistakes to 2 and everything else to 1.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrInvalidSeed) || errors.Is(err, domain.ErrInvalidRequest) {
		return 2
	}
	return 1
}
