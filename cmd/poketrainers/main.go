// Package main is the entry point for the poketrainers CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/poketrainers/internal/config"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/pkg/idgen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exit(err)
	}

	if err := newRootCmd(cfg, idgen.NewUUID("")).Execute(); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errors.GetCode(err).ExitStatus())
}
