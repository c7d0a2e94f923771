// Package main provides the CLI entrypoint for wrapgen.
//
// wrapgen resolves the entities of a C++ wrapper package:
//   - Reads the package document and the declaration dump
//   - Resolves template instantiations from the headers
//   - Binds every entity to its declarations
//   - Orders classes so that bases and requirements come first
//   - Writes the header collection
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
