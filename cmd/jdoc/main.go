// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jdoc parses, prints, and validates JSON documents.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/creachadair/jdoc/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.Env{}).Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
