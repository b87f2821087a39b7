// Package main is the entry point for the micropad application.
package main

import (
	"github.com/samber/lo"

	"github.com/micropad-cli/micropad/cmd"
	"github.com/micropad-cli/micropad/config"
	"github.com/micropad-cli/micropad/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
