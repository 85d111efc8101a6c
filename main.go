package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
