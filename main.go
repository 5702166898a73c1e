package main

import (
	"os"

	"github.com/feonix-uav/configuranator/cmd"
	"github.com/feonix-uav/configuranator/internal/errors"
	"github.com/feonix-uav/configuranator/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.UserError("%v", err)
		os.Exit(errors.GetExitCode(err))
	}
}
