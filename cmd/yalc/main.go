package main

import (
	"os"

	"github.com/Henrik-Peters/Yalc/cmd/yalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
