package main

import (
	"os"

	"github.com/abhisek/triclass/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
