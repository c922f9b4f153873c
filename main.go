package main

import (
	"os"

	"github.com/praxislearn/praxis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
