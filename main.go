package main

import (
	"os"

	"github.com/gridlearn/gridlearn/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
