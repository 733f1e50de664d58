package main

import (
	"os"

	"github.com/gintama1018/geminimind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
