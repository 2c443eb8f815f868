package main

import (
	"os"

	"github.com/akshat/mathwars/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
