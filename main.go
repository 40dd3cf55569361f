package main

import (
	"os"

	"github.com/Biniyan/sociomap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
