package main

import (
	"os"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
