package main

import (
	"os"

	"github.com/openddlab/donorpipe/cmd/donorpipe/cmd"
	"github.com/openddlab/donorpipe/logging"
)

func main() {
	logging.Initialize("donorpipe")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
