package main

import (
	"os"

	"github.com/contactkeval/option-pricer/internal/logger"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}
