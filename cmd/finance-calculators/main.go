package main

import (
	"os"

	"github.com/iwvelando/finance-calculators/cmd/finance-calculators/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
