package main

import (
	"os"

	"github.com/hallboard/schoolfeed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
