package main

import (
	"os"

	"github.com/mfenderov/fmu-uuid/cmd/fmu-uuid/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
