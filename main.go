package main

import (
	"os"

	"github.com/mouse-blink/gorector/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
