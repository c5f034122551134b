package main

import (
	"os"

	"yubin/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
