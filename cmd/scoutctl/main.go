package main

import (
	"github.com/aiscout/scoutctl/internal/cli"
)

func main() {
	cli.Execute()
}
