package main

import (
	"github.com/tmorgal/blokus-go/internal/cli"
)

func main() {
	cli.Execute()
}
