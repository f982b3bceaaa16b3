package main

import (
	"github.com/andrescamacho/flightfuel-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
