package main

import (
	"github.com/mchmarny/gusto/pkg/cli"
)

func main() {
	cli.Execute()
}
