// Package main is the entry point of the tiramisu command.
package main

import (
	"github.com/grngxd/tiramisu/cmd"
	"github.com/grngxd/tiramisu/config"
	"github.com/grngxd/tiramisu/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
