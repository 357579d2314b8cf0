package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/drand/hashsig/schemeconfig"
)

var schemesCommand = &cli.Command{
	Name:  "schemes",
	Usage: "List the named scheme configurations available to keygen/sign/verify.",
	Action: func(c *cli.Context) error {
		for _, id := range schemeconfig.ListSchemes() {
			fmt.Fprintln(output, id)
		}
		return nil
	},
}
