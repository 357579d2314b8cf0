package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/drand/hashsig/schemeconfig"
	"github.com/drand/hashsig/signature"
)

var outFlag = &cli.StringFlag{
	Name:  "out",
	Value: "hashsig",
	Usage: "Base path to write <out>.secret and <out>.public to.",
}

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "Generate a fresh key pair for a named scheme.",
	Flags: []cli.Flag{schemeFlag, outFlag},
	Action: func(c *cli.Context) error {
		log := loggerFromContext(c)
		scheme, err := schemeconfig.GetSchemeByIDWithDefault(c.String("scheme"))
		if err != nil {
			return err
		}
		params, err := scheme.Params()
		if err != nil {
			return fmt.Errorf("building params: %w", err)
		}

		log.Infow("generating key pair", "scheme", scheme.ID, "leaves", params.NumLeaves)
		pk, sk, err := signature.GenerateKeyPair(rand.Reader, params)
		if err != nil {
			return fmt.Errorf("generating key pair: %w", err)
		}

		out := c.String("out")
		if err := signature.SaveSecretKey(sk, out+".secret"); err != nil {
			return err
		}
		if err := signature.SavePublicKey(pk, out+".public"); err != nil {
			return err
		}
		fmt.Fprintf(output, "hashsigctl: wrote %s.secret and %s.public\n", out, out)
		return nil
	},
}
