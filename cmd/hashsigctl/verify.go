package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/drand/hashsig/schemeconfig"
	"github.com/drand/hashsig/signature"
)

var sigInFlag = &cli.StringFlag{
	Name:     "sig",
	Usage:    "Path to the signature file produced by sign.",
	Required: true,
}

var verifyCommand = &cli.Command{
	Name:  "verify",
	Usage: "Verify a signature against a public key.",
	Flags: []cli.Flag{schemeFlag, keyFlag, epochFlag, messageFlag, sigInFlag},
	Action: func(c *cli.Context) error {
		log := loggerFromContext(c)
		scheme, err := schemeconfig.GetSchemeByIDWithDefault(c.String("scheme"))
		if err != nil {
			return err
		}
		params, err := scheme.Params()
		if err != nil {
			return err
		}

		pk, err := signature.LoadPublicKey(c.String("key"))
		if err != nil {
			return err
		}
		pk.Params = params

		sig, err := signature.LoadSignature(c.String("sig"))
		if err != nil {
			return err
		}

		message, err := decodeMessage(c.String("message"))
		if err != nil {
			return err
		}

		epoch := uint32(c.Uint64("epoch"))
		ok := signature.Verify(pk, epoch, message, sig)
		log.Infow("verification finished", "epoch", epoch, "valid", ok)
		if !ok {
			fmt.Fprintln(output, "hashsigctl: signature INVALID")
			os.Exit(1)
		}
		fmt.Fprintln(output, "hashsigctl: signature valid")
		return nil
	},
}
