package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/drand/hashsig/schemeconfig"
	"github.com/drand/hashsig/signature"
	"github.com/drand/hashsig/symmetric/messagehash"
)

var epochFlag = &cli.Uint64Flag{
	Name:     "epoch",
	Usage:    "One-time key index to sign under. Each epoch may only be used once.",
	Required: true,
}

var messageFlag = &cli.StringFlag{
	Name:     "message",
	Usage:    "Hex-encoded 32-byte message to sign.",
	Required: true,
}

var sigOutFlag = &cli.StringFlag{
	Name:  "sig-out",
	Value: "hashsig.sig",
	Usage: "Path to write the hex-encoded signature to.",
}

var signCommand = &cli.Command{
	Name:  "sign",
	Usage: "Sign a message under a given epoch using a secret key.",
	Flags: []cli.Flag{schemeFlag, keyFlag, epochFlag, messageFlag, sigOutFlag},
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

		sk, err := signature.LoadSecretKey(c.String("key"))
		if err != nil {
			return err
		}
		sk.Params = params

		message, err := decodeMessage(c.String("message"))
		if err != nil {
			return err
		}

		epoch := uint32(c.Uint64("epoch"))
		log.Infow("signing", "epoch", epoch)
		sig, err := signature.Sign(sk, epoch, message)
		if err != nil {
			return fmt.Errorf("signing: %w", err)
		}

		if err := signature.SaveSignature(sig, c.String("sig-out")); err != nil {
			return err
		}
		fmt.Fprintf(output, "hashsigctl: wrote %s\n", c.String("sig-out"))
		return nil
	},
}

func decodeMessage(s string) ([messagehash.MessageLength]byte, error) {
	var msg [messagehash.MessageLength]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return msg, fmt.Errorf("decoding message: %w", err)
	}
	if len(raw) != messagehash.MessageLength {
		return msg, fmt.Errorf("message must be %d bytes, got %d", messagehash.MessageLength, len(raw))
	}
	copy(msg[:], raw)
	return msg, nil
}
