// Package main provides hashsigctl, a command-line front end for key
// generation, signing and verification with the hash-based signature
// scheme.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/drand/hashsig/xlog"
)

var output io.Writer = os.Stdout

var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

func banner() {
	fmt.Fprintf(output, "hashsigctl %v (date %v, commit %v)\n", version, buildDate, gitCommit)
}

var schemeFlag = &cli.StringFlag{
	Name:  "scheme",
	Usage: "Named scheme configuration to use (see `hashsigctl schemes`).",
}

var keyFlag = &cli.StringFlag{
	Name:  "key",
	Usage: "Path to the secret or public key file.",
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "If set, verbosity is at the debug level",
}

var appCommands = []*cli.Command{
	keygenCommand,
	signCommand,
	verifyCommand,
	schemesCommand,
	benchLayersCommand,
}

// CLI builds the hashsigctl command tree.
func CLI() *cli.App {
	app := cli.NewApp()
	app.Name = "hashsigctl"
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(output, "hashsigctl %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Version = version
	app.Usage = "hash-based one-time signature key generation, signing and verification"
	app.Commands = appCommands
	app.Flags = []cli.Flag{verboseFlag}
	return app
}

func loggerFromContext(c *cli.Context) xlog.Logger {
	level := xlog.InfoLevel
	if c.Bool("verbose") {
		level = xlog.DebugLevel
	}
	return xlog.New(os.Stderr, level, false)
}

func main() {
	banner()
	app := CLI()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hashsigctl: error: %v\n", err)
		os.Exit(1)
	}
}
