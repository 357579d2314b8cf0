package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/drand/hashsig/hypercube"
)

var baseFlag = &cli.IntFlag{
	Name:  "base",
	Value: 4,
	Usage: "Hypercube base (w) to benchmark.",
}

var dimensionFlag = &cli.IntFlag{
	Name:  "dimension",
	Value: 64,
	Usage: "Hypercube dimension (v) to benchmark.",
}

var benchLayersCommand = &cli.Command{
	Name:  "bench-layers",
	Usage: "Measure layer-size table construction and a round of rank/unrank calls.",
	Flags: []cli.Flag{baseFlag, dimensionFlag},
	Action: func(c *cli.Context) error {
		w, v := c.Int("base"), c.Int("dimension")

		start := time.Now()
		hypercube.EnsureLayerSizes(w)
		buildElapsed := time.Since(start)

		d := (w - 1) * v / 2
		size, err := hypercube.Size(w, v, d)
		if err != nil {
			return err
		}

		start = time.Now()
		x := new(big.Int).Rsh(size, 1)
		vertex, err := hypercube.Unrank(w, v, d, x)
		if err != nil {
			return err
		}
		unrankElapsed := time.Since(start)

		start = time.Now()
		got, err := hypercube.Rank(w, v, d, vertex)
		if err != nil {
			return err
		}
		rankElapsed := time.Since(start)

		fmt.Fprintf(output, "w=%d v=%d d=%d L_d^v=%s\n", w, v, d, size)
		fmt.Fprintf(output, "build: %s  unrank: %s  rank: %s  roundtrip-ok: %v\n",
			buildElapsed, unrankElapsed, rankElapsed, got.Cmp(x) == 0)
		return nil
	},
}
