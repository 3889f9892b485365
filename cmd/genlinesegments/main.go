package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	planarsweep "github.com/samples-of-junichim/planar-sweep-method"
	"github.com/samples-of-junichim/planar-sweep-method/linesegment"
	"github.com/samples-of-junichim/planar-sweep-method/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "genlinesegments",
		Usage:     "Generates random line segments in a plane and outputs them, with their intersections, to stdout as JSON",
		UsageText: "genlinesegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "seed",
				Usage:    "Seed for the random generator; 0 derives one from the system",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.BoolFlag{
				Name:     "skip-intersections",
				Usage:    "Only generate segments, without computing their intersections",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(rng *rand.Rand, min, max int64) float64 {
	return float64(min) + rng.Float64()*float64(max-min)
}

func app(_ context.Context, cmd *cli.Command) error {

	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")
	seed := cmd.Int("seed")

	// sanity checks
	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	segments := make([]linesegment.LineSegment, 0, n)
	for int64(len(segments)) < n {
		seg := linesegment.New(
			randomFloatInRange(rng, minx, maxx), // x1
			randomFloatInRange(rng, miny, maxy), // y1
			randomFloatInRange(rng, minx, maxx), // x2
			randomFloatInRange(rng, miny, maxy), // y2
		)

		// skip degenerate segments
		if seg.P1().Eq(seg.P2()) {
			continue
		}
		segments = append(segments, seg)
	}

	output := struct {
		Segments      []linesegment.LineSegment `json:"segments"`
		Intersections []point.Point             `json:"intersections,omitempty"`
	}{
		Segments: segments,
	}

	if !cmd.Bool("skip-intersections") {
		crossings, err := planarsweep.FindIntersections(segments)
		if err != nil {
			return fmt.Errorf("finding intersections: %w", err)
		}
		output.Intersections = crossings
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
