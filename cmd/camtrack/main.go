// Command camtrack simulates a camera transition and prints every frame.
//
// Usage:
//
//	camtrack -demo
//	camtrack -scenario orbit.yaml
//	camtrack -scenario orbit.yaml -frame-rate 120 -precision 6
//
// The output is an aligned table of time, progress, position and rotation,
// followed by a one-line summary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	poseinterp "github.com/tphakala/go-pose-interpolator"
	"github.com/tphakala/go-pose-interpolator/internal/trajectory"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("camtrack", flag.ContinueOnError)
	var (
		scenarioPath = fs.String("scenario", "", "YAML scenario file")
		demo         = fs.Bool("demo", false, "Run the built-in demo scenario")
		frameRate    = fs.Float64("frame-rate", 0, "Override the scenario frame rate (frames per second)")
		precision    = fs.Int("precision", defaultPrecision, "Decimal places in the frame table")
		verbose      = fs.Bool("v", false, "Verbose output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var scenario *Scenario
	switch {
	case *demo:
		scenario = DemoScenario()
	case *scenarioPath != "":
		s, err := LoadScenario(*scenarioPath)
		if err != nil {
			return err
		}
		scenario = s
	default:
		fs.Usage()
		return errors.New("either -scenario or -demo is required")
	}

	if *frameRate > 0 {
		scenario.FrameRate = *frameRate
	}

	config, err := scenario.Config()
	if err != nil {
		return err
	}
	pair, err := scenario.PosePair()
	if err != nil {
		return err
	}

	ip, err := poseinterp.New(config)
	if err != nil {
		return fmt.Errorf("failed to create interpolator: %w", err)
	}
	ip.SetPair(pair)

	if *verbose {
		log.Printf("Distance: %.4f", pair.Distance())
		log.Printf("Duration: %.4fs (speed %.4f, floor %.4fs)", ip.Duration(), ip.Speed(), ip.MinDuration())
		log.Printf("Rotation order: %s, interactive: %v", ip.Order(), pair.Interactive)
	}

	var reversedAt float64
	onFrame := func(frame int, now float64) {
		if scenario.ReverseAt > 0 && reversedAt == 0 && now >= scenario.ReverseAt {
			ip.SetReverse(!ip.Reverse())
			reversedAt = now
			if *verbose {
				log.Printf("Reversed at %.4fs, timer %.4f", now, ip.Timer())
			}
		}
	}

	table, err := trajectory.Sample(ip, scenario.Options(onFrame))
	if err != nil {
		return err
	}

	if err := trajectory.WriteTable(out, table, *precision); err != nil {
		return fmt.Errorf("failed to write frames: %w", err)
	}

	rows, _ := table.Dims()
	_, err = fmt.Fprintf(out, "\n%d frames, duration %.4fs, path length %.4f, finished: %v\n",
		rows, ip.Duration(), trajectory.PathLength(table), ip.Finished())
	return err
}
