// Command gaschedule is the CLI entry point (§6 External Interfaces,
// C9): parses a configuration JSON file, runs the chosen optimizer
// variant, writes an HTML report to a temp file, and prints elapsed
// time — generalizing the original ConsoleApp.py shape (start_time ...
// elapsed seconds ... temp HTML file) onto this module's variant
// roster, via github.com/urfave/cli/v3 for flag parsing (the CLI
// framework present in the retrieved pack) instead of hand-rolled
// os.Args scanning.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cpmech/gaschedule/config"
	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/gaslog"
	"github.com/cpmech/gaschedule/optimizer"
	"github.com/cpmech/gaschedule/report"
	"github.com/cpmech/gaschedule/schedule"
)

func main() {
	cmd := &cli.Command{
		Name:  "gaschedule",
		Usage: "build a university class timetable with a multi-objective metaheuristic optimizer",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "config", Value: "./GaSchedule.json"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "variant", Value: "nsga2", Usage: "nsga2|nsga3|apnsga3|amga2|cso|fpa|dlba|gaqpso|hgasso|emosoa|rqiea"},
			&cli.IntFlag{Name: "population", Value: 100},
			&cli.IntFlag{Name: "generations", Value: 1000},
			&cli.IntFlag{Name: "seed", Value: 0},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gaschedule:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	fmt.Println("GaSchedule. Making a class schedule using a multi-objective metaheuristic optimizer.")

	start := time.Now()

	path := cmd.StringArg("config")
	cfg, err := config.Parse(path)
	if err != nil {
		return err
	}

	prototype := schedule.NewPrototype(cfg, criteria.DefaultWeights())

	opts := optimizer.DefaultOptions()
	opts.PopulationSize = int(cmd.Int("population"))
	opts.MaxGenerations = int(cmd.Int("generations"))
	opts.Seed = cmd.Int("seed")

	variant, err := resolveVariant(cmd.String("variant"))
	if err != nil {
		return err
	}

	result := optimizer.Run(variant, prototype, opts)
	gaslog.Progress(result.Generations, result.Best.Fitness, opts.CrossoverProbPct, opts.MutationProbPct)

	outPath, err := writeReport(path, result.Best)
	if err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", outPath)
	fmt.Printf("Completed in %.3f secs.\n", time.Since(start).Seconds())
	return nil
}

func resolveVariant(name string) (optimizer.Variant, error) {
	switch name {
	case "nsga2":
		return optimizer.NSGA2{}, nil
	case "nsga3":
		return optimizer.NewNSGA3(), nil
	case "apnsga3":
		return optimizer.NewAPNsgaIII(), nil
	case "amga2":
		return optimizer.NewAMGA2(), nil
	case "cso":
		return optimizer.NewCSO(), nil
	case "fpa":
		return optimizer.NewFPA(), nil
	case "dlba":
		return optimizer.NewDLBA(), nil
	case "gaqpso":
		return optimizer.NewGAQPSO(), nil
	case "hgasso":
		return optimizer.NewHGASSO(), nil
	case "emosoa":
		return optimizer.NewEMoSOA(), nil
	case "rqiea":
		return optimizer.NewRQIEA(), nil
	default:
		return nil, fmt.Errorf("unknown optimizer variant %q", name)
	}
}

func writeReport(configPath string, best *schedule.Schedule) (string, error) {
	base := filepath.Base(configPath)
	ext := filepath.Ext(base)
	htmlName := base[:len(base)-len(ext)] + ".htm"
	outPath := filepath.Join(os.TempDir(), htmlName)

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := report.Render(f, best); err != nil {
		return "", err
	}
	return outPath, nil
}
