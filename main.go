// Command warehouse runs the warehouse robot simulator.
//
// It supports three subcommands:
//  1. "solve" – runs each puzzle's move list and prints the box coordinate sum
//     for the single-width and/or double-width warehouse
//  2. "list" – lists the puzzles in the puzzle directory and catalogue
//  3. "validate" – checks puzzle files and compares scores with the
//     catalogue's expected answers
//
// Flags control the puzzle directory and debug logging. Both can also be set
// through the environment or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wricardo/warehouse/game/engine"
	"github.com/wricardo/warehouse/game/puzzle"
	"github.com/wricardo/warehouse/game/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Warehouse Robot Simulator"
)

// Defaults for flags that can also come from the environment
const (
	defaultPuzzleDir = "puzzles"
	variantBoth      = "both"
	maxParallel      = 4
)

// app holds what the subcommands share once the root flags are parsed
type app struct {
	out    io.Writer
	solver service.SolverService
}

// newCommand builds the CLI writing results to out
func newCommand(out io.Writer) *cli.Command {
	a := &app{out: out}

	return &cli.Command{
		Name:    "warehouse",
		Usage:   AppName,
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "puzzle-dir",
				Aliases: []string{"d"},
				Value:   defaultPuzzleDir,
				Usage:   "Directory containing puzzle files and catalog.yaml",
				Sources: cli.EnvVars("PUZZLE_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("WAREHOUSE_DEBUG"),
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.solveCommand(),
			a.listCommand(),
			a.validateCommand(),
		},
	}
}

// setup configures logging and the solver service from the root flags
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
	} else {
		log.SetLevel(log.InfoLevel)
		log.SetReportCaller(false)
	}

	dir := cmd.String("puzzle-dir")
	if _, err := os.Stat(dir); os.IsNotExist(err) && !cmd.IsSet("puzzle-dir") {
		// Puzzle files can still be named by path
		log.WithField("dir", dir).Debug("default puzzle directory missing, using working directory")
		dir = "."
	}

	puzzles, err := puzzle.NewManager(dir)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize puzzles: %w", err)
	}
	a.solver = service.NewSolverService(puzzles)

	log.WithField("dir", dir).Debugf("%s v%s ready", AppName, Version)
	return ctx, nil
}

func (a *app) solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Run puzzle move lists and print the final box coordinate sums",
		ArgsUsage: "[puzzle|file ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "variant",
				Value: variantBoth,
				Usage: "Box width to simulate: single, double or both",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Print the final warehouse after each run",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only the score, one per line",
			},
		},
		Action: a.solve,
	}
}

func (a *app) solve(ctx context.Context, cmd *cli.Command) error {
	var variant engine.Variant
	if v := cmd.String("variant"); v != variantBoth {
		parsed, err := engine.ParseVariant(v)
		if err != nil {
			return err
		}
		variant = parsed
	}

	names, err := a.puzzleNames(ctx, cmd.Args().Slice())
	if err != nil {
		return err
	}

	// Each puzzle runs on its own engine; output keeps argument order
	results := make([][]*service.SolveResult, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if variant == "" {
				solved, err := a.solver.SolveAll(gctx, name)
				results[i] = solved
				return err
			}
			solved, err := a.solver.Solve(gctx, name, variant)
			if err != nil {
				return err
			}
			results[i] = []*service.SolveResult{solved}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	quiet := cmd.Bool("quiet")
	show := cmd.Bool("show")
	for _, solved := range results {
		for _, result := range solved {
			if quiet {
				fmt.Fprintln(a.out, result.Score)
				continue
			}

			fmt.Fprintf(a.out, "%s (%s): %d%s\n", result.Puzzle, result.Variant, result.Score, answerMark(result))
			if show {
				for _, row := range result.Grid {
					fmt.Fprintln(a.out, "  "+row)
				}
				fmt.Fprintf(a.out, "  moves=%d blocked=%d boxes_pushed=%d\n", result.Moves, result.Blocked, result.BoxesPushed)
			}
		}
	}
	return nil
}

// answerMark compares a score with the catalogue answer, if any
func answerMark(result *service.SolveResult) string {
	switch {
	case result.Expected == nil:
		return ""
	case result.Matches:
		return " ✓"
	default:
		return fmt.Sprintf(" ✗ (expected %d)", *result.Expected)
	}
}

// puzzleNames returns args, or every listed puzzle when args is empty
func (a *app) puzzleNames(ctx context.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	infos, err := a.solver.ListPuzzles(ctx)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, errors.New("no puzzles found; pass a puzzle file or set --puzzle-dir")
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.PuzzleID)
	}
	return names, nil
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available puzzles",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			infos, err := a.solver.ListPuzzles(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSIZE\tBOXES\tMOVES\tEXPECTED\tDESCRIPTION")
			for _, info := range infos {
				expected := "-"
				if len(info.Expected) > 0 {
					var parts []string
					for _, variant := range engine.Variants {
						if answer, ok := info.Expected[variant]; ok {
							parts = append(parts, fmt.Sprintf("%s=%d", variant, answer))
						}
					}
					expected = strings.Join(parts, " ")
				}
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\t%s\t%s\n",
					info.PuzzleID, info.Rows, info.Cols, info.Boxes, info.Moves, expected, info.Description)
			}
			return w.Flush()
		},
	}
}

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check puzzles and compare scores with catalogue answers",
		ArgsUsage: "[puzzle|file ...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names, err := a.puzzleNames(ctx, cmd.Args().Slice())
			if err != nil {
				return err
			}

			allValid := true
			for _, name := range names {
				result, err := a.solver.Validate(ctx, name)
				if err != nil {
					return err
				}

				fmt.Fprintf(a.out, "\n%s %s\n", strings.Repeat("=", 20), result.Puzzle)
				if result.Valid {
					fmt.Fprintln(a.out, "✅ VALID")
					for _, info := range result.Info {
						fmt.Fprintln(a.out, "  "+info)
					}
				} else {
					fmt.Fprintln(a.out, "❌ INVALID")
					allValid = false
					for _, problem := range result.Errors {
						fmt.Fprintln(a.out, "  ❌ "+problem)
					}
				}
			}

			fmt.Fprintf(a.out, "\n%s\n", strings.Repeat("=", 40))
			if !allValid {
				fmt.Fprintln(a.out, "❌ Some puzzles have errors")
				return errors.New("validation failed")
			}
			fmt.Fprintln(a.out, "✅ All puzzles are valid!")
			return nil
		},
	}
}

func run() error {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file: %v", err)
		}
	} else {
		log.Debug("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newCommand(os.Stdout).Run(ctx, os.Args)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
