// Package history implements a command to print
// the run history stored in a SQLite file.
package history

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/js-arias/command"

	"github.com/katalvlaran/phylopso/runlog"
)

var Command = &command.Command{
	Usage: "history [--run <run-id>] [--bests] [--plot <file>] <db-file>",
	Short: "print recorded search runs",
	Long: `
Command history reads a SQLite file written by "phylopso search --db" and
prints its content. The file must exist; it is never created.

Without flags, it lists the recorded runs with their number of rounds and
best log-likelihood.

The flag --run selects a run and prints one line per round: the swarm best,
the mean, median, standard deviation, minimum and maximum of the particle
likelihoods, and the number of particles that improved.

With --bests, the improvement events of the selected run are printed
instead, with the Newick text of each improved tree.

With --plot, a chart of the swarm best and mean log-likelihood per round of
the selected run is written to the given file. The image format is taken
from the file extension (for example .png, .svg or .pdf).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var (
	runFlag   string
	bestsFlag bool
	plotFlag  string
)

func setFlags(c *command.Command) {
	c.Flags().StringVar(&runFlag, "run", "", "")
	c.Flags().BoolVar(&bestsFlag, "bests", false, "")
	c.Flags().StringVar(&plotFlag, "plot", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting database file")
	}
	if (bestsFlag || plotFlag != "") && runFlag == "" {
		return c.UsageError("flags --bests and --plot require --run")
	}

	db, err := runlog.OpenExisting(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if plotFlag != "" {
		rounds, err := db.Rounds(ctx, runFlag)
		if err != nil {
			return err
		}
		if err := runlog.PlotRounds(rounds, "run "+runFlag, plotFlag); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(c.Stdout(), 0, 0, 2, ' ', 0)
	defer tw.Flush()

	switch {
	case runFlag == "":
		runs, err := db.Runs(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "run\trounds\tbest")
		for _, r := range runs {
			fmt.Fprintf(tw, "%s\t%d\t%.6f\n", r.RunID, r.Rounds, r.Best)
		}
	case bestsFlag:
		bests, err := db.Bests(ctx, runFlag)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "round\tparticle\tlikelihood\tswarm\tnewick")
		for _, e := range bests {
			fmt.Fprintf(tw, "%d\t%d\t%.6f\t%v\t%s\n", e.Round, e.Particle, e.Likelihood, e.Swarm, e.Newick)
		}
	default:
		rounds, err := db.Rounds(ctx, runFlag)
		if err != nil {
			return err
		}
		if len(rounds) == 0 {
			return fmt.Errorf("run %q not found", runFlag)
		}
		fmt.Fprintln(tw, "round\tbest\tmean\tmedian\tstd-dev\tmin\tmax\timprovements\ttime")
		for _, r := range rounds {
			fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%d\t%v\n",
				r.Round, r.Best, r.Mean, r.Median, r.StdDev, r.Min, r.Max, r.Improvements, r.Duration)
		}
	}
	return nil
}
