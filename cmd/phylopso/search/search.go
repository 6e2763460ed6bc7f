// Package search implements a command to search
// the clonal tree that best explains a genotype matrix.
package search

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/phylopso/converters"
	"github.com/katalvlaran/phylopso/genotype"
	"github.com/katalvlaran/phylopso/phylo"
	"github.com/katalvlaran/phylopso/runlog"
	"github.com/katalvlaran/phylopso/swarm"
)

var Command = &command.Command{
	Usage: `search [--alpha <value>] [--beta <value>] [-k <number>]
	[--particles <number>] [--iterations <number>] [--seed <number>]
	[--cpu <number>] [--names <file>] [--db <file>] [-v]
	[<matrix-file>]`,
	Short: "search the best clonal tree",
	Long: `
Command search runs a seeded particle swarm search over mutation trees under
the Dollo(k) model and prints the best tree found, its log-likelihood, its
Newick text and the node that best explains each cell.

The argument of the command is a genotype matrix file (see "phylopso help
matrix-files"). Without it a built-in six cells by four mutations demo
(TP53, KRAS, EGFR, PIK3CA) is used.

The flag --alpha sets the false-negative rate and --beta the false-positive
rate of the sequencing noise. The flag -k sets how many times a mutation can
be lost.

The flags --particles, --iterations and --seed control the search; runs with
the same seed give the same tree regardless of --cpu, which bounds the number
of particles evaluated in parallel.

The flag --names reads mutation names, one per line.

With --db, the run summary of every round and every improvement event are
stored in that SQLite file (see "phylopso history").

The flag -v prints debug logs (one JSON object per line) on the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var (
	alphaFlag      float64
	betaFlag       float64
	kFlag          int
	particlesFlag  int
	iterationsFlag int
	seedFlag       int64
	cpuFlag        int
	namesFlag      string
	dbFlag         string
	verboseFlag    bool
)

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&alphaFlag, "alpha", 0.1, "")
	c.Flags().Float64Var(&betaFlag, "beta", 0.01, "")
	c.Flags().IntVar(&kFlag, "k", 1, "")
	c.Flags().IntVar(&particlesFlag, "particles", swarm.DefaultParticles, "")
	c.Flags().IntVar(&iterationsFlag, "iterations", 20, "")
	c.Flags().Int64Var(&seedFlag, "seed", 42, "")
	c.Flags().IntVar(&cpuFlag, "cpu", 0, "")
	c.Flags().StringVar(&namesFlag, "names", "", "")
	c.Flags().StringVar(&dbFlag, "db", "", "")
	c.Flags().BoolVar(&verboseFlag, "v", false, "")
}

var demo = [][]int{
	{1, 0, 0, 0},
	{1, 1, 0, 0},
	{1, 1, 0, 2},
	{1, 0, 1, 0},
	{1, 0, 1, 1},
	{0, 0, 1, 1},
}

var demoNames = []string{"TP53", "KRAS", "EGFR", "PIK3CA"}

func run(c *command.Command, args []string) error {
	if particlesFlag < 1 {
		return c.UsageError("--particles must be at least 1")
	}
	if iterationsFlag < 0 {
		return c.UsageError("--iterations must not be negative")
	}

	matrix := ""
	if len(args) > 0 {
		matrix = args[0]
	}
	p, err := loadProblem(matrix)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(c.Stderr())
	logger.SetFormatter(&logrus.JSONFormatter{})
	if verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts := []swarm.Option{
		swarm.WithParticles(particlesFlag),
		swarm.WithIterations(iterationsFlag),
		swarm.WithSeed(seedFlag),
		swarm.WithLogger(logger),
		swarm.WithRegisterer(prometheus.NewRegistry()),
	}
	if cpuFlag > 0 {
		opts = append(opts, swarm.WithWorkers(cpuFlag))
	}
	if dbFlag != "" {
		db, err := runlog.OpenSQLite(dbFlag)
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, swarm.WithRecorder(db))
	}

	ctx := context.Background()
	s, err := swarm.Initialize(ctx, p, opts...)
	if err != nil {
		return err
	}
	if err := s.Run(ctx); err != nil {
		return err
	}

	best := s.Best()
	w := c.Stdout()
	fmt.Fprintf(w, "# run %s\n", s.RunID())
	fmt.Fprintf(w, "# initial %.6f best %.6f (particle %d, %d rounds)\n",
		s.InitialLikelihood(), best.Likelihood, s.BestParticle(), s.Round())
	nw, err := converters.Newick(best)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, nw)
	printTree(c, best)
	for i, n := range best.BestCellAssignment {
		fmt.Fprintf(w, "cell\t%d\t%s\n", i+1, converters.Label(n))
	}
	return nil
}

func loadProblem(name string) (*genotype.Problem, error) {
	opts := []genotype.Option{
		genotype.WithRates(alphaFlag, betaFlag),
		genotype.WithLossBudget(kFlag),
	}
	if namesFlag != "" {
		names, err := readNames(namesFlag)
		if err != nil {
			return nil, err
		}
		opts = append(opts, genotype.WithNames(names))
	}

	if name == "" {
		if namesFlag == "" {
			opts = append(opts, genotype.WithNames(demoNames))
		}
		return genotype.NewProblem(demo, opts...)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := genotype.Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return p, nil
}

func readNames(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := genotype.ReadNames(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return names, nil
}

func printTree(c *command.Command, t *phylo.Tree) {
	for _, n := range t.Nodes() {
		fmt.Fprintf(c.Stdout(), "%s%s\n", strings.Repeat("  ", n.Depth()), converters.Label(n))
	}
}
