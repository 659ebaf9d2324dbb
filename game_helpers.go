package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	errUnknownPattern    = errors.New("unknown pattern")
	errInvalidIterations = errors.New("iterations must be a non-negative integer")
	errMissingArguments  = errors.New("pattern and iterations are required")
	errUnexpectedArgs    = errors.New("unexpected arguments")
	errBadFlag           = errors.New("unknown flag or flag without a value")
)

// flags that take a value, by name without dashes
var valueFlags = map[string]bool{"c": true, "config": true, "w": true, "workers": true}

// flags that stand alone; -h, --help and --version are deliberately absent
var boolFlags = map[string]bool{"s": true, "stats": true, "color": true, "p": true, "parallel": true}

// invocation is a validated command line
type invocation struct {
	program    string
	pattern    string
	iterations int
	seed       model.Generation
	config     utils.Config
}

// usage returns the one-line usage message for program
func usage(program string) string {
	return fmt.Sprintf("Usage: %s <pattern> <iterations>", program)
}

// programName strips the directory from argv[0]
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "life"
	}
	return filepath.Base(args[0])
}

// splitArgs separates flags (with their values) from positionals before
// flaggy sees them, so a negative number stays a positional instead of
// being read as a flag. Everything after "--" is positional.
func splitArgs(args []string) (flags, positionals []string, err error) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return flags, append(positionals, args[i+1:]...), nil
		}
		if a == "-" || !strings.HasPrefix(a, "-") || isNumber(a) {
			positionals = append(positionals, a)
			continue
		}

		name, _, joined := strings.Cut(strings.TrimLeft(a, "-"), "=")
		switch {
		case boolFlags[name], valueFlags[name] && joined:
			flags = append(flags, a)
		case valueFlags[name] && i+1 < len(args):
			flags = append(flags, a, args[i+1])
			i++
		default:
			return nil, nil, errors.Wrapf(errBadFlag, "%q", a)
		}
	}
	return flags, positionals, nil
}

func isNumber(arg string) bool {
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// parseFlags runs flaggy over pre-split flags. flaggy exits the process on
// malformed input; that is turned into an error here.
func parseFlags(p *flaggy.Parser, flags []string) (err error) {
	flaggy.PanicInsteadOfExit = true
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("[parseFlags] %v", r)
		}
	}()
	return p.ParseArgs(flags)
}

// parseArgs turns argv into an invocation. Every failure means the usage
// line should be shown; a broken config file only falls back to defaults.
func parseArgs(args []string, logger *log.Logger) (invocation, error) {
	inv := invocation{program: programName(args)}

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	flags, positionals, err := splitArgs(rest)
	if err != nil {
		return inv, err
	}

	var (
		configPath string
		showStats  bool
		color      bool
		parallel   bool
		workers    int
	)
	p := flaggy.NewParser(inv.program)
	p.Description = "Conway's Game of Life on an unbounded grid. Patterns: " + strings.Join(patterns.Names(), ", ")
	p.ShowHelpOnUnexpected = false
	p.ShowHelpWithHFlag = false
	p.ShowVersionWithVersionFlag = false
	p.String(&configPath, "c", "config", "JSON configuration file")
	p.Bool(&showStats, "s", "stats", "Log a summary of the run to stderr")
	p.Bool(&color, "", "color", "Colour live cells")
	p.Bool(&parallel, "p", "parallel", "Compute each generation with parallel row workers")
	p.Int(&workers, "w", "workers", "Number of parallel workers (0 = one per CPU)")

	if err = parseFlags(p, flags); err != nil {
		return inv, errors.Wrap(err, "[parseArgs] failed to parse flags")
	}

	inv.config = utils.DefaultConfig()
	if configPath != "" {
		config, err := utils.LoadConfig(configPath)
		if err != nil {
			logger.Printf("using default configuration: %v", err)
		} else {
			inv.config = config
		}
	}
	inv.config.ShowStats = inv.config.ShowStats || showStats
	inv.config.Color = inv.config.Color || color
	inv.config.UseParallel = inv.config.UseParallel || parallel
	if workers > 0 {
		inv.config.Workers = workers
	}

	switch {
	case len(positionals) < 2:
		return inv, errMissingArguments
	case len(positionals) > 2:
		return inv, errors.Wrapf(errUnexpectedArgs, "%q", positionals[2:])
	}
	inv.pattern = positionals[0]

	seed, ok := patterns.Lookup(inv.pattern)
	if !ok {
		return inv, errors.Wrapf(errUnknownPattern, "%q", inv.pattern)
	}
	inv.seed = seed

	n, err := parseIterations(positionals[1])
	if err != nil {
		return inv, err
	}
	inv.iterations = n

	return inv, nil
}

// parseIterations accepts base-10 non-negative integers only
func parseIterations(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(errInvalidIterations, "%q", arg)
	}
	return n, nil
}

// liveArea is the bounding box area of the live cells, 0 when there are none
func liveArea(g model.Generation) int {
	if g.IsEmpty() {
		return 0
	}
	return model.CornersOf(g).Area()
}

// simulate writes every generation in order, each followed by a blank line,
// as soon as it is computed. Nothing but the current generation is kept, so
// the iteration count only bounds running time.
func simulate(ctx context.Context, w io.Writer, inv invocation) (*utils.Stats, error) {
	var (
		stats    = utils.NewStats()
		renderer = model.NewRenderer(inv.config)
	)
	step := func(g model.Generation) (model.Generation, error) {
		return model.NextGeneration(ctx, g, inv.config)
	}

	err := model.Walk(inv.seed, inv.iterations, step, func(i int, g model.Generation) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderer.Display(w, g); err != nil {
			return errors.Wrapf(err, "[simulate] generation %d", i)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrapf(err, "[simulate] generation %d", i)
		}

		stats.Update(i, g.Len(), liveArea(g))
		if inv.config.DetectCycles && stats.CyclePeriod == 0 {
			stats.RecordHash(i, g.Hash())
		}
		return nil
	})
	stats.Finish()
	return stats, err
}

// run is the whole program: invalid input prints the usage line and succeeds
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "life: ", 0)

	inv, err := parseArgs(args, logger)
	if err != nil {
		_, werr := fmt.Fprintln(stdout, usage(inv.program))
		return werr
	}

	stats, err := simulate(ctx, stdout, inv)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Print("interrupted")
	case err != nil:
		return errors.Wrapf(err, "[run] pattern %s", inv.pattern)
	}

	if inv.config.ShowStats {
		logger.Printf("%s %s", inv.pattern, stats.Summary())
	}
	return nil
}
