// Package main implements the CLI driver for the xvec container library.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/xvec"
)

const exitError = 2

var (
	// Set via ldflags during build.
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var (
	allocName  string
	chunkElems int
	poolClass  int
	verbose    bool
	inPath     string
	outPath    string
	growthN    int
	configFile string
)

var logger = zap.NewNop()

// Per-element-type registries; the tuned "arena" and "pool" factories are
// re-registered in setup when the flags ask for non-default sizes.
var (
	stringAllocs = xvec.NewRegistry[string]()
	intAllocs    = xvec.NewRegistry[int]()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xvec",
		Short: "Vector container workloads and growth diagnostics",
		Long: `xvec exercises the xvec container library from the command line.

It loads word lists into vectors, charts capacity growth append by append,
and benchmarks workloads across allocation strategies (heap, arena, pool).`,
		Example: `  xvec words -i dictionary.txt -o out.txt   # Load words, write them back
  xvec growth -n 5000 --alloc arena         # Chart the capacity curve
  xvec bench --config bench.yaml            # Compare allocators across workloads`,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            version,
	}

	// Set custom version template to include build info.
	rootCmd.SetVersionTemplate(fmt.Sprintf("xvec version %s\n  commit: %s\n  built:  %s\n", version, gitCommit, buildTime))

	rootCmd.PersistentFlags().StringVar(&allocName, "alloc", "heap", "Allocator strategy (heap, arena, pool)")
	rootCmd.PersistentFlags().IntVar(&chunkElems, "chunk", 0, "Arena chunk capacity in elements (0 = library default)")
	rootCmd.PersistentFlags().IntVar(&poolClass, "pool-class", 0, "Pool block class in elements (0 = library default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Load whitespace-separated words into a vector and write them back",
		RunE:  runWords,
	}
	wordsCmd.Flags().StringVarP(&inPath, "in", "i", "", "Input file (default stdin)")
	wordsCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "Chart the capacity curve of n appends",
		RunE:  runGrowth,
	}
	growthCmd.Flags().IntVarP(&growthN, "count", "n", 1000, "Number of appends")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run scenario workloads across allocator strategies",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&configFile, "config", "", "Config file path (yaml)")

	rootCmd.AddCommand(wordsCmd, growthCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		_ = teardown(nil, nil)
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		var cErr *codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}
		os.Exit(exitError)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
	}

	if chunkElems > 0 {
		stringAllocs.Register("arena", func() xvec.Allocator[string] { return xvec.NewArena[string](chunkElems) })
		intAllocs.Register("arena", func() xvec.Allocator[int] { return xvec.NewArena[int](chunkElems) })
	}
	if poolClass > 0 {
		stringAllocs.Register("pool", func() xvec.Allocator[string] { return xvec.NewPool[string](poolClass) })
		intAllocs.Register("pool", func() xvec.Allocator[int] { return xvec.NewPool[int](poolClass) })
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	_ = logger.Sync()
	return nil
}

// runWords reads whitespace-separated tokens into a vector and writes them
// back newline-joined, with no trailing newline after the last word.
func runWords(_ *cobra.Command, _ []string) error {
	alloc, err := stringAllocs.New(allocName)
	if err != nil {
		return errWithCode(err, exitError)
	}

	in := os.Stdin
	inName := "stdin"
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return errWithCode(fmt.Errorf("open input: %w", err), exitError)
		}
		defer f.Close()
		in, inName = f, inPath
	}

	words := xvec.NewWith[string](alloc)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if err := words.Append(sc.Text()); err != nil {
			return errWithCode(fmt.Errorf("append word %d: %w", words.Len(), err), exitError)
		}
	}
	if err := sc.Err(); err != nil {
		return errWithCode(fmt.Errorf("read %s: %w", inName, err), exitError)
	}
	logger.Info("words loaded",
		zap.String("input", inName),
		zap.Int("count", words.Len()),
		zap.Int("capacity", words.Cap()))

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errWithCode(fmt.Errorf("create output: %w", err), exitError)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for i, word := range words.All() {
		if i > 0 {
			w.WriteByte('\n')
		}
		w.WriteString(word)
	}
	if err := w.Flush(); err != nil {
		return errWithCode(fmt.Errorf("write output: %w", err), exitError)
	}

	m := words.Metrics()
	logger.Info("vector stats",
		zap.Int("len", m.Len),
		zap.Int("cap", m.Cap),
		zap.Uint64("migrations", m.Grows),
		zap.Uint64("elems_moved", m.ElemsMoved),
		zap.Float64("utilization", m.Utilization))
	return nil
}

// runGrowth appends n elements, sampling capacity after every append, and
// plots the resulting staircase.
func runGrowth(_ *cobra.Command, _ []string) error {
	if growthN <= 0 {
		return errWithCode(fmt.Errorf("count must be positive, got %d", growthN), exitError)
	}
	alloc, err := intAllocs.New(allocName)
	if err != nil {
		return errWithCode(err, exitError)
	}

	v := xvec.NewWith[int](alloc)
	curve := make([]float64, 0, growthN)
	for i := 0; i < growthN; i++ {
		if err := v.Append(i); err != nil {
			return errWithCode(fmt.Errorf("append %d: %w", i, err), exitError)
		}
		curve = append(curve, float64(v.Cap()))
	}

	graph := asciigraph.Plot(curve,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("capacity after each append (n=%d, alloc=%s)", growthN, allocName)),
	)
	fmt.Println(graph)
	fmt.Println()

	m := v.Metrics()
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "len\t%d\n", m.Len)
	fmt.Fprintf(tw, "cap\t%d\n", m.Cap)
	fmt.Fprintf(tw, "migrations\t%d\n", m.Grows)
	fmt.Fprintf(tw, "elements moved\t%d\n", m.ElemsMoved)
	fmt.Fprintf(tw, "allocator calls\t%d alloc, %d free\n", m.Allocs, m.Frees)
	fmt.Fprintf(tw, "utilization\t%.1f%%\n", m.Utilization*100)
	return tw.Flush()
}

// benchResult is one cell of the scenario x allocator matrix.
type benchResult struct {
	scenario Scenario
	alloc    string
	perRound time.Duration
	metrics  xvec.VectorMetrics
}

func runBench(_ *cobra.Command, _ []string) error {
	cfg := DefaultBenchConfig()
	if configFile != "" {
		c, err := LoadBenchConfig(configFile)
		if err != nil {
			return errWithCode(fmt.Errorf("load config %s: %w", configFile, err), exitError)
		}
		cfg = c
	}
	cfg.normalize()

	logger.Info("bench starting",
		zap.Int("scenarios", len(cfg.Scenarios)),
		zap.Int("allocators", len(cfg.Allocators)),
		zap.Int("parallelism", cfg.Parallelism))

	results := make([]benchResult, len(cfg.Scenarios)*len(cfg.Allocators))

	var g errgroup.Group
	g.SetLimit(cfg.Parallelism)
	for si, sc := range cfg.Scenarios {
		for ai, name := range cfg.Allocators {
			idx := si*len(cfg.Allocators) + ai
			g.Go(func() error {
				alloc, err := intAllocs.New(name)
				if err != nil {
					return err
				}
				start := time.Now()
				m, err := runScenario(sc, alloc)
				if err != nil {
					return fmt.Errorf("scenario %s on %s: %w", sc.Name, name, err)
				}
				results[idx] = benchResult{
					scenario: sc,
					alloc:    name,
					perRound: time.Since(start) / time.Duration(sc.Rounds),
					metrics:  m,
				}
				logger.Info("scenario done",
					zap.String("scenario", sc.Name),
					zap.String("alloc", name),
					zap.Duration("per_round", results[idx].perRound))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return errWithCode(err, exitError)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tWORKLOAD\tALLOC\tELEMS\tROUNDS\tTIME/ROUND\tGROWS\tMOVED")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%d\t%d\n",
			r.scenario.Name, r.scenario.Workload, r.alloc,
			r.scenario.Elems, r.scenario.Rounds,
			r.perRound, r.metrics.Grows, r.metrics.ElemsMoved)
	}
	return tw.Flush()
}

// runScenario drives one workload for its configured rounds on a fresh
// vector and returns the accumulated metrics.
func runScenario(sc Scenario, alloc xvec.Allocator[int]) (xvec.VectorMetrics, error) {
	v := xvec.NewWith[int](alloc)
	for round := 0; round < sc.Rounds; round++ {
		if err := runWorkload(sc.Workload, v, sc.Elems); err != nil {
			return xvec.VectorMetrics{}, err
		}
	}
	m := v.Metrics()
	v.Clear()
	if arena, ok := alloc.(*xvec.ArenaAllocator[int]); ok {
		arena.Release()
	}
	return m, nil
}

func runWorkload(kind string, v *xvec.Vector[int], elems int) error {
	switch kind {
	case "append":
		for i := 0; i < elems; i++ {
			if err := v.Append(i); err != nil {
				return err
			}
		}
		v.Reset()
	case "erase":
		for i := 0; i < elems; i++ {
			if err := v.Append(i); err != nil {
				return err
			}
		}
		for !v.Empty() {
			if err := v.EraseAt(0); err != nil {
				return err
			}
		}
	case "resize":
		if err := v.Resize(elems); err != nil {
			return err
		}
		if err := v.Resize(elems / 4); err != nil {
			return err
		}
		if err := v.ResizeWith(elems/2, -1); err != nil {
			return err
		}
		v.Clear()
	case "mixed":
		for i := 0; i < elems; i++ {
			if err := v.Append(i); err != nil {
				return err
			}
		}
		for i := 0; i < elems/2; i++ {
			v.Pop()
		}
		if err := v.AppendSlice(make([]int, elems/4)...); err != nil {
			return err
		}
		if !v.Empty() {
			if err := v.EraseAt(v.Len() / 2); err != nil {
				return err
			}
		}
		v.Reset()
	default:
		return fmt.Errorf("unknown workload %q (append, erase, resize, mixed)", kind)
	}
	return nil
}

func errWithCode(err error, code int) error {
	return &codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e *codedError) Unwrap() error { return e.err }
