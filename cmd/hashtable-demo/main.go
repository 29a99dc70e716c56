// Command hashtable-demo walks through the hashtable API: it fills a table,
// bulk-loads a second one from a TOML document, compares and merges them,
// then clears the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/homier/hashtable"
)

type options struct {
	input     string
	capacity  int
	threshold float64
	logLevel  string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "hashtable-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return demo(opts, stdout, logger)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("hashtable-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "TOML file whose top-level keys are bulk-loaded into the second table")
	fs.IntVar(&opts.capacity, "capacity", hashtable.DefaultCapacity, "initial number of buckets")
	fs.Float64Var(&opts.threshold, "threshold", hashtable.DefaultLoadFactorThreshold, "load factor threshold in (0, 1]")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	return opts, nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core), nil
}

func demo(opts options, stdout io.Writer, logger *zap.Logger) error {
	ht, err := hashtable.New[string, any](
		hashtable.WithCapacity(opts.capacity),
		hashtable.WithLoadFactorThreshold(opts.threshold),
	)
	if err != nil {
		return err
	}

	ht.Set("key1", "value1")
	ht.Set("key2", "value2")
	logger.Debug("table filled", statsFields(ht.Stats())...)

	fmt.Fprintln(stdout, ht.Keys())
	fmt.Fprintln(stdout, ht.Values())
	fmt.Fprintln(stdout, ht.Pairs())
	fmt.Fprintln(stdout, ht)
	fmt.Fprintln(stdout, ht.Len())

	pairs := []hashtable.Pair[string, any]{{Key: "dict key", Value: "dict value"}}
	if opts.input != "" {
		pairs, err = loadPairs(opts.input)
		if err != nil {
			return err
		}
		logger.Info("input loaded", zap.String("path", opts.input), zap.Int("pairs", len(pairs)))
	}

	other, err := hashtable.FromPairs(pairs, hashtable.WithLoadFactorThreshold(opts.threshold))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%#v\n", other)
	// TOML values can be slices or nested tables, so compare them deeply.
	fmt.Fprintln(stdout, hashtable.EqualFunc(ht, other, reflect.DeepEqual))

	ht.Update(other)
	logger.Info("tables merged", statsFields(ht.Stats())...)
	fmt.Fprintln(stdout, ht.Pairs())

	ht.Clear()
	logger.Debug("table cleared", statsFields(ht.Stats())...)
	fmt.Fprintln(stdout, ht)

	return nil
}

func statsFields(s hashtable.Stats) []zap.Field {
	return []zap.Field{
		zap.Int("size", s.Size),
		zap.Int("capacity", s.Capacity),
		zap.Int("originalCapacity", s.OriginalCapacity),
		zap.Float64("loadFactor", s.LoadFactor),
		zap.Int("emptyBuckets", s.EmptyBuckets),
		zap.Int("longestChain", s.LongestChain),
	}
}
