// Command dulp prints order distances between floats.
//
// Usage:
//
//	dulp [-32] A B
//	dulp [-32] -a FILE -b FILE [-codec none|zstd|lz4] [-show N]
//
// The first form prints the distance from A to B. The second form reads two
// streams of little-endian floats and prints a summary of the element-wise
// distances. A stream holding a single value is broadcast against the other.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/hupe1980/dulp"
	"github.com/hupe1980/dulp/ndarray"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "dulp:", err)
		}
		stop()
		os.Exit(1)
	}
}

type config struct {
	single   bool
	fileA    string
	fileB    string
	codec    Codec
	show     int
	logLevel slog.Level
	json     bool
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	fs := flag.NewFlagSet("dulp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.BoolVar(&cfg.single, "32", false, "operate on float32 instead of float64")
	fs.StringVar(&cfg.fileA, "a", "", "file of little-endian floats (from)")
	fs.StringVar(&cfg.fileB, "b", "", "file of little-endian floats (to)")
	codec := fs.String("codec", "none", "input compression: none, zstd, lz4")
	fs.IntVar(&cfg.show, "show", 10, "number of differing indices to list")
	level := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.json, "json", false, "emit JSON logs")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var ok bool
	if cfg.codec, ok = ParseCodec(*codec); !ok {
		return nil, nil, fmt.Errorf("unknown codec %q", *codec)
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*level)); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, rest, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	var handler slog.Handler = slog.NewTextHandler(stderr, opts)
	if cfg.json {
		handler = slog.NewJSONHandler(stderr, opts)
	}
	logger := dulp.NewLogger(handler)

	if cfg.fileA == "" && cfg.fileB == "" {
		if len(rest) != 2 {
			return errors.New("expected two values or -a and -b")
		}
		return printScalar(stdout, rest[0], rest[1], cfg.single)
	}
	if cfg.fileA == "" || cfg.fileB == "" {
		return errors.New("both -a and -b are required")
	}

	calc := dulp.NewCalculator(dulp.WithLogger(logger))
	var summary *Summary
	if cfg.single {
		summary, err = compareFiles(ctx, cfg, readFloat32s, calc.Distance32)
	} else {
		summary, err = compareFiles(ctx, cfg, readFloat64s, calc.Distance64)
	}
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "comparison finished",
		"a", cfg.fileA,
		"b", cfg.fileB,
		"count", summary.Count,
	)
	return summary.Write(stdout, cfg.show)
}

func printScalar(w io.Writer, sa, sb string, single bool) error {
	bits := 64
	if single {
		bits = 32
	}
	a, err := strconv.ParseFloat(sa, bits)
	if err != nil {
		return err
	}
	b, err := strconv.ParseFloat(sb, bits)
	if err != nil {
		return err
	}

	var d any
	if single {
		d = dulp.Dulp32(float32(a), float32(b))
	} else {
		d = dulp.Dulp64(a, b)
	}
	_, err = fmt.Fprintf(w, "%.0f\n", d)
	return err
}

func compareFiles[F dulp.Float](
	ctx context.Context,
	cfg *config,
	decode func([]byte) ([]F, error),
	distance func(context.Context, *ndarray.Array[F], *ndarray.Array[F]) (*ndarray.Array[F], error),
) (*Summary, error) {
	a, err := loadFile(cfg.fileA, cfg.codec, decode)
	if err != nil {
		return nil, err
	}
	b, err := loadFile(cfg.fileB, cfg.codec, decode)
	if err != nil {
		return nil, err
	}

	out, err := distance(ctx, a, b)
	if err != nil {
		return nil, err
	}
	return Summarize(out.Data())
}
