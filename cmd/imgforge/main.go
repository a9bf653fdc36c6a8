package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"

	"github.com/imgforge/imgforge/internal/codec"
	"github.com/imgforge/imgforge/internal/config"
	"github.com/imgforge/imgforge/internal/converr"
	"github.com/imgforge/imgforge/internal/convert"
	"github.com/imgforge/imgforge/internal/format"
	"github.com/imgforge/imgforge/internal/model"
	"github.com/imgforge/imgforge/internal/storage/local"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	zlog.Init()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(converr.ExitCode(err))
	}
}

// run parses arguments, builds the job and executes the pipeline. Stdout
// carries only the success output (the final path and -version); usage and
// flag-parse errors go to stderr, and every failure comes back as a
// categorized error for main to map to an exit code.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("imgforge", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var output string
	to := fs.String("to", "", "Target format: png, jpg or jpeg (required)")
	fs.StringVar(&output, "o", "", "Output file path (default: input path with the target extension)")
	fs.StringVar(&output, "output", "", "Alias for -o")
	quality := fs.Int("quality", 0, "JPEG quality 1-100 (overrides config)")
	configPath := fs.String("config", "", "Path to a config file")
	showVersion := fs.Bool("version", false, "Print version information")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: imgforge [options] -to FORMAT <input file>")
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return converr.InvalidArgument(err.Error())
	}

	if *showVersion {
		fmt.Fprintf(stdout, "imgforge %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return converr.InvalidArgument("missing input file argument")
	}
	if fs.NArg() > 1 {
		return converr.InvalidArgument("exactly one input file expected")
	}
	if *to == "" {
		return converr.MissingTargetFormat()
	}

	// Reject unknown format tokens before the pipeline runs.
	target, ok := format.FromToken(*to)
	if !ok {
		return converr.UnsupportedTarget(*to)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *quality != 0 {
		cfg.JPEG.Quality = *quality
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zlog.Logger = zlog.Logger.Level(lvl)
	}

	job := model.NewJob(fs.Arg(0), output, target)
	zlog.Logger.Info().
		Str("job_id", job.ID.String()).
		Str("input", job.Input).
		Str("target", target.String()).
		Msg("starting conversion")

	registry := codec.NewRegistry(
		codec.NewPNG(cfg.PNG.CompressionLevel()),
		codec.NewJPEG(cfg.JPEG.Quality),
	)
	converter := convert.New(registry, local.New())

	outPath, err := converter.Convert(job)
	if err != nil {
		zlog.Logger.Error().
			Str("job_id", job.ID.String()).
			Err(err).
			Msg("conversion failed")
		return err
	}

	fmt.Fprintln(stdout, outPath)
	return nil
}
