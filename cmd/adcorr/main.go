package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"adcorr/internal/logger"
	"adcorr/pkg/config"
	"adcorr/pkg/frames"
	"adcorr/pkg/pipeline"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "adcorr: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath   string
	initConfig   bool
	input        string
	output       string
	background   string
	dispersant   string
	mask         string
	flatfield    string
	pipelineName string
	logLevel     string
	logFormat    string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("adcorr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "adcorr.yaml", "YAML configuration file (defaults are used if it does not exist)")
	fs.BoolVar(&opts.initConfig, "init-config", false, "Write the default configuration to -config and exit")
	fs.StringVar(&opts.input, "input", "", "YAML frame stack to correct")
	fs.StringVar(&opts.output, "output", "-", "Where to write the corrected frames (- for stdout)")
	fs.StringVar(&opts.background, "background", "", "Instrumental background frame (YAML)")
	fs.StringVar(&opts.dispersant, "dispersant", "", "Dispersant background frame (YAML)")
	fs.StringVar(&opts.mask, "mask", "", "Pixel mask (YAML)")
	fs.StringVar(&opts.flatfield, "flatfield", "", "Flatfield frame (YAML)")
	fs.StringVar(&opts.pipelineName, "pipeline", "", fmt.Sprintf("Pipeline to run, one of %v (overrides the configuration)", pipeline.Names()))
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (overrides the configuration)")
	fs.StringVar(&opts.logFormat, "log-format", string(logger.ConsoleFormat), "Log format, console or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !opts.initConfig && opts.input == "" {
		fs.Usage()
		return nil, errors.New("-input is required")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.initConfig {
		if err := config.CreateDefaultConfigFile(opts.configPath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Default configuration written to %s\n", opts.configPath)
		return nil
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.pipelineName != "" {
		cfg.Pipeline.Name = opts.pipelineName
	}
	if opts.logLevel != "" {
		cfg.Pipeline.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Pipeline.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(stderr, level, logger.Format(opts.logFormat))

	params := cfg.PipelineParams()
	if params.InstrumentalBackground, err = readOptionalStack(opts.background); err != nil {
		return err
	}
	if params.DispersantBackground, err = readOptionalStack(opts.dispersant); err != nil {
		return err
	}
	if params.Flatfield, err = readOptionalStack(opts.flatfield); err != nil {
		return err
	}
	if opts.mask != "" {
		if params.Mask, err = readMask(opts.mask); err != nil {
			return err
		}
	}

	stack, err := readStack(opts.input)
	if err != nil {
		return err
	}

	p, err := pipeline.Build(cfg.Pipeline.Name, params)
	if err != nil {
		return err
	}

	log.Info().
		Str("pipeline", p.Name).
		Ints("shape", stack.Shape()).
		Strs("stages", p.StageNames()).
		Msg("starting corrections")

	start := time.Now()
	result, err := p.WithLogger(log).Run(stack)
	if err != nil {
		return err
	}

	if err := writeStack(opts.output, stdout, result); err != nil {
		return err
	}

	logDone(log, result, time.Since(start), opts.output)
	return nil
}

func logDone(log zerolog.Logger, result *frames.Stack, elapsed time.Duration, output string) {
	summary := frames.Summarize(result)
	log.Info().
		Ints("shape", result.Shape()).
		Int("valid", summary.Valid).
		Int("masked", summary.Masked).
		Float64("mean", summary.Mean).
		Float64("stddev", summary.StdDev).
		Dur("elapsed", elapsed).
		Str("output", output).
		Msg("corrections complete")
}

func readStack(path string) (*frames.Stack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening frames: %w", err)
	}
	defer f.Close()

	s, err := frames.ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("error reading frames from %s: %w", path, err)
	}
	return s, nil
}

func readOptionalStack(path string) (*frames.Stack, error) {
	if path == "" {
		return nil, nil
	}
	return readStack(path)
}

func readMask(path string) (*frames.Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening mask: %w", err)
	}
	defer f.Close()

	m, err := frames.ReadMaskYAML(f)
	if err != nil {
		return nil, fmt.Errorf("error reading mask from %s: %w", path, err)
	}
	return m, nil
}

func writeStack(path string, stdout io.Writer, s *frames.Stack) error {
	if path == "-" {
		return frames.WriteYAML(stdout, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := frames.WriteYAML(f, s); err != nil {
		f.Close()
		return fmt.Errorf("error writing output file: %w", err)
	}
	return f.Close()
}
