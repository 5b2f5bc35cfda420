package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lobjects/config"
	"github.com/katalvlaran/lobjects/host"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func main() {
	var (
		scriptFile = flag.String("script", "", "Path to a YAML patch script")
		kind       = flag.String("kind", "", "Single object kind to run instead of a script")
		args       = flag.String("args", "", "Creation arguments for -kind")
		verbose    = flag.Bool("v", false, "Log message traffic")
		jsonLogs   = flag.Bool("json", false, "Log in JSON")
		noColor    = flag.Bool("no-color", false, "Disable styled output")
		kinds      = flag.Bool("kinds", false, "List object kinds and exit")
	)
	flag.Parse()

	if *kinds {
		for _, k := range host.Kinds() {
			fmt.Println(k)
		}
		return
	}

	if *scriptFile == "" && *kind == "" {
		fmt.Fprintln(os.Stderr, "Usage: lobjects -script <patch.yaml> [-v] [-json]")
		fmt.Fprintln(os.Stderr, "       lobjects -kind <Kind> [-args \"...\"] [inlet:]message...")
		fmt.Fprintln(os.Stderr, "       lobjects -kinds")
		os.Exit(1)
	}

	logger, err := newLogger(*verbose, *jsonLogs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	host.SetLogger(logger)

	styled := !*noColor && term.IsTerminal(int(os.Stdout.Fd()))
	p := newPrinter(os.Stdout, styled)

	var script *config.Script
	if *scriptFile != "" {
		script, err = config.Load(*scriptFile)
	} else {
		script, err = inlineScript(*kind, *args, flag.Args())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(script, p, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(script *config.Script, p *printer, logger *zap.Logger) error {
	patch, err := config.Build(script,
		config.WithTapper(p),
		config.WithLogger(logger),
		config.WithObjectOptions(host.WithPoster(p.Post)))
	if err != nil {
		return err
	}

	return patch.Run()
}

// inlineScript builds a one-object script. Each message may carry an
// "inlet:" prefix; without one it goes to inlet 0.
func inlineScript(kind, args string, messages []string) (*config.Script, error) {
	s := &config.Script{
		Objects: []config.ObjectSpec{{Name: kind, Kind: kind, Args: args}},
	}
	for _, m := range messages {
		ev := config.Event{To: kind, Message: m}
		if head, tail, ok := strings.Cut(m, ":"); ok {
			if n, err := strconv.Atoi(head); err == nil {
				ev.Inlet, ev.Message = n, tail
			}
		}
		s.Events = append(s.Events, ev)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func newLogger(verbose, jsonLogs bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if jsonLogs {
		cfg = zap.NewProductionConfig()
	}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}
