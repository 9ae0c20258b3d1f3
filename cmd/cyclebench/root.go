package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
	"github.com/ardnew/cycleprof/sink"
)

// component identifies this executable for structured logging.
const component = pkg.ComponentCLI

type options struct {
	iterations   int
	calls        int
	depth        int
	format       string
	output       string
	promTextfile string
	logSites     bool
	verbose      bool
	jsonLog      bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.iterations, "iterations", 1_000_000, "loop iterations per workload call")
	fs.IntVar(&o.calls, "calls", 3, "calls per workload")
	fs.IntVar(&o.depth, "depth", 4, "recursion depth of the recursive workload")
	fs.StringVar(&o.format, "format", string(sink.FormatText), "report format (text, json)")
	fs.StringVar(&o.output, "output", "", "write the report to a file instead of stdout")
	fs.StringVar(&o.promTextfile, "prom-textfile", "", "also write a Prometheus textfile")
	fs.BoolVar(&o.logSites, "log-sites", false, "also log one line per site")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose (debug) logging")
	fs.BoolVar(&o.jsonLog, "json-log", false, "use JSON log format")
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "cyclebench",
		Short:         "Profile busy-loop workloads in CPU cycles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.verbose {
		pkg.SetLogLevel(slog.LevelDebug)
	}
	if opts.jsonLog {
		pkg.SetLogFormat(pkg.LogFormatJSON)
	}

	format, err := sink.ParseFormat(opts.format)
	if err != nil {
		pkg.LogError(component, "invalid flag", "flag", "format", "error", err)
		return err
	}
	if opts.iterations < 0 || opts.calls < 0 || opts.depth < 0 {
		err := fmt.Errorf("%w: iterations, calls and depth must not be negative", pkg.ErrInvalidParameter)
		pkg.LogError(component, "invalid flag", "error", err)
		return err
	}

	report := sink.Text(cmd.OutOrStdout())
	switch {
	case opts.output != "":
		report = sink.File(opts.output, format)
	case format == sink.FormatJSON:
		report = sink.JSON(cmd.OutOrStdout())
	}
	handlers := []cycleprof.ResultHandler{report}
	if opts.promTextfile != "" {
		handlers = append(handlers, sink.Prometheus(opts.promTextfile))
	}
	if opts.logSites {
		handlers = append(handlers, sink.Slog(nil))
	}
	cycleprof.SetResultHandler(sink.Tee(handlers...))
	defer cycleprof.Shutdown()

	pkg.LogInfo(component, "running workloads",
		"iterations", opts.iterations, "calls", opts.calls, "depth", opts.depth)
	runWorkloads(opts.iterations, opts.calls, opts.depth)
	return nil
}
