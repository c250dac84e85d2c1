// Command wordsort reads a text file and writes its distinct words in sorted
// order, once building the word set sequentially and once in parallel.
//
// Usage:
//
//	wordsort [input] [--config wordsort.yaml] [--output output.txt] [--mode both]
//
// If no input file is given on the command line or in the configuration, the
// path is read from standard input.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/npillmayer/fpsort/internal/config"
	"github.com/npillmayer/fpsort/internal/logger"
	"github.com/npillmayer/fpsort/internal/sink"
	"github.com/npillmayer/fpsort/internal/source"
	"github.com/npillmayer/fpsort/internal/timing"
	"github.com/npillmayer/fpsort/internal/wordsort"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	output     string
	mode       string
	sink       string
	logLevel   string
	verify     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "wordsort [input]",
		Short:         "Write the distinct words of a text file in sorted order",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts, args)
			if err != nil {
				slog.Error("wordsort failed", "error", err)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	flags.StringVarP(&opts.output, "output", "o", "", "output file, or list key for the redis sink")
	flags.StringVar(&opts.mode, "mode", "", "processing mode: sequential, parallel or both")
	flags.StringVar(&opts.sink, "sink", "", "output sink: file or redis")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.verify, "verify", false, "check tree invariants after construction")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg, args)
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Input == "" {
		if cfg.Input, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics := timing.NewMetrics(reg)
	if cfg.Metrics.Enabled {
		server := serveMetrics(reg, cfg.Metrics.Port)
		defer shutdown(server)
	}

	writer, closeSink, err := sink.New(cfg.Sink)
	if err != nil {
		return err
	}
	defer closeSink()

	p := &wordsort.Processor{
		Reader:  source.NewFileReader(),
		Writer:  writer,
		Metrics: metrics,
		Logger:  logger.WithComponent("wordsort"),
		Verify:  cfg.Verify,
	}
	reports, err := p.Run(ctx, cfg.Input, cfg.Output, cfg.Modes()...)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words, %d distinct, written to %s\n",
			r.Mode, r.Tokens, r.Unique, cfg.Output)
	}
	return nil
}

// applyFlags lets explicitly set flags and the positional input override the
// loaded configuration.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("mode") {
		cfg.Mode = opts.mode
	}
	if flags.Changed("sink") {
		cfg.Sink.Kind = opts.sink
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("verify") {
		cfg.Verify = opts.verify
	}
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the path to the input file: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", fmt.Errorf("%w: no input file given", config.ErrInvalidConfig)
	}
	return path, nil
}

func serveMetrics(reg *prometheus.Registry, port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("metrics listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "error", err)
		}
	}()
	return server
}

func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("metrics server shutdown error", "error", err)
	}
}
