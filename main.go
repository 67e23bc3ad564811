package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog"

	"ticket-assigner/assigner"
	"ticket-assigner/formatter"
	"ticket-assigner/metrics"
	"ticket-assigner/parser"
)

func main() {
	// Define flags
	input := flag.String("input", "", "Input JSON dataset file (required)")
	output := flag.String("output", "output_result.json", "Output file path (use '-' for stdout)")
	format := flag.String("format", "json", "Output format: json|csv")
	logLevel := flag.String("log-level", "info", "Log level: trace|debug|info|warn|error")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	runID := uuid.NewString()
	logger := newLogger(*logLevel, runID)

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			logger.Info().Str("addr", *metricsAddr).Msg("metrics server listening")
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				logger.Error().Err(err).Msg("metrics server error")
			}
		}()
	}

	// Validate required input flag
	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		fmt.Fprintln(os.Stderr, "\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate format enum
	validFormats := map[string]bool{"json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: format must be one of: json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	// Open input file
	file, err := os.Open(*input)
	if err != nil {
		logger.Fatal().Err(err).Str("input", *input).Msg("cannot open input dataset")
	}
	defer file.Close()

	metrics.ResetBatchGauges()

	parseStart := time.Now()
	dataset, err := parser.Parse(file)
	if err != nil {
		logger.Fatal().Err(err).Str("input", *input).Msg("cannot parse input dataset")
	}
	metrics.ParserDurationSeconds.Observe(time.Since(parseStart).Seconds())
	logger.Info().
		Int("agents", len(dataset.Agents)).
		Int("tickets", len(dataset.Tickets)).
		Msg("dataset loaded")

	engine, err := assigner.New(dataset.Agents)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot build assignment engine")
	}

	assignStart := time.Now()
	assignments := engine.Assign(dataset.Tickets)
	metrics.AssignDurationSeconds.Observe(time.Since(assignStart).Seconds())
	logger.Info().Int("assignments", len(assignments)).Msg("batch assigned")

	for agentID, load := range engine.Loads() {
		logger.Debug().Str("agent_id", agentID).Int("load", load).Msg("final simulated load")
	}

	// Render the full result before touching the output: either the whole
	// batch is written or nothing is.
	var result string
	switch *format {
	case "csv":
		result = formatter.FormatCSV(assignments)
	default: // "json"
		result = formatter.FormatJSON(assignments)
	}

	if *output == "-" {
		fmt.Print(result)
	} else {
		if err := os.WriteFile(*output, []byte(result), 0o644); err != nil {
			logger.Fatal().Err(err).Str("output", *output).Msg("cannot write result")
		}
		logger.Info().Str("output", *output).Msg("result written")
	}

	// Console summary goes to stderr so '-output -' keeps stdout clean.
	fmt.Fprint(os.Stderr, formatter.FormatText(assignments, dataset.Agents))

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		if err := push.New(*pushGateway, "ticket_assigner").
			Gatherer(metrics.Registry).
			Grouping("run_id", runID).
			Push(); err != nil {
			logger.Error().Err(err).Msg("error pushing to Pushgateway")
		} else {
			logger.Info().Msg("metrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		logger.Info().Msg("process kept alive for metric scraping, press Ctrl+C to exit")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logger.Info().Msg("exiting")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}

func newLogger(level, runID string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()
}
