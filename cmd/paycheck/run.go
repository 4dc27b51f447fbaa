package main

import (
	"bufio"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/kbukum/paycheck/config"
	"github.com/kbukum/paycheck/errors"
	"github.com/kbukum/paycheck/logger"
	"github.com/kbukum/paycheck/observability"
	"github.com/kbukum/paycheck/payment"
	"github.com/kbukum/paycheck/version"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type options struct {
	configFile  string
	envFile     string
	lower       float64
	upper       float64
	format      string
	logLevel    string
	showVersion bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.configFile, "config", "c", "", "path to config.yml")
	flags.StringVar(&opts.envFile, "env-file", "", "path to a .env file")
	flags.Float64Var(&opts.lower, "lower", payment.LowerBoundary, "smallest valid amount (inclusive)")
	flags.Float64Var(&opts.upper, "upper", payment.UpperBoundary, "upper boundary (exclusive)")
	flags.StringVarP(&opts.format, "format", "f", "json", "output format: json or text")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [--] AMOUNT...\n\nAmounts are read from stdin when none are given.\n\n", serviceName)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Get().String())
		return exitOK
	}
	if opts.format != "json" && opts.format != "text" {
		fmt.Fprintf(stderr, "unknown format %q\n", opts.format)
		return exitUsage
	}

	cfg, err := loadAppConfig(flags, opts)
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitUsage
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, stderr)
	logger.SetGlobalLogger(log)
	logger.RegisterDefaults("payment")

	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)
	log = log.WithContext(ctx).WithComponent("cli")

	checker, shutdown, err := newChecker(ctx, cfg, log)
	if err != nil {
		log.Error("failed to start", logger.ErrorFields("init", err))
		return exitUsage
	}
	defer shutdown()

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs, err = readAmounts(stdin)
		if err != nil {
			log.Error("failed to read amounts", logger.ErrorFields("read", err))
			return exitUsage
		}
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	return checkAmounts(ctx, w, checker, log, inputs, opts.format)
}

// checkAmounts reports every input and returns the exit status. It stops
// at the first input after ctx is done.
func checkAmounts(ctx context.Context, w io.Writer, checker *payment.Checker, log *logger.Logger, inputs []string, format string) int {
	code := exitOK
	for i, input := range inputs {
		if ctx.Err() != nil {
			log.Warn("interrupted", logger.Fields("checked", i, "remaining", len(inputs)-i))
			return exitUsage
		}
		if !report(ctx, w, checker, input, format) {
			code = exitInvalid
		}
	}
	log.Debug("amounts checked", logger.Fields("count", len(inputs), "exit_code", code))
	return code
}

func loadAppConfig(flags *pflag.FlagSet, opts options) (AppConfig, error) {
	cfg := defaultAppConfig()
	loaderOpts := []config.LoaderOption{}
	if opts.configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.configFile))
	}
	if opts.envFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(opts.envFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, loaderOpts...); err != nil {
		return cfg, err
	}

	if flags.Changed("lower") {
		cfg.Payment.Lower = opts.lower
	}
	if flags.Changed("upper") {
		cfg.Payment.Upper = opts.upper
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if cfg.Logging.Level == "" {
		// The CLI prints results on stdout; keep stderr quiet unless asked.
		cfg.Logging.Level = "warn"
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newChecker(ctx context.Context, cfg AppConfig, log *logger.Logger) (*payment.Checker, func(), error) {
	tp, err := observability.InitTracer(ctx, cfg.Telemetry)
	if err != nil {
		return nil, nil, err
	}
	mp, err := observability.InitMeter(ctx, cfg.Telemetry)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}
	shutdown := func() {
		// ctx may already be cancelled by an interrupt; flush anyway.
		flushCtx := context.WithoutCancel(ctx)
		if err := mp.Shutdown(flushCtx); err != nil {
			log.Warn("meter shutdown failed", logger.ErrorFields("shutdown", err))
		}
		if err := tp.Shutdown(flushCtx); err != nil {
			log.Warn("tracer shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	checker, err := payment.NewChecker(cfg.Payment,
		payment.WithLogger(logger.Get("payment")),
		payment.WithMetrics(metrics),
	)
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	return checker, shutdown, nil
}

func readAmounts(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, scanner.Err()
}

// report writes the verdict for one input and reports whether it was valid.
func report(ctx context.Context, w io.Writer, checker *payment.Checker, input, format string) bool {
	value, err := strconv.ParseFloat(input, 64)
	// Overflowing literals come back as ±Inf and fall outside any bounds.
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		appErr := errors.InvalidFormat("amount", "number").WithDetail("input", input)
		if format == "text" {
			fmt.Fprintf(w, "%s: %s\n", input, appErr.Message)
		} else {
			writeJSON(w, appErr.ToResponse())
		}
		return false
	}

	res := checker.Check(ctx, value)
	if format == "text" {
		msg := "ok"
		if !res.Valid {
			msg = res.ErrorMessage
		}
		fmt.Fprintf(w, "%s: %s\n", input, msg)
	} else {
		writeJSON(w, res)
	}
	return res.Valid
}

func writeJSON(w io.Writer, v any) {
	// Results and error responses are plain structs of strings and bools.
	b, _ := json.Marshal(v)
	w.Write(append(b, '\n'))
}
