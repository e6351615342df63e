package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/msa-platform/comment-contract-tests/commenttests"
	"github.com/msa-platform/comment-contract-tests/config"
	"github.com/msa-platform/comment-contract-tests/framework"
	"github.com/msa-platform/comment-contract-tests/logging"
	"github.com/msa-platform/comment-contract-tests/report"

	"github.com/fatih/color"
)

const healthPath = "/health"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one test run and returns the process exit code: 0 if no case failed and all
// requested reports were written, 1 otherwise.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args, stderr) {
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}
	logger := logging.New(stderr, logging.Options{Debug: params.debugAll, NoColor: params.noColor})

	cfg, err := config.Load(params.configOptions())
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = logging.Printer{Logger: logger}
	}

	target := framework.NewTarget(cfg.BaseURL, cfg.Timeout, nil, nil)

	if params.wait > 0 {
		status, err := framework.AwaitService(ctx, target, healthPath, params.wait, stdout)
		if err != nil {
			logger.Warn("service did not respond, running tests anyway", "error", err)
		} else {
			logger.Info("service is up", "status", status)
		}
	}

	fmt.Fprintln(stdout)
	framework.PrintFilterDescription(stdout, params.filters)

	logger.Info("running contract tests", "target", target.BaseURL(), "timeout", target.Timeout())

	testLogger := &ConsoleTestLogger{
		Out:                  stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	summary := commenttests.RunTestSuite(ctx, target, cfg.Params(), params.filters.AsFilter,
		testLogger, mainDebugLogger)

	fmt.Fprintln(stdout)
	report.PrintSummary(stdout, summary)

	code := 0
	if params.jsonPath != "" {
		if err := report.WriteJSONFile(params.jsonPath, summary, target); err != nil {
			logger.Error("could not write JSON report", "error", err)
			code = 1
		} else {
			logger.Info("report written", "path", params.jsonPath)
		}
	}
	if params.xlsxPath != "" {
		if err := report.WriteXLSX(params.xlsxPath, summary, target); err != nil {
			logger.Error("could not write Excel report", "error", err)
			code = 1
		} else {
			logger.Info("report written", "path", params.xlsxPath)
		}
	}
	if !summary.OK() {
		code = 1
	}
	return code
}
