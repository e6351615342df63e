package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/msa-platform/comment-contract-tests/config"
	"github.com/msa-platform/comment-contract-tests/framework"
)

type commandParams struct {
	serviceURL string
	configFile string
	envFile    string
	timeout    time.Duration
	wait       time.Duration
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	jsonPath   string
	xlsxPath   string
	noColor    bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.serviceURL, "url", "",
		fmt.Sprintf("comment service base URL (default %s, or $%s)", config.DefaultBaseURL, config.EnvBaseURL))
	fs.StringVar(&c.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&c.envFile, "env-file", ".env", "dotenv file to read settings from, if it exists")
	fs.DurationVar(&c.timeout, "timeout", 0,
		fmt.Sprintf("timeout for each request (default %s, or $%s)", framework.DefaultRequestTimeout, config.EnvTimeout))
	fs.DurationVar(&c.wait, "wait", 0, "wait up to this long for the service to respond before running tests")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jsonPath, "json", "", "write a JSON report to this file")
	fs.StringVar(&c.xlsxPath, "xlsx", "", "write an Excel report to this file")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	if c.timeout < 0 || c.wait < 0 {
		fmt.Fprintln(errOut, "-timeout and -wait must not be negative")
		fs.Usage()
		return false
	}
	return true
}

func (c commandParams) configOptions() config.Options {
	return config.Options{
		File:    c.configFile,
		EnvFile: c.envFile,
		Overrides: config.Overrides{
			BaseURL: c.serviceURL,
			Timeout: c.timeout,
		},
	}
}
