// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"candidate-check/internal/candidate"
	"candidate-check/internal/config"
	"candidate-check/internal/core"
	"candidate-check/internal/formatters"
	_ "candidate-check/internal/formatters/json"
	_ "candidate-check/internal/formatters/text"
	"candidate-check/internal/help"
	"candidate-check/internal/validators/creditcard"
	"candidate-check/internal/validators/ssn"
	"candidate-check/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	checksToRun string
	format      string
	configFile  string
	outputFile  string
	noColor     bool
	showMatch   bool
	quiet       bool
	listChecks  bool
	helpCheck   string
	showVersion bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	checks    string
	format    string
	output    string
	noColor   bool
	showMatch bool
	quiet     bool
}

func parseFlags() *configFlags {
	flags := &configFlags{}

	flag.StringVar(&flags.checksToRun, "checks", "", "Checks to run: CREDIT_CARD,SSN,all (default: all)")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json (default: text)")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.outputFile, "output", "", "Path to output file (if not specified, output to stdout)")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showMatch, "show-match", false, "Display the actual candidate text in output (otherwise shows [HIDDEN])")
	flag.BoolVar(&flags.quiet, "quiet", false, "Suppress the summary footer")
	flag.BoolVar(&flags.listChecks, "list-checks", false, "List available checks and exit")
	flag.StringVar(&flags.helpCheck, "help-check", "", "Show detailed help for a specific check and exit")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information and exit")

	flag.Usage = printUsage
	flag.Parse()

	return flags
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: candidate-check [options] [candidate ...]\n\n")
	fmt.Fprintf(os.Stderr, "Validates candidate identifier strings (payment-card numbers, SSNs)\n")
	fmt.Fprintf(os.Stderr, "supplied as arguments, or one per line on stdin when no arguments are given.\n\n")
	fmt.Fprintf(os.Stderr, "Exit status is 0 when every candidate validated under at least one enabled\n")
	fmt.Fprintf(os.Stderr, "check, 1 when any candidate failed every check, 2 on usage errors.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	return config.LoadConfigOrDefault(configPath)
}

// resolveConfiguration resolves final configuration values from config
// file defaults, environment, and command line flags; flags win.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{
		checks:    cfg.Defaults.Checks,
		format:    cfg.Defaults.Format,
		output:    flags.outputFile,
		noColor:   cfg.Defaults.NoColor,
		showMatch: cfg.Defaults.ShowMatch,
		quiet:     cfg.Defaults.Quiet,
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if set["checks"] {
		final.checks = flags.checksToRun
	}
	if set["format"] {
		final.format = flags.format
	}
	if set["no-color"] {
		final.noColor = flags.noColor
	}
	if set["show-match"] {
		final.showMatch = flags.showMatch
	}
	if set["quiet"] {
		final.quiet = flags.quiet
	}

	return final
}

// collectCandidates gathers candidate strings from arguments, or from
// stdin (one per line) when no arguments are given and stdin is piped.
func collectCandidates(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if isTerminal(os.Stdin) {
		return nil, nil
	}

	var candidates []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			candidates = append(candidates, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading candidates from stdin: %w", err)
	}

	return candidates, nil
}

// exitCode is 0 when every candidate validated under at least one enabled
// check, 1 otherwise.
func exitCode(verdicts []candidate.Verdict) int {
	passed := make(map[string]bool)
	for _, v := range verdicts {
		if v.Valid {
			passed[v.Candidate] = true
		}
	}
	for _, v := range verdicts {
		if !passed[v.Candidate] {
			return 1
		}
	}
	return 0
}

// debugLogVerdicts logs verdicts to stderr when debug logging is enabled.
// Candidate text is never logged, only its length.
func debugLogVerdicts(verdicts []candidate.Verdict) {
	if os.Getenv("CANDIDATE_CHECK_DEBUG") == "" {
		return
	}
	for _, v := range verdicts {
		fmt.Fprintf(os.Stderr, "[DEBUG] check=%s candidate_length=%d valid=%t\n",
			v.Check, len(v.Candidate), v.Valid)
	}
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		fmt.Printf("engine available: %t\n", core.Available())
		os.Exit(0)
	}

	helpSystem := help.NewSystem(flags.noColor)
	helpSystem.Register(creditcard.CheckInfo())
	helpSystem.Register(ssn.CheckInfo())

	if flags.listChecks {
		helpSystem.ShowChecksList()
		os.Exit(0)
	}
	if flags.helpCheck != "" {
		if err := helpSystem.ShowCheckHelp(flags.helpCheck); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		os.Exit(0)
	}

	cfg := loadConfiguration(flags.configFile)
	final := resolveConfiguration(cfg, flags)

	candidates, err := collectCandidates(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if len(candidates) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no candidates to validate\n")
		fmt.Fprintf(os.Stderr, "Pass candidates as arguments or pipe one per line on stdin.\n")
		os.Exit(2)
	}

	enabledChecks := core.ParseChecksToRun(strings.Split(final.checks, ","))
	checkSet := core.BuildCheckSet(enabledChecks)
	if len(checkSet) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no known checks selected (use --list-checks to see available checks)\n")
		os.Exit(2)
	}

	verdicts := core.ValidateAll(candidates, checkSet)
	debugLogVerdicts(verdicts)

	// Color is pointless in files and pipes
	noColor := final.noColor
	if final.output != "" || !isTerminal(os.Stdout) {
		noColor = true
	}

	output, err := formatters.Export(final.format, verdicts, formatters.Options{
		Quiet:     final.quiet,
		NoColor:   noColor,
		ShowMatch: final.showMatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if final.output != "" {
		if err := os.WriteFile(final.output, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(2)
		}
	} else {
		fmt.Print(output)
	}

	os.Exit(exitCode(verdicts))
}
