// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "CREDIT_CARD")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Rules               []string // Structural rules a candidate must satisfy
	Examples            []string // Usage examples
}

// System manages help content for the application
type System struct {
	checks  map[string]CheckInfo
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		checks:  make(map[string]CheckInfo),
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"item":    color.New(color.FgCyan),
			"example": color.New(color.FgMagenta),
		},
	}
}

// Register adds a check's help content to the system
func (h *System) Register(info CheckInfo) {
	h.checks[strings.ToLower(info.Name)] = info
}

// ShowChecksList displays a one-line summary of every registered check
func (h *System) ShowChecksList() {
	h.colors["title"].Println("Available checks:")
	fmt.Println()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		info := h.checks[name]
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use --help-check <name> for detailed information about a check.")
}

// ShowCheckHelp displays detailed help for a single check
func (h *System) ShowCheckHelp(name string) error {
	info, ok := h.checks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown check: %s (use --list-checks to see available checks)", name)
	}

	h.colors["title"].Println(info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Rules) > 0 {
		fmt.Println()
		h.colors["header"].Println("RULES:")
		for _, rule := range info.Rules {
			h.colors["item"].Printf("  - %s\n", rule)
		}
	}

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			h.colors["example"].Printf("  %s\n", example)
		}
	}

	return nil
}
