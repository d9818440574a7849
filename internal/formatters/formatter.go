// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"candidate-check/internal/candidate"
)

// HiddenCandidate is displayed in place of candidate text unless the
// caller explicitly asks to see matches.
const HiddenCandidate = "[HIDDEN]"

// Options defines configuration options for formatters
type Options struct {
	Quiet     bool // Suppress the summary footer
	NoColor   bool // Disable colored output
	ShowMatch bool // Display the actual candidate text instead of [HIDDEN]
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format formats the verdicts according to the formatter's specific output format
	Format(verdicts []candidate.Verdict, options Options) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// DisplayCandidate returns the candidate text to show for a verdict,
// honoring the ShowMatch option.
func DisplayCandidate(v candidate.Verdict, options Options) string {
	if options.ShowMatch {
		return v.Candidate
	}
	return HiddenCandidate
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names in sorted order
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export formats verdicts with the named formatter from the default registry
func Export(format string, verdicts []candidate.Verdict, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(verdicts, options)
}
