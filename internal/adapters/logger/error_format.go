package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager matches the Message() method of zerr.Error (go.trai.ch/zerr
// v0.3.0+), which reports an error's own message without its cause chain.
// Errors without it fall back to standard rendering.
type messager interface {
	Message() string
}

// metadataCarrier matches the Metadata() accessor of zerr.Error. Metadata
// is optional; errors without it render no key/value lines.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one message in a rendered error chain together with its
// attached metadata.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the cause chain of err. zerr errors contribute
// their own message and metadata and the walk continues; the first non-zerr
// error contributes its full Error text and ends the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if carrier, ok := current.(metadataCarrier); ok {
			entry.Metadata = carrier.Metadata()
		}
		entries = append(entries, entry)

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders collected entries hierarchically: the first
// entry under an "Error:" heading, the rest as indented causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			// Indent continuation lines to align with "Error: "
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		// Indent continuation lines to align with the arrow
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func metadataLines(metadata map[string]any, indent string) []string {
	if len(metadata) == 0 {
		return nil
	}

	// Map iteration order is random, so we sort the keys for stable output
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, fmt.Sprintf("%s%s: %v", indent, key, metadata[key]))
	}
	return out
}
