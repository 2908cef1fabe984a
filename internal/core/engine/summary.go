package engine

import (
	"strings"
	"unicode"
)

type summaryState int

const (
	stateScanning summaryState = iota
	stateInSummary
)

// ExtractSummary runs a two-state line scanner over the normalized text.
// A heading keyword line enters the summary section; an all-caps heading, a
// short trailing-colon line or the fragment cap exits it. Without any
// heading the first three non-empty lines stand in.
func ExtractSummary(text string) string {
	var fragments []string
	var firstLines []string
	state := stateScanning
	headingSeen := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(firstLines) < 3 {
			firstLines = append(firstLines, line)
		}

		switch state {
		case stateScanning:
			lower := strings.ToLower(line)
			if containsAny(lower, summaryHeadings) {
				state = stateInSummary
				headingSeen = true
				if idx := strings.IndexByte(line, ':'); idx >= 0 {
					if tail := strings.TrimSpace(line[idx+1:]); tail != "" {
						fragments = append(fragments, tail)
					}
				}
			}
		case stateInSummary:
			if isAllCapsHeading(line) || isSectionLabel(line) || len(fragments) >= maxFragments {
				state = stateScanning
				// One summary section is enough; stop accumulating entirely.
				return renderSummary(fragments, firstLines, headingSeen)
			}
			fragments = append(fragments, line)
		}
	}

	return renderSummary(fragments, firstLines, headingSeen)
}

func renderSummary(fragments, firstLines []string, headingSeen bool) string {
	if !headingSeen {
		fragments = firstLines
	}
	if len(fragments) > joinedFragments {
		fragments = fragments[:joinedFragments]
	}
	summary := strings.TrimSpace(strings.Join(fragments, " "))
	if summary == "" {
		return defaultSummary
	}
	if runes := []rune(summary); len(runes) > maxSummaryLen {
		summary = string(runes[:maxSummaryLen]) + "..."
	}
	return summary
}

// isAllCapsHeading reports whether a line reads as an upper-case heading.
func isAllCapsHeading(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isSectionLabel matches short lines ending in a colon, e.g. "Medications:".
func isSectionLabel(line string) bool {
	return len(line) < 40 && strings.HasSuffix(line, ":")
}
