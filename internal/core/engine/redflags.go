package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
)

// ExtractAlerts runs four independent passes over the text and concatenates
// their results without deduplication, capped at 15 entries:
// critical conditions, warning keywords with a context window, a single
// drug-interaction flag and a single expiration flag.
func ExtractAlerts(text string) []domain.Alert {
	lower := strings.ToLower(text)
	var alerts []domain.Alert

	for _, condition := range criticalConditions {
		if strings.Contains(lower, condition) {
			alerts = append(alerts, domain.Alert{
				Level:    domain.AlertCritical,
				Message:  "Critical condition mentioned: " + condition,
				Category: "Critical Condition",
			})
		}
	}

	for _, keyword := range warningKeywords {
		idx := strings.Index(lower, keyword)
		if idx < 0 {
			continue
		}
		level := domain.AlertWarning
		if dangerKeywords[keyword] {
			level = domain.AlertDanger
		}
		alerts = append(alerts, domain.Alert{
			Level:    level,
			Message:  fmt.Sprintf("Warning term %q found: %s", keyword, contextWindow(text, idx)),
			Category: "Warning",
		})
	}

	if containsAny(lower, interactionPhrases) {
		alerts = append(alerts, domain.Alert{
			Level:    domain.AlertWarning,
			Message:  "Document mentions a possible drug interaction",
			Category: "Drug Interaction",
		})
	}

	if containsAny(lower, expirationTerms) {
		alerts = append(alerts, domain.Alert{
			Level:    domain.AlertWarning,
			Message:  "Expiration-related terms found; verify medication dates",
			Category: "Expiration",
		})
	}

	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}

// contextWindow returns up to 50 characters before and 100 after the match,
// truncated to 150 characters with an ellipsis. The byte offsets are nudged
// onto rune boundaries so multi-byte text never gets split mid-rune.
func contextWindow(text string, idx int) string {
	start := idx - 50
	if start < 0 {
		start = 0
	}
	for start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	end := idx + 100
	if end > len(text) {
		end = len(text)
	}
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	window := strings.TrimSpace(text[start:end])
	if runes := []rune(window); len(runes) > 150 {
		window = string(runes[:150]) + "..."
	}
	return window
}

// BuildInsights assembles the knowledge-source cross-reference view: KB red
// flags plus one flag per known interacting pair, and assembled general
// advice. The list is intentionally uncapped.
func BuildInsights(ctx context.Context, kb ports.KnowledgeSource, text string, names []string) (domain.AdditionalInsights, error) {
	flags, err := kb.IdentifyRedFlags(ctx, text, names)
	if err != nil {
		return domain.AdditionalInsights{}, fmt.Errorf("identify red flags: %w", err)
	}

	interactions, err := kb.CheckInteractions(ctx, names)
	if err != nil {
		return domain.AdditionalInsights{}, fmt.Errorf("check interactions: %w", err)
	}
	for _, interaction := range interactions {
		flags = append(flags, domain.RedFlag{
			Category:       "Drug Interaction",
			Description:    fmt.Sprintf("Interaction between %s: %s", strings.Join(interaction.Medications, ", "), interaction.Description),
			Severity:       interaction.Severity,
			Recommendation: interaction.Action,
		})
	}

	return domain.AdditionalInsights{
		RedFlags:      flags,
		GeneralAdvice: generalAdvice(text, names),
	}, nil
}

func generalAdvice(text string, names []string) string {
	var parts []string
	if len(names) > 0 {
		parts = append(parts, "Store all medications in a cool, dry place away from children.")
	}
	if strings.Contains(strings.ToLower(text), "antibiotic") {
		parts = append(parts, "Complete the full course of antibiotics even if symptoms improve.")
	}
	parts = append(parts, "Keep a list of all medications and share with all healthcare providers.")
	return strings.Join(parts, " ")
}
