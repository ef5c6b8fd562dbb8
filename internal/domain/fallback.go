package domain

import (
	"fmt"
	"strings"
)

const flowSeparator = " -> "

// FallbackReport renders the deterministic report for a payload. It is
// pure and total: any payload, including the zero value, yields a Report
// with every field populated, 3 strengths and 2 actions. It is both the
// degradation result and the sanitizer's reference.
func FallbackReport(p ReadingPayload, t Templates) Report {
	return Report{
		Title:     t.Title,
		Quote:     t.Quote,
		Status:    t.Status,
		Summary:   fmt.Sprintf(t.SummaryFormat, cardFlow(p, t)),
		TodayLine: t.TodayLine,
		Strengths: append([]string(nil), t.Strengths...),
		Actions:   append([]Action(nil), t.Actions...),
	}
}

// cardFlow formats the drawn cards as "label(orientation)" joined by
// arrows, falling back to the plain picked identifiers and finally to
// the locale's placeholder token.
func cardFlow(p ReadingPayload, t Templates) string {
	labels := make([]string, 0, len(Slots))
	for _, slot := range Slots {
		card, ok := p.PickedCards[slot]
		if !ok {
			continue
		}
		label := card.Label
		if label == "" {
			label = t.CardPlaceholder
		}
		word := t.OrientationUpright
		if card.Orientation == Reversed {
			word = t.OrientationReversed
		}
		labels = append(labels, fmt.Sprintf("%s(%s)", label, word))
	}

	if len(labels) > 0 {
		return strings.Join(labels, flowSeparator)
	}
	if len(p.PickedTarots) > 0 {
		return strings.Join(p.PickedTarots, flowSeparator)
	}
	return t.CardPlaceholder
}
