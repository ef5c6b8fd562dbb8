package domain

// Required arities of the report's array fields. A candidate that cannot
// supply exactly these counts loses the whole field to the fallback;
// wrong-length arrays are never padded or partially accepted.
const (
	strengthCount = 3
	actionCount   = 2
)

// SanitizeReport coerces a decoded candidate of unknown shape into a valid
// Report, substituting the fallback's value for every field the candidate
// cannot fill. Never fails: the worst candidate yields the fallback itself.
func SanitizeReport(candidate any, fallback Report) Report {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return fallback
	}

	return Report{
		Title:     textOr(obj["title"], fallback.Title),
		Quote:     textOr(obj["quote"], fallback.Quote),
		Status:    textOr(obj["status"], fallback.Status),
		Summary:   textOr(obj["summary"], fallback.Summary),
		TodayLine: textOr(obj["todayLine"], fallback.TodayLine),
		Strengths: sanitizeStrengths(obj["strengths"], fallback.Strengths),
		Actions:   sanitizeActions(obj["actions"], fallback.Actions),
	}
}

func textOr(v any, fallback string) string {
	if s := NormalizeText(v); s != "" {
		return s
	}
	return fallback
}

func sanitizeStrengths(v any, fallback []string) []string {
	items, ok := v.([]any)
	if !ok {
		return fallback
	}
	out := make([]string, 0, strengthCount)
	for _, item := range items {
		if len(out) == strengthCount {
			break
		}
		if s := NormalizeText(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) != strengthCount {
		return fallback
	}
	return out
}

func sanitizeActions(v any, fallback []Action) []Action {
	items, ok := v.([]any)
	if !ok {
		return fallback
	}
	out := make([]Action, 0, actionCount)
	for _, item := range items {
		if len(out) == actionCount {
			break
		}
		obj, _ := item.(map[string]any)
		a := Action{
			Title:       NormalizeText(obj["title"]),
			Description: NormalizeText(obj["description"]),
		}
		if a.Title == "" || a.Description == "" {
			continue
		}
		out = append(out, a)
	}
	if len(out) != actionCount {
		return fallback
	}
	return out
}
