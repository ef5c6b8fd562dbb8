package domain

// Templates is the locale-specific text table everything user-visible is
// rendered from: the fallback report fields, orientation words, and the
// handler's error/warning messages. Loaded from embedded TOML bundles by
// the locales adapter.
type Templates struct {
	Locale string `toml:"-"`

	OrientationUpright  string `toml:"orientation_upright"`
	OrientationReversed string `toml:"orientation_reversed"`
	CardPlaceholder     string `toml:"card_placeholder"`

	Title string `toml:"title"`
	Quote string `toml:"quote"`
	// Status is the report's status line, not an HTTP status.
	Status string `toml:"status"`
	// SummaryFormat carries exactly one %s, replaced by the card-flow string.
	SummaryFormat string   `toml:"summary_format"`
	TodayLine     string   `toml:"today_line"`
	Strengths     []string `toml:"strengths"`
	Actions       []Action `toml:"actions"`

	FallbackWarning string `toml:"fallback_warning"`
	ErrContentType  string `toml:"err_content_type"`
	ErrBodyTooLarge string `toml:"err_body_too_large"`
	ErrBadJSON      string `toml:"err_bad_json"`
}
