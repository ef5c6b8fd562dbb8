// Package locales loads the embedded per-locale template bundles that all
// user-visible text is rendered from.
package locales

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/front10k/tarrot7/internal/domain"
)

//go:embed data/*.toml
var bundleFS embed.FS

// registry maps locale codes to their TOML filenames inside data/.
var registry = map[string]string{
	"ko": "data/ko.toml",
	"en": "data/en.toml",
}

// DefaultLocale is the product's persona language.
const DefaultLocale = "ko"

// Store loads locale bundles from embedded TOML files.
type Store struct {
	once    sync.Once
	bundles map[string]domain.Templates
	err     error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) init() {
	s.bundles = make(map[string]domain.Templates, len(registry))
	for locale, filename := range registry {
		raw, err := bundleFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded bundle %s: %w", locale, err)
			return
		}
		var t domain.Templates
		if err := toml.Unmarshal(raw, &t); err != nil {
			s.err = fmt.Errorf("parse embedded bundle %s: %w", locale, err)
			return
		}
		t.Locale = locale
		if err := validate(t); err != nil {
			s.err = fmt.Errorf("bundle %s: %w", locale, err)
			return
		}
		s.bundles[locale] = t
	}
}

// Get returns the bundle for a locale code.
func (s *Store) Get(locale string) (domain.Templates, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Templates{}, s.err
	}
	t, ok := s.bundles[locale]
	if !ok {
		return domain.Templates{}, fmt.Errorf("unknown locale %q", locale)
	}
	return t, nil
}

// validate enforces the report invariant at load time so a broken bundle
// fails startup instead of shipping malformed fallback reports.
func validate(t domain.Templates) error {
	if len(t.Strengths) != 3 {
		return fmt.Errorf("expected 3 strengths, got %d", len(t.Strengths))
	}
	if len(t.Actions) != 2 {
		return fmt.Errorf("expected 2 actions, got %d", len(t.Actions))
	}
	if strings.Count(t.SummaryFormat, "%s") != 1 {
		return fmt.Errorf("summary_format must contain exactly one %%s")
	}
	fields := map[string]string{
		"orientation_upright":  t.OrientationUpright,
		"orientation_reversed": t.OrientationReversed,
		"card_placeholder":     t.CardPlaceholder,
		"title":                t.Title,
		"quote":                t.Quote,
		"status":               t.Status,
		"today_line":           t.TodayLine,
		"fallback_warning":     t.FallbackWarning,
		"err_content_type":     t.ErrContentType,
		"err_body_too_large":   t.ErrBodyTooLarge,
		"err_bad_json":         t.ErrBadJSON,
	}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing %s", name)
		}
	}
	for i, s := range t.Strengths {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("strengths[%d] is empty", i)
		}
	}
	for i, a := range t.Actions {
		if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Description) == "" {
			return fmt.Errorf("actions[%d] is incomplete", i)
		}
	}
	return nil
}
