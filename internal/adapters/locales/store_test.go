package locales_test

import (
	"strings"
	"testing"

	"github.com/front10k/tarrot7/internal/adapters/locales"
)

func TestStore_BundlesLoadAndSatisfyArity(t *testing.T) {
	store := locales.NewStore()

	for _, locale := range []string{"ko", "en"} {
		t.Run(locale, func(t *testing.T) {
			b, err := store.Get(locale)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Locale != locale {
				t.Errorf("locale = %q", b.Locale)
			}
			if len(b.Strengths) != 3 {
				t.Errorf("expected 3 strengths, got %d", len(b.Strengths))
			}
			if len(b.Actions) != 2 {
				t.Errorf("expected 2 actions, got %d", len(b.Actions))
			}
			if b.OrientationUpright == b.OrientationReversed {
				t.Error("orientation words must be distinct")
			}
			if strings.Count(b.SummaryFormat, "%s") != 1 {
				t.Errorf("summary_format %q must contain one %%s", b.SummaryFormat)
			}
			for _, v := range []string{
				b.Title, b.Quote, b.Status, b.TodayLine, b.CardPlaceholder,
				b.FallbackWarning, b.ErrContentType, b.ErrBodyTooLarge, b.ErrBadJSON,
			} {
				if strings.TrimSpace(v) == "" {
					t.Error("bundle has an empty field")
				}
			}
		})
	}
}

func TestStore_DefaultLocaleIsKorean(t *testing.T) {
	b, err := locales.NewStore().Get(locales.DefaultLocale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.OrientationReversed != "역방향" {
		t.Errorf("reversed word = %q", b.OrientationReversed)
	}
	if b.OrientationUpright != "정방향" {
		t.Errorf("upright word = %q", b.OrientationUpright)
	}
}

func TestStore_UnknownLocale(t *testing.T) {
	if _, err := locales.NewStore().Get("xx"); err == nil {
		t.Fatal("expected error for unknown locale")
	}
}
