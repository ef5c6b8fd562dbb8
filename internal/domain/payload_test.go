package domain_test

import (
	"testing"

	"github.com/front10k/tarrot7/internal/domain"
)

func TestParsePayload_MalformedJSON(t *testing.T) {
	if _, err := domain.ParsePayload([]byte("{bad")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParsePayload_ToleratesAnyShape(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"null", `null`},
		{"array root", `[1,2,3]`},
		{"string root", `"hello"`},
		{"number root", `42`},
		{"non-array pickedTarots", `{"pickedTarots":"oops"}`},
		{"non-object pickedCards", `{"pickedCards":[1,2]}`},
		{"null subfields", `{"pickedTarots":null,"pickedCards":null}`},
		{"scalar slot", `{"pickedCards":{"core":"truthy"}}`},
		{"junk tarot entries", `{"pickedTarots":[1,true,null,{},{"id":42}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := domain.ParsePayload([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.PickedTarots) != 0 {
				t.Errorf("expected no picked tarots, got %v", p.PickedTarots)
			}
			if len(p.PickedCards) != 0 {
				t.Errorf("expected no picked cards, got %v", p.PickedCards)
			}
			if string(p.Raw) != tc.body {
				t.Errorf("raw body not retained: %q", p.Raw)
			}
		})
	}
}

func TestParsePayload_PickedTarots(t *testing.T) {
	body := `{"pickedTarots":[" the_fool ","","major_10",{"id":" cups_03 "},{"id":""},{"name":"no id"}]}`
	p, err := domain.ParsePayload([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"the_fool", "major_10", "cups_03"}
	if len(p.PickedTarots) != len(want) {
		t.Fatalf("got %v, want %v", p.PickedTarots, want)
	}
	for i, id := range want {
		if p.PickedTarots[i] != id {
			t.Errorf("pickedTarots[%d] = %q, want %q", i, p.PickedTarots[i], id)
		}
	}
}

func TestParsePayload_PickedCards(t *testing.T) {
	body := `{"pickedCards":{
		"core":{"label":" The Tower ","orientation":"reversed"},
		"flow":{"label":"The Star","orientation":"sideways"},
		"extra":{"label":"ignored"}
	}}`
	p, err := domain.ParsePayload([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.PickedCards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(p.PickedCards))
	}

	core := p.PickedCards[domain.SlotCore]
	if core.Label != "The Tower" || core.Orientation != domain.Reversed {
		t.Errorf("core = %+v", core)
	}

	// Anything that is not exactly "reversed" reads as upright.
	flow := p.PickedCards[domain.SlotFlow]
	if flow.Orientation != domain.Upright {
		t.Errorf("flow orientation = %q, want upright", flow.Orientation)
	}

	if _, ok := p.PickedCards[domain.SlotPattern]; ok {
		t.Error("pattern slot should be absent")
	}
}
