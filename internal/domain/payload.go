package domain

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ParsePayload decodes an untrusted JSON body into a ReadingPayload.
// A decode failure is the only error; any decoded shape is tolerated —
// non-array pickedTarots, non-object pickedCards, scalars, null and
// missing fields all map to the corresponding empty field.
func ParsePayload(raw []byte) (ReadingPayload, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ReadingPayload{}, fmt.Errorf("decode payload: %w", err)
	}

	p := ReadingPayload{Raw: raw}

	obj, ok := v.(map[string]any)
	if !ok {
		return p, nil
	}

	if items, ok := obj["pickedTarots"].([]any); ok {
		for _, item := range items {
			id := NormalizeText(item)
			if id == "" {
				if m, ok := item.(map[string]any); ok {
					id = NormalizeText(m["id"])
				}
			}
			if id != "" {
				p.PickedTarots = append(p.PickedTarots, id)
			}
		}
	}

	if cards, ok := obj["pickedCards"].(map[string]any); ok {
		for _, slot := range Slots {
			card, ok := cards[string(slot)].(map[string]any)
			if !ok {
				continue
			}
			if p.PickedCards == nil {
				p.PickedCards = make(map[Slot]PickedCard, len(Slots))
			}
			orientation := Upright
			if NormalizeText(card["orientation"]) == string(Reversed) {
				orientation = Reversed
			}
			p.PickedCards[slot] = PickedCard{
				Label:       NormalizeText(card["label"]),
				Orientation: orientation,
			}
		}
	}

	return p, nil
}
