package domain

// Orientation represents the orientation of a drawn tarot card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Slot names one of the three positions of a reading.
type Slot string

const (
	SlotCore    Slot = "core"
	SlotPattern Slot = "pattern"
	SlotFlow    Slot = "flow"
)

// Slots lists the reading positions in presentation order.
var Slots = [3]Slot{SlotCore, SlotPattern, SlotFlow}

// PickedCard is one card the client drew into a slot.
type PickedCard struct {
	Label       string
	Orientation Orientation
}

// ReadingPayload is the typed form of the untrusted request body.
// Every field is optional; the zero value is a valid (empty) payload.
type ReadingPayload struct {
	// PickedTarots holds the plain card identifiers, already normalized
	// with empties dropped.
	PickedTarots []string
	// PickedCards maps each slot to its card; absent slots are omitted.
	PickedCards map[Slot]PickedCard
	// Raw is the original request body, kept verbatim for prompt embedding.
	Raw []byte
}

// Action is a single recommended action in a report.
type Action struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Report is the canonical analysis shape. A constructed Report always has
// every field non-empty, exactly 3 strengths and exactly 2 actions.
type Report struct {
	Title     string   `json:"title"`
	Quote     string   `json:"quote"`
	Status    string   `json:"status"`
	Summary   string   `json:"summary"`
	TodayLine string   `json:"todayLine"`
	Strengths []string `json:"strengths"`
	Actions   []Action `json:"actions"`
}
