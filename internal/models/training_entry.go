package models

// Priority orders training entries when the prompt context block is built.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank for a priority (high first). The second return
// reports whether the priority is one of the three known values; entries with
// an unknown priority are dropped from prompt composition.
func (p Priority) Rank() (int, bool) {
	switch p {
	case PriorityHigh:
		return 0, true
	case PriorityMedium:
		return 1, true
	case PriorityLow:
		return 2, true
	}
	return 0, false
}

// TrainingEntry is an admin-curated snippet of context text injected into
// prompts. The JSON tags match the stored blob shape.
type TrainingEntry struct {
	ID        string   `json:"id"`
	Context   string   `json:"context"`
	IsEnabled bool     `json:"isEnabled"`
	Priority  Priority `json:"priority"`
}
