package models

// Couple pairs one actress with one actor.
type Couple struct {
	Actress Actress `json:"actress"`
	Actor   Actor   `json:"actor"`
}
