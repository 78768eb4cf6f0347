// Package models defines the actor and actress records served by the remote API.
package models

// Person holds the fields shared by every record variant.
// ID and Name are identity fields and are never changed by an update.
type Person struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birth_year"`
	DeathYear *int   `json:"death_year,omitempty"`
	Biography string `json:"biography"`
	Image     string `json:"image"`
}

// Alive reports whether the record has no death year.
func (p Person) Alive() bool {
	return p.DeathYear == nil
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
