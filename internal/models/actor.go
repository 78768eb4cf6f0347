package models

// Actor is a validated actor record. Awards holds one or two entries.
type Actor struct {
	Person
	KnownFor    [3]string   `json:"known_for"`
	Awards      []string    `json:"awards"`
	Nationality Nationality `json:"nationality"`
}

// ActorDraft carries the fields of a new Actor before an id is assigned.
type ActorDraft struct {
	Name        string      `json:"name"`
	BirthYear   int         `json:"birth_year"`
	DeathYear   *int        `json:"death_year,omitempty"`
	Biography   string      `json:"biography"`
	Image       string      `json:"image"`
	KnownFor    [3]string   `json:"known_for"`
	Awards      []string    `json:"awards"`
	Nationality Nationality `json:"nationality"`
}

// ActorUpdate is a partial change set; nil fields are left untouched.
// DeathYear also tells an explicit null, which clears the death year, from an absent key.
// ID and Name are accepted so payloads decode, but updates never apply them.
type ActorUpdate struct {
	ID          *int         `json:"id,omitempty"`
	Name        *string      `json:"name,omitempty"`
	BirthYear   *int         `json:"birth_year,omitempty"`
	DeathYear   NullableInt  `json:"death_year"`
	Biography   *string      `json:"biography,omitempty"`
	Image       *string      `json:"image,omitempty"`
	KnownFor    *[3]string   `json:"known_for,omitempty"`
	Awards      []string     `json:"awards,omitempty"`
	Nationality *Nationality `json:"nationality,omitempty"`
}

// WithID builds the Actor described by d under the given id.
func (d ActorDraft) WithID(id int) Actor {
	return Actor{
		Person: Person{
			ID:        id,
			Name:      d.Name,
			BirthYear: d.BirthYear,
			DeathYear: copyIntPtr(d.DeathYear),
			Biography: d.Biography,
			Image:     d.Image,
		},
		KnownFor:    d.KnownFor,
		Awards:      append([]string(nil), d.Awards...),
		Nationality: d.Nationality,
	}
}
