package models

// Actress is a validated actress record.
type Actress struct {
	Person
	MostFamousMovie [3]string   `json:"most_famous_movie"`
	Awards          string      `json:"awards"`
	Nationality     Nationality `json:"nationality"`
}

// ActressDraft carries the fields of a new Actress before an id is assigned.
type ActressDraft struct {
	Name            string      `json:"name"`
	BirthYear       int         `json:"birth_year"`
	DeathYear       *int        `json:"death_year,omitempty"`
	Biography       string      `json:"biography"`
	Image           string      `json:"image"`
	MostFamousMovie [3]string   `json:"most_famous_movie"`
	Awards          string      `json:"awards"`
	Nationality     Nationality `json:"nationality"`
}

// ActressUpdate is a partial change set; nil fields are left untouched.
// DeathYear also tells an explicit null, which clears the death year, from an absent key.
// ID and Name are accepted so payloads decode, but updates never apply them.
type ActressUpdate struct {
	ID              *int         `json:"id,omitempty"`
	Name            *string      `json:"name,omitempty"`
	BirthYear       *int         `json:"birth_year,omitempty"`
	DeathYear       NullableInt  `json:"death_year"`
	Biography       *string      `json:"biography,omitempty"`
	Image           *string      `json:"image,omitempty"`
	MostFamousMovie *[3]string   `json:"most_famous_movie,omitempty"`
	Awards          *string      `json:"awards,omitempty"`
	Nationality     *Nationality `json:"nationality,omitempty"`
}

// WithID builds the Actress described by d under the given id.
func (d ActressDraft) WithID(id int) Actress {
	return Actress{
		Person: Person{
			ID:        id,
			Name:      d.Name,
			BirthYear: d.BirthYear,
			DeathYear: copyIntPtr(d.DeathYear),
			Biography: d.Biography,
			Image:     d.Image,
		},
		MostFamousMovie: d.MostFamousMovie,
		Awards:          d.Awards,
		Nationality:     d.Nationality,
	}
}
