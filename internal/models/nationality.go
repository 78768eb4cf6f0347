package models

import "slices"

// Nationality is the closed set of nationalities the remote API uses.
type Nationality string

const (
	American        Nationality = "American"
	British         Nationality = "British"
	Australian      Nationality = "Australian"
	IsraeliAmerican Nationality = "Israeli-American"
	SouthAfrican    Nationality = "South African"
	French          Nationality = "French"
	Indian          Nationality = "Indian"
	Israeli         Nationality = "Israeli"
	Spanish         Nationality = "Spanish"
	SouthKorean     Nationality = "South Korean"
	Chinese         Nationality = "Chinese"
	Scottish        Nationality = "Scottish"
	NewZealand      Nationality = "New Zealand"
	HongKong        Nationality = "Hong Kong"
	German          Nationality = "German"
	Canadian        Nationality = "Canadian"
	Irish           Nationality = "Irish"
)

// ActressNationalities lists the values allowed on an Actress.
var ActressNationalities = []Nationality{
	American,
	British,
	Australian,
	IsraeliAmerican,
	SouthAfrican,
	French,
	Indian,
	Israeli,
	Spanish,
	SouthKorean,
	Chinese,
}

// ActorNationalities lists the values allowed on an Actor.
var ActorNationalities = []Nationality{
	American,
	British,
	Australian,
	IsraeliAmerican,
	SouthAfrican,
	French,
	Indian,
	Israeli,
	Spanish,
	SouthKorean,
	Chinese,
	Scottish,
	NewZealand,
	HongKong,
	German,
	Canadian,
	Irish,
}

// ValidForActress reports whether n may appear on an Actress.
func (n Nationality) ValidForActress() bool {
	return slices.Contains(ActressNationalities, n)
}

// ValidForActor reports whether n may appear on an Actor.
func (n Nationality) ValidForActor() bool {
	return slices.Contains(ActorNationalities, n)
}
