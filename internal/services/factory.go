package services

import (
	"math/rand/v2"
	"slices"

	"github.com/AndreaBeltramin/castfetch/internal/constants"
	"github.com/AndreaBeltramin/castfetch/internal/models"
)

// newID draws the id of a locally created record. Collisions with existing ids are possible.
var newID = func() int {
	return rand.IntN(constants.MaxGeneratedID)
}

// CreateActress assigns a random id to draft. Nothing is sent to the remote API.
func CreateActress(draft models.ActressDraft) models.Actress {
	return draft.WithID(newID())
}

// CreateActor assigns a random id to draft. Nothing is sent to the remote API.
func CreateActor(draft models.ActorDraft) models.Actor {
	return draft.WithID(newID())
}

// UpdateActress overlays the non-nil fields of changes on a copy of existing.
// An explicit null death year clears it. ID and Name always keep the values of existing.
func UpdateActress(existing models.Actress, changes models.ActressUpdate) models.Actress {
	updated := existing
	updated.Person = updatePerson(existing.Person, changes.BirthYear, changes.DeathYear, changes.Biography, changes.Image)

	if changes.MostFamousMovie != nil {
		updated.MostFamousMovie = *changes.MostFamousMovie
	}
	if changes.Awards != nil {
		updated.Awards = *changes.Awards
	}
	if changes.Nationality != nil {
		updated.Nationality = *changes.Nationality
	}
	return updated
}

// UpdateActor overlays the non-nil fields of changes on a copy of existing.
// An explicit null death year clears it. ID and Name always keep the values of existing.
func UpdateActor(existing models.Actor, changes models.ActorUpdate) models.Actor {
	updated := existing
	updated.Person = updatePerson(existing.Person, changes.BirthYear, changes.DeathYear, changes.Biography, changes.Image)
	updated.Awards = slices.Clone(existing.Awards)

	if changes.KnownFor != nil {
		updated.KnownFor = *changes.KnownFor
	}
	if changes.Awards != nil {
		updated.Awards = slices.Clone(changes.Awards)
	}
	if changes.Nationality != nil {
		updated.Nationality = *changes.Nationality
	}
	return updated
}

// updatePerson has no parameters for ID and Name, so identity cannot change.
func updatePerson(p models.Person, birthYear *int, deathYear models.NullableInt, biography, image *string) models.Person {
	if birthYear != nil {
		p.BirthYear = *birthYear
	}
	if deathYear.Set {
		p.DeathYear = deathYear.Value
	}
	if p.DeathYear != nil {
		year := *p.DeathYear
		p.DeathYear = &year
	}
	if biography != nil {
		p.Biography = *biography
	}
	if image != nil {
		p.Image = *image
	}
	return p
}
