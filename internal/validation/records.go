package validation

import "github.com/AndreaBeltramin/castfetch/internal/models"

var (
	actressChecks      = append(personChecks(true), actressFields()...)
	actressDraftChecks = append(personChecks(false), actressFields()...)
	actorChecks        = append(personChecks(true), actorFields()...)
	actorDraftChecks   = append(personChecks(false), actorFields()...)
)

func actressFields() []check {
	return []check{
		tuple("most_famous_movie", 3),
		str("awards"),
		nationality("nationality", models.Nationality.ValidForActress),
	}
}

func actorFields() []check {
	return []check{
		tuple("known_for", 3),
		stringList("awards", 1, 2),
		nationality("nationality", models.Nationality.ValidForActor),
	}
}

// Actress returns the first reason v is not a valid actress record, or nil.
func Actress(v any) error { return run(v, actressChecks) }

// IsActress reports whether v is a valid actress record.
func IsActress(v any) bool { return Actress(v) == nil }

// ActressDraft validates an actress payload that has no id yet.
func ActressDraft(v any) error { return run(v, actressDraftChecks) }

// Actor returns the first reason v is not a valid actor record, or nil.
func Actor(v any) error { return run(v, actorChecks) }

// IsActor reports whether v is a valid actor record.
func IsActor(v any) bool { return Actor(v) == nil }

// ActorDraft validates an actor payload that has no id yet.
func ActorDraft(v any) error { return run(v, actorDraftChecks) }
