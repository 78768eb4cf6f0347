package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validActressJSON = `{
	"id": 1,
	"name": "Meryl Streep",
	"birth_year": 1949,
	"biography": "American actress.",
	"image": "https://example.test/meryl.jpg",
	"most_famous_movie": ["The Devil Wears Prada", "Sophie's Choice", "Kramer vs. Kramer"],
	"awards": "3 Academy Awards",
	"nationality": "American"
}`

const validActorJSON = `{
	"id": 4,
	"name": "Sean Connery",
	"birth_year": 1930,
	"death_year": 2020,
	"biography": "Scottish actor.",
	"image": "https://example.test/sean.jpg",
	"known_for": ["Dr. No", "Goldfinger", "The Untouchables"],
	"awards": ["Academy Award", "BAFTA"],
	"nationality": "Scottish"
}`

func decode(t *testing.T, raw string) any {
	t.Helper()
	v, err := Decode([]byte(raw))
	require.NoError(t, err)
	return v
}

// mutate decodes raw, applies fn to the top-level object and returns it.
func mutate(t *testing.T, raw string, fn func(obj map[string]any)) any {
	t.Helper()
	v := decode(t, raw)
	fn(v.(map[string]any))
	return v
}

func TestActressAcceptsValidRecord(t *testing.T) {
	assert.NoError(t, Actress(decode(t, validActressJSON)))
	assert.True(t, IsActress(decode(t, validActressJSON)))
}

func TestActorAcceptsValidRecord(t *testing.T) {
	assert.NoError(t, Actor(decode(t, validActorJSON)))
	assert.True(t, IsActor(decode(t, validActorJSON)))
}

func TestNonObjectsAreRejected(t *testing.T) {
	for _, raw := range []string{`null`, `[]`, `[{"id":1}]`, `"text"`, `42`, `true`} {
		v := decode(t, raw)
		assert.ErrorIs(t, Actress(v), ErrNotObject, raw)
		assert.ErrorIs(t, Actor(v), ErrNotObject, raw)
		assert.False(t, IsActress(v), raw)
	}
	var typedNil map[string]any
	assert.ErrorIs(t, Actress(typedNil), ErrNotObject)
}

func TestActressViolations(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(obj map[string]any)
		wantErr error
		wantMsg string
	}{
		{"missing id", func(o map[string]any) { delete(o, "id") }, ErrMissingField, `"id"`},
		{"string id", func(o map[string]any) { o["id"] = "1" }, ErrWrongType, `"id"`},
		{"fractional id", func(o map[string]any) { o["id"] = json.Number("1.5") }, ErrWrongType, `"id"`},
		{"numeric name", func(o map[string]any) { o["name"] = json.Number("7") }, ErrWrongType, `"name"`},
		{"missing birth_year", func(o map[string]any) { delete(o, "birth_year") }, ErrMissingField, `"birth_year"`},
		{"exponent birth_year", func(o map[string]any) { o["birth_year"] = json.Number("1.97e3") }, ErrWrongType, `"birth_year"`},
		{"decimal birth_year", func(o map[string]any) { o["birth_year"] = json.Number("1970.0") }, ErrWrongType, `"birth_year"`},
		{"exponent death_year", func(o map[string]any) { o["death_year"] = json.Number("2e3") }, ErrWrongType, `"death_year"`},
		{"string death_year", func(o map[string]any) { o["death_year"] = "1990" }, ErrWrongType, `"death_year"`},
		{"missing biography", func(o map[string]any) { delete(o, "biography") }, ErrMissingField, `"biography"`},
		{"numeric image", func(o map[string]any) { o["image"] = json.Number("3") }, ErrWrongType, `"image"`},
		{"movies not array", func(o map[string]any) { o["most_famous_movie"] = "Heat" }, ErrWrongType, `"most_famous_movie"`},
		{"two movies", func(o map[string]any) { o["most_famous_movie"] = []any{"a", "b"} }, ErrWrongLength, "exactly 3"},
		{"four movies", func(o map[string]any) { o["most_famous_movie"] = []any{"a", "b", "c", "d"} }, ErrWrongLength, "exactly 3"},
		{"non-string movie", func(o map[string]any) { o["most_famous_movie"] = []any{"a", json.Number("2"), "c"} }, ErrWrongType, `"most_famous_movie"[1]`},
		{"awards as list", func(o map[string]any) { o["awards"] = []any{"Oscar"} }, ErrWrongType, `"awards"`},
		{"numeric nationality", func(o map[string]any) { o["nationality"] = json.Number("1") }, ErrWrongType, `"nationality"`},
		{"actor-only nationality", func(o map[string]any) { o["nationality"] = "Irish" }, ErrUnknownNationality, "Irish"},
		{"unknown nationality", func(o map[string]any) { o["nationality"] = "Italian" }, ErrUnknownNationality, "Italian"},
		{"missing nationality", func(o map[string]any) { delete(o, "nationality") }, ErrMissingField, `"nationality"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Actress(mutate(t, validActressJSON, tt.fn))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestActorViolations(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(obj map[string]any)
		wantErr error
	}{
		{"no awards", func(o map[string]any) { o["awards"] = []any{} }, ErrWrongLength},
		{"three awards", func(o map[string]any) { o["awards"] = []any{"a", "b", "c"} }, ErrWrongLength},
		{"awards as string", func(o map[string]any) { o["awards"] = "Oscar" }, ErrWrongType},
		{"known_for short", func(o map[string]any) { o["known_for"] = []any{"a"} }, ErrWrongLength},
		{"missing known_for", func(o map[string]any) { delete(o, "known_for") }, ErrMissingField},
		{"unknown nationality", func(o map[string]any) { o["nationality"] = "Martian" }, ErrUnknownNationality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mutate(t, validActorJSON, tt.fn)
			assert.ErrorIs(t, Actor(v), tt.wantErr)
			assert.False(t, IsActor(v))
		})
	}
}

func TestOptionalDeathYear(t *testing.T) {
	withNull := mutate(t, validActressJSON, func(o map[string]any) { o["death_year"] = nil })
	assert.NoError(t, Actress(withNull))

	withYear := mutate(t, validActressJSON, func(o map[string]any) { o["death_year"] = json.Number("2001") })
	assert.NoError(t, Actress(withYear))
}

func TestSingleAwardActor(t *testing.T) {
	v := mutate(t, validActorJSON, func(o map[string]any) { o["awards"] = []any{"Golden Globe"} })
	assert.NoError(t, Actor(v))
}

func TestIntegersDecodedAsFloat(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(validActressJSON), &v))
	assert.NoError(t, Actress(v))

	v.(map[string]any)["birth_year"] = 1949.5
	assert.ErrorIs(t, Actress(v), ErrWrongType)
}

func TestDraftsDoNotRequireID(t *testing.T) {
	actress := mutate(t, validActressJSON, func(o map[string]any) { delete(o, "id") })
	assert.NoError(t, ActressDraft(actress))
	assert.ErrorIs(t, Actress(actress), ErrMissingField)

	actor := mutate(t, validActorJSON, func(o map[string]any) { delete(o, "id") })
	assert.NoError(t, ActorDraft(actor))

	bad := mutate(t, validActorJSON, func(o map[string]any) { o["awards"] = []any{} })
	assert.ErrorIs(t, ActorDraft(bad), ErrWrongLength)
}

func TestCrossVariantRecordsFail(t *testing.T) {
	assert.False(t, IsActor(decode(t, validActressJSON)))
	assert.False(t, IsActress(decode(t, validActorJSON)))
}
