package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNativeTime(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	local := time.Date(2024, 3, 10, 14, 30, 0, 0, bogota)
	got, err := Normalize(local)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local), "normalizing must not shift the instant")
}

func TestNormalizePointer(t *testing.T) {
	instant := time.Date(2024, 3, 10, 19, 30, 0, 0, time.UTC)
	got, err := Normalize(&instant)
	require.NoError(t, err)
	assert.True(t, got.Equal(instant))

	var nilTime *time.Time
	_, err = Normalize(nilTime)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestNormalizeStrings(t *testing.T) {
	want := time.Date(2024, 3, 10, 19, 30, 0, 0, time.UTC)

	cases := map[string]string{
		"rfc3339 utc":      "2024-03-10T19:30:00Z",
		"rfc3339 offset":   "2024-03-10T14:30:00-05:00",
		"naive T":          "2024-03-10T19:30:00",
		"naive space":      "2024-03-10 19:30:00",
		"naive fractional": "2024-03-10 19:30:00.000000",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Normalize(input)
			require.NoError(t, err)
			assert.Equal(t, time.UTC, got.Location())
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestNormalizeBytes(t *testing.T) {
	got, err := Normalize([]byte("2024-03-10T19:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 19, 30, 0, 0, time.UTC), got)
}

func TestNormalizeInvalid(t *testing.T) {
	for _, input := range []any{"", "not a timestamp", "10/03/2024", 42, nil} {
		_, err := Normalize(input)
		assert.ErrorIs(t, err, ErrInvalidTimestamp, "input %v", input)
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	// Normalizing an already-canonical instant is a no-op.
	canonical, err := Normalize("2024-03-10T19:30:00Z")
	require.NoError(t, err)

	again, err := Normalize(canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, again)

	asString, err := Normalize(canonical.Format(time.RFC3339Nano))
	require.NoError(t, err)
	assert.True(t, asString.Equal(canonical))
}

func TestDisplay(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	stored := time.Date(2024, 3, 10, 19, 30, 0, 0, time.UTC)
	shown := Display(stored, bogota)

	assert.Equal(t, 14, shown.Hour(), "Bogota is UTC-5")
	assert.True(t, shown.Equal(stored), "display conversion must not shift the instant")

	assert.Equal(t, time.UTC, Display(stored, nil).Location())
}

func TestLoadDisplayZone(t *testing.T) {
	loc, err := LoadDisplayZone("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = LoadDisplayZone(DefaultDisplayZone)
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", loc.String())

	_, err = LoadDisplayZone("Not/AZone")
	assert.Error(t, err)
}
