package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfTruncatesTime(t *testing.T) {
	instant := time.Date(2026, time.June, 3, 23, 59, 58, 0, time.UTC)
	d := DateOf(instant)

	assert.Equal(t, "2026-06-03", d.String())
	assert.Equal(t, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-06-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-03", d.String())

	_, err = ParseDate("06/03/2026")
	assert.Error(t, err)
}

func TestDateFriendly(t *testing.T) {
	d := NewDate(2026, time.June, 3)
	assert.Equal(t, "Wednesday, June 03", d.Friendly())
}

func TestDateEqual(t *testing.T) {
	a := NewDate(2026, time.June, 3)
	b := DateOf(time.Date(2026, time.June, 3, 15, 0, 0, 0, time.UTC))
	c := NewDate(2026, time.June, 4)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.June, 3)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-06-03"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`123`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.June, 3, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-06-03", d.String())

	require.NoError(t, d.Scan("2026-06-04"))
	assert.Equal(t, "2026-06-04", d.String())

	assert.Error(t, d.Scan(42))
}
