package geodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_Prev(t *testing.T) {
	tests := []struct {
		name string
		in   Period
		want Period
	}{
		{name: "mid year", in: Period{2024, time.May}, want: Period{2024, time.April}},
		{name: "february", in: Period{2024, time.February}, want: Period{2024, time.January}},
		{name: "year wrap", in: Period{2024, time.January}, want: Period{2023, time.December}},
		{name: "december", in: Period{2023, time.December}, want: Period{2023, time.November}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Prev())
		})
	}
}

func TestPeriod_PrevWalksBackAFullYear(t *testing.T) {
	p := Period{2024, time.March}
	for i := 0; i < 12; i++ {
		p = p.Prev()
	}
	assert.Equal(t, Period{2023, time.March}, p)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2019-12")
	require.NoError(t, err)
	assert.Equal(t, Period{2019, time.December}, p)
	assert.Equal(t, "2019-12", p.String())

	for _, in := range []string{"", "2019", "2019-13", "2019-00", "12-2019", "2019/12"} {
		_, err := ParsePeriod(in)
		assert.Error(t, err, in)
	}
}

func TestCurrentPeriod(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, time.January, 1, 1, 0, 0, 0, loc)

	assert.Equal(t, Period{2024, time.December}, CurrentPeriod(now))
}

func TestPeriod_IsZero(t *testing.T) {
	assert.True(t, Period{}.IsZero())
	assert.False(t, Period{2024, time.May}.IsZero())
}
