package geodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "default", url: DefaultURL},
		{name: "templated", url: "https://example.com/{year}/{month}/GeoLite2-City.mmdb"},
		{name: "empty", url: " ", wantErr: true},
		{name: "relative", url: "GeoLite2-City.mmdb", wantErr: true},
		{name: "ftp", url: "ftp://example.com/db.mmdb", wantErr: true},
		{name: "no host", url: "https:///db.mmdb", wantErr: true},
		{name: "garbage", url: "http://exa mple.com/%zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSource_URL(t *testing.T) {
	fixed, err := NewSource(DefaultURL)
	require.NoError(t, err)
	assert.False(t, fixed.Templated())
	assert.Equal(t, DefaultURL, fixed.URL(Period{2024, time.May}))
	assert.Equal(t, DefaultURL, fixed.URL(Period{1999, time.January}))

	templated, err := NewSource("https://example.com/{year}-{month}/GeoLite2-City.mmdb")
	require.NoError(t, err)
	assert.True(t, templated.Templated())
	assert.Equal(t, "https://example.com/2024-05/GeoLite2-City.mmdb", templated.URL(Period{2024, time.May}))
	assert.Equal(t, "https://example.com/2023-12/GeoLite2-City.mmdb", templated.URL(Period{2023, time.December}))
}
