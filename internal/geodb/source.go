package geodb

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Placeholders recognised in a source URL.
const (
	YearPlaceholder  = "{year}"
	MonthPlaceholder = "{month}"
)

// DefaultURL is a short-link redirecting to the latest GeoLite2 City database.
const DefaultURL = "https://git.io/GeoLite2-City.mmdb"

// Source resolves the download URL for a given period.
type Source struct {
	raw string
}

// NewSource validates rawURL and returns a Source for it. rawURL may contain
// {year} and {month} placeholders.
func NewSource(rawURL string) (Source, error) {
	if strings.TrimSpace(rawURL) == "" {
		return Source{}, errors.New("no URL specified")
	}

	s := Source{raw: rawURL}
	u, err := url.Parse(s.URL(Period{Year: 2000, Month: 1}))
	if err != nil {
		return Source{}, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Source{}, fmt.Errorf("invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return Source{}, fmt.Errorf("invalid URL %q: missing host", rawURL)
	}

	return s, nil
}

// Templated reports whether the URL changes with the period.
func (s Source) Templated() bool {
	return strings.Contains(s.raw, YearPlaceholder) || strings.Contains(s.raw, MonthPlaceholder)
}

// URL returns the download URL for p.
func (s Source) URL(p Period) string {
	if !s.Templated() {
		return s.raw
	}
	return strings.NewReplacer(
		YearPlaceholder, fmt.Sprintf("%04d", p.Year),
		MonthPlaceholder, fmt.Sprintf("%02d", int(p.Month)),
	).Replace(s.raw)
}

func (s Source) String() string {
	return s.raw
}
