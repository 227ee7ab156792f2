package geodb

import (
	"fmt"
	"time"
)

// Period identifies a monthly database release.
type Period struct {
	Year  int
	Month time.Month
}

// CurrentPeriod returns the period now falls into, in UTC.
func CurrentPeriod(now time.Time) Period {
	now = now.UTC()
	return Period{Year: now.Year(), Month: now.Month()}
}

// ParsePeriod parses a period in YYYY-MM form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q, expected YYYY-MM", s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Prev returns the period one month before p.
func (p Period) Prev() Period {
	if p.Month <= time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// IsZero reports whether p is unset.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
