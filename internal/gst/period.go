package gst

import (
	"fmt"
	"time"

	"gstreturns/internal/domain"
)

// Period is a monthly filing period.
type Period struct {
	Year  int
	Month time.Month
	loc   *time.Location
}

// ParsePeriod parses "YYYY-MM". Dates derived from the period are in loc; nil means UTC.
func ParsePeriod(s string, loc *time.Location) (Period, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil || len(s) != 7 {
		return Period{}, domain.NewFieldError(domain.ErrInvalidPeriod, "period", s, "YYYY-MM")
	}
	return Period{Year: t.Year(), Month: t.Month(), loc: loc}, nil
}

// NewPeriod builds a Period from its parts.
func NewPeriod(year int, month time.Month, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	return Period{Year: year, Month: month, loc: loc}
}

func (p Period) location() *time.Location {
	if p.loc == nil {
		return time.UTC
	}
	return p.loc
}

// String returns the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// ReturnPeriod returns the period in the portal's "MMYYYY" form.
func (p Period) ReturnPeriod() string {
	return fmt.Sprintf("%02d%04d", int(p.Month), p.Year)
}

// Start is midnight on the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.location())
}

// End is midnight on the last day of the period; documents dated on End are included.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Contains reports whether t falls on a calendar day inside the period.
func (p Period) Contains(t time.Time) bool {
	t = t.In(p.location())
	return t.Year() == p.Year && t.Month() == p.Month
}

// DueDate is the given day of the following month, the GSTR-3B due date.
func (p Period) DueDate(day int) time.Time {
	return time.Date(p.Year, p.Month+1, day, 0, 0, 0, 0, p.location())
}

// DaysAfter counts whole calendar days from due to now in the period's location.
// It is zero when now is on or before due.
func (p Period) DaysAfter(due, now time.Time) int {
	loc := p.location()
	n := now.In(loc)
	d := due.In(loc)
	nDay := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	dDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	days := int(nDay.Sub(dDay).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
