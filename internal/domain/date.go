package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are tried in order when decoding a Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Date is a server timestamp that may be sent as a date, a zone-less
// date-time or an RFC 3339 value. Zone-less values are read as UTC.
// The zero Date means "not set".
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) Date { return Date{Time: t} }

// ParseDate parses s with the accepted layouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("domain: unrecognized date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("domain: date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}
