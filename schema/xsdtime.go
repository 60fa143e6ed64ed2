package schema

import (
	"fmt"
	"time"
)

// Layouts of the xsd:date and xsd:time lexical forms. The zone is optional
// on input; output always carries it.
const (
	dateLayout     = "2006-01-02Z07:00"
	dateLayoutNoTZ = "2006-01-02"
	timeLayout     = "15:04:05Z07:00"
	timeLayoutNoTZ = "15:04:05"
)

// Date is the calendar date part of a time, serialized as xsd:date.
// It is a defined type rather than an embedding so that time.Time's own
// JSON methods are not promoted.
type Date time.Time

// Time returns d as a time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// String returns the xsd:date form of d.
func (d Date) String() string { return d.Time().Format(dateLayout) }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := parseAny(string(text), dateLayout, dateLayoutNoTZ)
	if err != nil {
		return fmt.Errorf("bad xsd:date %q: %w", text, err)
	}
	*d = Date(t)
	return nil
}

// TimeOfDay is the clock part of a time, serialized as xsd:time.
type TimeOfDay time.Time

// Time returns t as a time.Time.
func (t TimeOfDay) Time() time.Time { return time.Time(t) }

// String returns the xsd:time form of t.
func (t TimeOfDay) String() string { return t.Time().Format(timeLayout) }

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	v, err := parseAny(string(text), timeLayout, timeLayoutNoTZ)
	if err != nil {
		return fmt.Errorf("bad xsd:time %q: %w", text, err)
	}
	*t = TimeOfDay(v)
	return nil
}

func parseAny(s string, layouts ...string) (t time.Time, err error) {
	for _, layout := range layouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return t, err
}
