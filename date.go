package jsonblog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultDateLayout renders dates the way en-US browsers show a short date.
const DefaultDateLayout = "1/2/2006"

// Date is a post date. It keeps the string it was decoded from so the
// collection can be re-encoded unchanged.
type Date struct {
	time.Time
	raw string
}

// ParseDate parses any layout dateparse recognizes. Values without a zone
// are read as UTC; values with one keep the calendar day they spell out.
func ParseDate(s string) (Date, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("jsonblog: parse date %q: %w", s, err)
	}
	return Date{Time: t, raw: s}, nil
}

// MustDate is ParseDate for literals. It panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Parts returns the zero-padded year, month and day used in post URLs.
func (d Date) Parts() (year, month, day string) {
	return strconv.Itoa(d.Year()), fmt.Sprintf("%02d", int(d.Month())), fmt.Sprintf("%02d", d.Day())
}

// Display formats the date for people. An empty layout means DefaultDateLayout.
func (d Date) Display(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return d.Format(layout)
}

// String returns the decoded string, or an ISO date for constructed values.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a date string or a number of Unix milliseconds.
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("jsonblog: date must be a string or epoch milliseconds, got %s", b)
		}
		*d = Date{Time: time.UnixMilli(ms).UTC(), raw: ""}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
