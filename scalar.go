package ruddr

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Formats enforced by the scalar types. Each pattern is anchored at both
// ends so partial matches are rejected.
const (
	identifierPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`
	datePattern       = `^\d{4}-\d{2}-\d{2}$`
	timestampPattern  = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`
	slugPattern       = `^[a-z0-9-]+$`

	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// scalar describes one validated string format.
type scalar struct {
	name    string
	pattern string
	// format is the strfmt registry name checked after the pattern, if any.
	format string
}

var (
	identifierScalar = scalar{name: "identifier", pattern: identifierPattern, format: "uuid"}
	dateScalar       = scalar{name: "date", pattern: datePattern, format: "date"}
	timestampScalar  = scalar{name: "timestamp", pattern: timestampPattern, format: "date-time"}
	slugScalar       = scalar{name: "slug", pattern: slugPattern}
)

func (s scalar) check(value string) error {
	if verr := validate.Pattern(s.name, "", value, s.pattern); verr != nil {
		return validationError(codeInvalidInput, fmt.Sprintf("invalid %s: %q", s.name, value), verr)
	}
	if s.format == "" {
		return nil
	}
	if verr := validate.FormatOf(s.name, "", s.format, value, strfmt.Default); verr != nil {
		return validationError(codeInvalidInput, fmt.Sprintf("invalid %s: %q", s.name, value), verr)
	}
	return nil
}

// Identifier is a Ruddr object id in canonical 8-4-4-4-12 hex form.
//
// The zero value means "no identifier" and is never sent as a filter.
type Identifier struct {
	value string
}

// ParseIdentifier validates s and wraps it.
func ParseIdentifier(s string) (Identifier, error) {
	if err := identifierScalar.check(s); err != nil {
		return Identifier{}, err
	}
	return Identifier{value: s}, nil
}

func (id Identifier) String() string { return id.value }

// IsZero reports whether id is the zero value.
func (id Identifier) IsZero() bool { return id.value == "" }

func (id Identifier) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Date is a calendar date in YYYY-MM-DD form.
type Date struct {
	value string
}

// ParseDate validates s and wraps it. Impossible dates such as 2024-02-30
// are rejected as well as malformed ones.
func ParseDate(s string) (Date, error) {
	if err := dateScalar.check(s); err != nil {
		return Date{}, err
	}
	return Date{value: s}, nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{value: t.Format(strfmt.RFC3339FullDate)}
}

func (d Date) String() string { return d.value }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.value == "" }

// Time returns the date as midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(strfmt.RFC3339FullDate, d.value)
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.value), nil }

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is a UTC instant in YYYY-MM-DDThh:mm:ss.mmmZ form, the ISO 8601
// extended format with milliseconds.
type Timestamp struct {
	value string
}

// ParseTimestamp validates s and wraps it.
func ParseTimestamp(s string) (Timestamp, error) {
	if err := timestampScalar.check(s); err != nil {
		return Timestamp{}, err
	}
	return Timestamp{value: s}, nil
}

// TimestampOf renders t in UTC with millisecond precision.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{value: t.UTC().Format(timestampLayout)}
}

func (ts Timestamp) String() string { return ts.value }

// IsZero reports whether ts is the zero value.
func (ts Timestamp) IsZero() bool { return ts.value == "" }

// Time parses the timestamp.
func (ts Timestamp) Time() (time.Time, error) {
	dt, err := strfmt.ParseDateTime(ts.value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(dt), nil
}

func (ts Timestamp) MarshalText() ([]byte, error) { return []byte(ts.value), nil }

func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Slug is a human-readable key made of lowercase letters, digits and hyphens.
type Slug struct {
	value string
}

// ParseSlug validates s and wraps it.
func ParseSlug(s string) (Slug, error) {
	if err := slugScalar.check(s); err != nil {
		return Slug{}, err
	}
	return Slug{value: s}, nil
}

func (s Slug) String() string { return s.value }

// IsZero reports whether s is the zero value.
func (s Slug) IsZero() bool { return s.value == "" }

func (s Slug) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *Slug) UnmarshalText(text []byte) error {
	parsed, err := ParseSlug(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseIdentifiers validates every element of values. The first invalid
// element fails the whole call.
func ParseIdentifiers(values []string) ([]Identifier, error) {
	return parseEach(values, ParseIdentifier)
}

// ParseDates validates every element of values.
func ParseDates(values []string) ([]Date, error) {
	return parseEach(values, ParseDate)
}

// ParseTimestamps validates every element of values.
func ParseTimestamps(values []string) ([]Timestamp, error) {
	return parseEach(values, ParseTimestamp)
}

// ParseSlugs validates every element of values.
func ParseSlugs(values []string) ([]Slug, error) {
	return parseEach(values, ParseSlug)
}

func parseEach[S any](values []string, parse func(string) (S, error)) ([]S, error) {
	out := make([]S, 0, len(values))
	for _, v := range values {
		s, err := parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
