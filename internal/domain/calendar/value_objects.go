package calendar

import (
	"time"

	"royal-stay/internal/pkg/errs"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Date is a calendar date without a time component, always held at UTC midnight.
type Date struct {
	t time.Time
}

// ParseDate accepts exactly YYYY-MM-DD. The round trip through Format rejects
// anything time.Parse would otherwise tolerate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return Date{}, errs.Newf(errs.ErrMalformedDate, "parse %q", s)
	}
	return Date{t: t}, nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf drops the clock part of t, keeping the calendar day as seen in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from d to o, negative when o precedes d.
// Both ends are UTC midnights, so the Unix difference divides evenly.
func (d Date) DaysUntil(o Date) int {
	return int((o.t.Unix() - d.t.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Between reports whether d falls in [from, to], inclusive on both ends.
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

type Timestamp struct {
	t time.Time
}

// ParseTimestamp accepts exactly YYYY-MM-DD HH:MM:SS. time.Parse alone would
// accept and drop a fractional-seconds suffix.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil || t.Format(TimestampLayout) != s {
		return Timestamp{}, errs.Newf(errs.ErrMalformedTimestamp, "parse %q", s)
	}
	return Timestamp{t: t}, nil
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Second)}
}

func (ts Timestamp) IsZero() bool            { return ts.t.IsZero() }
func (ts Timestamp) Time() time.Time         { return ts.t }
func (ts Timestamp) Date() Date              { return DateOf(ts.t) }
func (ts Timestamp) Before(o Timestamp) bool { return ts.t.Before(o.t) }

func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.t.Format(TimestampLayout)
}
