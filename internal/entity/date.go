package entity

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// IsValidDate reports whether s is a YYYY-MM-DD date that exists on the
// calendar.
func IsValidDate(s string) bool {
	if strings.TrimSpace(s) == "" || len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func IsFirstDayOfMonth(s string) bool {
	if !IsValidDate(s) {
		return false
	}
	d, _ := ParseDate(s)
	return d.Day() == 1
}

func IsLastDayOfMonth(s string) bool {
	if !IsValidDate(s) {
		return false
	}
	d, _ := ParseDate(s)
	return d.AddDate(0, 0, 1).Day() == 1
}

// DateRange is an inclusive span of calendar days. The zero value means
// no bound.
type DateRange struct {
	From time.Time
	To   time.Time
}

var ErrInvalidDateRange = errors.New("date range needs both ends as YYYY-MM-DD with from not after to")

// ParseDateRange accepts two empty strings (no bound) or two valid dates
// with from <= to.
func ParseDateRange(from, to string) (DateRange, error) {
	if from == "" && to == "" {
		return DateRange{}, nil
	}
	if !IsValidDate(from) || !IsValidDate(to) {
		return DateRange{}, ErrInvalidDateRange
	}

	f, _ := ParseDate(from)
	t, _ := ParseDate(to)
	if f.After(t) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{From: f, To: t}, nil
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Key is a stable text form of the range, empty when unbounded.
func (r DateRange) Key() string {
	if r.IsZero() {
		return ""
	}
	return FormatDate(r.From) + ":" + FormatDate(r.To)
}

// IsCalendarMonth reports whether the range covers exactly one whole month.
func (r DateRange) IsCalendarMonth() bool {
	if r.IsZero() || r.From.Year() != r.To.Year() || r.From.Month() != r.To.Month() {
		return false
	}
	return IsFirstDayOfMonth(FormatDate(r.From)) && IsLastDayOfMonth(FormatDate(r.To))
}
