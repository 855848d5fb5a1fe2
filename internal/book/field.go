// Package book implements the in-memory contact model: validated field
// values, records, and the keyed address book with its upcoming-birthday
// query.
package book

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Name is a contact's display name and its unique key in the Book.
type Name struct {
	value string
}

// NewName validates that raw is non-empty.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, &ValidationError{Field: "name", Reason: config.ErrEmptyName}
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// PhoneNumber is an immutable, validated phone value: exactly ten ASCII
// digits, stored as entered. Equality is value equality.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw. No normalization is applied; "123-456-789"
// is rejected rather than stripped.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if len(raw) != config.PhoneLength || !allDigits(raw) {
		return PhoneNumber{}, &ValidationError{Field: "phone", Reason: config.ErrPhoneFormat}
	}
	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date parsed strictly from DD.MM.YYYY.
// It re-renders to the identical string.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw against config.DateFormatBirthday (zero padding
// required) and rejects dates strictly after now's calendar date.
func NewBirthday(raw string, now time.Time) (Birthday, error) {
	date, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: config.ErrBirthdayFormat}
	}
	// time.Parse tolerates missing zero padding ("5.6.2024"); the format is
	// fixed-width, so require an exact round trip.
	if date.Format(config.DateFormatBirthday) != raw {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: config.ErrBirthdayFormat}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: config.ErrBirthdayFuture}
	}
	return Birthday{date: date}, nil
}

// Date returns the parsed calendar date (UTC, midnight).
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}
