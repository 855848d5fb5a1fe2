package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record holds one contact: a name, an ordered phone list (duplicates
// allowed, insertion order preserved) and at most one birthday. Records are
// owned by the Book that stores them and mutated only through these methods.
type Record struct {
	Name     Name
	Phones   []PhoneNumber
	Birthday *Birthday
}

// NewRecord creates a record with an empty phone list and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n}, nil
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// FindPhone returns the first phone whose value equals number, or nil.
func (r *Record) FindPhone(number string) *PhoneNumber {
	for i := range r.Phones {
		if r.Phones[i].value == number {
			return &r.Phones[i]
		}
	}
	return nil
}

// RemovePhone removes the first phone equal to number. It returns a
// not-found error only when the number is absent; a successful removal
// never errors.
func (r *Record) RemovePhone(number string) error {
	for i := range r.Phones {
		if r.Phones[i].value == number {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: config.KindPhone, Key: number}
}

// EditPhone replaces the first occurrence of oldNumber with newNumber.
// newNumber is validated before anything is touched, so a failed edit
// leaves the phone list exactly as it was.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	phone, err := NewPhoneNumber(newNumber)
	if err != nil {
		return err
	}
	for i := range r.Phones {
		if r.Phones[i].value == oldNumber {
			r.Phones[i] = phone
			return nil
		}
	}
	return &NotFoundError{Kind: config.KindPhone, Key: oldNumber}
}

// SetBirthday parses raw (DD.MM.YYYY, not in the future relative to now)
// and replaces any existing birthday.
func (r *Record) SetBirthday(raw string, now time.Time) error {
	b, err := NewBirthday(raw, now)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// PhoneList renders the phone values joined by "; ", or a sentinel marker
// when the record has none.
func (r *Record) PhoneList() string {
	if len(r.Phones) == 0 {
		return config.NoPhonesMarker
	}
	values := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		values[i] = p.String()
	}
	return strings.Join(values, config.PhoneSeparator)
}

// String renders the record in the fixed human-readable layout used by the
// all command.
func (r *Record) String() string {
	suffix := ""
	if r.Birthday != nil {
		suffix = fmt.Sprintf(config.FormatRecordBirthday, r.Birthday)
	}
	return fmt.Sprintf(config.FormatRecord, r.Name, r.PhoneList(), suffix)
}
