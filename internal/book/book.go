package book

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Greeting is one result of the upcoming-birthday query: who to
// congratulate and on which (weekend-adjusted) date. It is transient and
// never stored.
type Greeting struct {
	Name string
	Date time.Time
}

// Book is the keyed collection of records. A name maps to at most one
// record; iteration follows insertion order. The Book owns its records for
// the lifetime of the session, nothing is persisted.
type Book struct {
	clock   Clock
	records map[string]*Record
	order   []string
}

// New creates an empty book. A nil clock falls back to SystemClock.
func New(clock Clock) *Book {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Book{
		clock:   clock,
		records: make(map[string]*Record),
	}
}

// Now exposes the injected clock so callers share the book's notion of
// "today".
func (b *Book) Now() time.Time {
	return b.clock.Now()
}

// Add inserts the record under its name. Adding a name twice replaces the
// stored record (last write wins) while keeping its original position in
// the iteration order.
func (b *Book) Add(r *Record) {
	key := r.Name.String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name, or nil. Exact match only.
func (b *Book) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record stored under name.
func (b *Book) Delete(name string) error {
	if _, exists := b.records[name]; !exists {
		return &NotFoundError{Kind: config.KindContact, Key: name}
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored records.
func (b *Book) Len() int {
	return len(b.records)
}

// All returns the records in insertion order.
func (b *Book) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays returns one greeting per record whose birthday occurs
// within [0, windowDays] days of today. An occurrence that already passed
// this year rolls over to next year; an occurrence landing on a weekend is
// congratulated on the following Monday. Output follows insertion order and
// is empty (never an error) when nothing qualifies.
//
// A Feb 29 birthday resolves to Mar 1 in non-leap target years: time.Date
// normalizes the overflow, which gives one deterministic, documented
// policy.
func (b *Book) UpcomingBirthdays(windowDays int) []Greeting {
	today := startOfDay(b.clock.Now())

	var out []Greeting
	for _, rec := range b.All() {
		if rec.Birthday == nil {
			continue
		}
		born := rec.Birthday.Date()

		occurrence := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		if occurrence.Before(today) {
			occurrence = time.Date(today.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		}

		// The window test uses the real occurrence; the weekend shift
		// applies afterwards and may land outside the window.
		days := int(occurrence.Sub(today).Hours() / 24)
		if days < 0 || days > windowDays {
			continue
		}

		out = append(out, Greeting{
			Name: rec.Name.String(),
			Date: shiftFromWeekend(occurrence),
		})
	}
	return out
}

// startOfDay projects t onto a UTC calendar date so day arithmetic is exact
// regardless of the wall clock's zone or DST.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// shiftFromWeekend moves Saturday and Sunday dates to the following Monday.
func shiftFromWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, config.DaysShiftSaturday)
	case time.Sunday:
		return date.AddDate(0, 0, config.DaysShiftSunday)
	default:
		return date
	}
}
