package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

var testToday = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) // Monday

func newBook(t *testing.T) *book.Book {
	t.Helper()
	return book.New(MockClock{CurrentTime: testToday})
}

func addContact(t *testing.T, b *book.Book, name, phone, birthday string) {
	t.Helper()
	rec, err := book.NewRecord(name)
	require.NoError(t, err)
	if phone != "" {
		require.NoError(t, rec.AddPhone(phone))
	}
	if birthday != "" {
		require.NoError(t, rec.SetBirthday(birthday, b.Now()))
	}
	b.Add(rec)
}

func TestBuildCalendar(t *testing.T) {
	b := newBook(t)
	addContact(t, b, "Ann", "1234567890", "15.06.1990") // Saturday -> Monday 17.06
	addContact(t, b, "Bob", "0987654321", "01.01.1980") // outside the window

	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}

	data, err := g.BuildCalendar(b, 7)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, config.ICalProdid)
	assert.Contains(t, ics, "SUMMARY:Birthday: Ann")
	assert.Contains(t, ics, "20240617", "event must be dated on the shifted congratulation date")
	assert.NotContains(t, ics, "Bob", "contacts outside the window are not published")
}

func TestBuildCalendar_EmptyWindow(t *testing.T) {
	b := newBook(t)
	addContact(t, b, "Ann", "1234567890", "") // no birthday at all

	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}

	data, err := g.BuildCalendar(b, 7)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data),
		"an empty window yields the stub calendar, not an error")
}

func TestBuildCalendar_StableUIDs(t *testing.T) {
	b := newBook(t)
	addContact(t, b, "Ann", "1234567890", "12.06.1990")

	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}

	first, err := g.BuildCalendar(b, 7)
	require.NoError(t, err)
	second, err := g.BuildCalendar(b, 7)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second),
		"UIDs are derived from the data, so rebuilds are identical")
}

const sampleVCards = "BEGIN:VCARD\r\n" +
	"VERSION:4.0\r\n" +
	"FN:Ann\r\n" +
	"TEL:1234567890\r\n" +
	"TEL:0987654321\r\n" +
	"BDAY:1990-06-15\r\n" +
	"END:VCARD\r\n" +
	"BEGIN:VCARD\r\n" +
	"VERSION:4.0\r\n" +
	"FN:Bob\r\n" +
	"TEL:+33-1-23-45-67\r\n" +
	"END:VCARD\r\n"

func TestImportInto(t *testing.T) {
	b := newBook(t)
	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}

	count, err := g.ImportInto(context.Background(), b, strings.NewReader(sampleVCards))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ann := b.Find("Ann")
	require.NotNil(t, ann)
	assert.Equal(t, "1234567890; 0987654321", ann.PhoneList())
	require.NotNil(t, ann.Birthday)
	assert.Equal(t, "15.06.1990", ann.Birthday.String())

	// Bob's phone is not a valid 10-digit value; the card still imports.
	bob := b.Find("Bob")
	require.NotNil(t, bob)
	assert.Empty(t, bob.Phones)
}

func TestImportInto_MergesIntoExisting(t *testing.T) {
	b := newBook(t)
	addContact(t, b, "Ann", "1234567890", "")

	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}

	_, err := g.ImportInto(context.Background(), b, strings.NewReader(sampleVCards))
	require.NoError(t, err)

	ann := b.Find("Ann")
	require.NotNil(t, ann)
	// The phone already present is not duplicated by the import.
	assert.Equal(t, "1234567890; 0987654321", ann.PhoneList())
}

func TestImportInto_Cancelled(t *testing.T) {
	b := newBook(t)
	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.ImportInto(ctx, b, strings.NewReader(sampleVCards))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportVCards_RoundTrip(t *testing.T) {
	b := newBook(t)
	addContact(t, b, "Ann", "1234567890", "15.06.1990")
	addContact(t, b, "Bob", "0987654321", "")

	data, err := engine.ExportVCards(b.All())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "FN:Ann")
	assert.Contains(t, out, "FN:Bob")
	assert.Contains(t, out, "BDAY:1990-06-15")

	// Re-importing the export reproduces the book.
	fresh := newBook(t)
	g := &engine.Generator{Clock: MockClock{CurrentTime: testToday}}
	count, err := g.ImportInto(context.Background(), fresh, strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NotNil(t, fresh.Find("Ann"))
	assert.Equal(t, "1234567890", fresh.Find("Ann").PhoneList())
}
