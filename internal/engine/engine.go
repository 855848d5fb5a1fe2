// Package engine converts between the in-memory book and the interchange
// formats around it: vCard streams on the way in and out, and an iCalendar
// feed of upcoming birthdays.
package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Generator builds the birthday feed and drives vCard imports.
type Generator struct {
	Clock   book.Clock   // Interface for time mocking.
	Fetcher VCardFetcher // Interface for network abstraction.
}

// BuildCalendar renders the book's upcoming birthdays (inclusive window of
// windowDays) as an iCalendar document. One all-day VEVENT per greeting,
// dated on the weekend-adjusted congratulation date. An empty window yields
// a minimal valid stub calendar.
func (g *Generator) BuildCalendar(b *book.Book, windowDays int) ([]byte, error) {
	start := time.Now()
	greetings := b.UpcomingBirthdays(windowDays)
	if len(greetings) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.Clock.Now().UTC())

	for _, greeting := range greetings {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(greeting))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, greeting.Name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(greeting.Date)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgFeedBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyUpcoming, len(greetings),
		config.LogKeyWindow, windowDays,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// eventUID derives a stable identifier from the greeting itself so feed
// clients do not duplicate events across refreshes.
func eventUID(g book.Greeting) string {
	input := fmt.Sprintf(config.FormatHashInput,
		g.Name, g.Date.Format(config.DateFormatVCardDash), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, g.Date.Year(), config.ICalDomain)
}
