package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// ImportInto merges the vCard stream r into the book and returns the number
// of cards imported. Cards without a usable name, invalid phone values and
// unparsable birthdays are skipped with a log entry; a malformed card never
// aborts the rest of the stream.
func (g *Generator) ImportInto(ctx context.Context, b *book.Book, r io.Reader) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	log.InfoContext(ctx, config.MsgImportStarted)

	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, imported int }{}

	for {
		if err := ctx.Err(); err != nil {
			return stats.imported, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep going, maximize data recovery.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}
		stats.processed++

		// Name strategy: FN (Formatted) > N (Structured) > skip.
		name := ""
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}
		if name == "" {
			log.Debug(config.MsgSkippedNoName)
			continue
		}

		rec := b.Find(name)
		if rec == nil {
			rec, err = book.NewRecord(name)
			if err != nil {
				log.Debug(config.MsgSkippedNoName, config.LogKeyError, err)
				continue
			}
			b.Add(rec)
		}

		for _, tel := range card.Values(config.VCardTel) {
			if rec.FindPhone(tel) != nil {
				continue
			}
			if err := rec.AddPhone(tel); err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
				)
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if err := setBirthdayFromVCard(rec, bday.Value, b.Now()); err != nil {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday.Value,
				)
			}
		}

		stats.imported++
	}

	log.InfoContext(ctx, config.MsgImportDone,
		config.LogKeyTotal, stats.processed,
		config.LogKeyImported, stats.imported,
	)
	return stats.imported, nil
}

// setBirthdayFromVCard converts a BDAY value to the book's own date format
// before going through the regular validation path. Year-less vCard dates
// (--MM-DD) have no representable birthday here and are rejected.
func setBirthdayFromVCard(rec *book.Record, value string, now time.Time) error {
	layouts := []string{config.DateFormatVCardDash, config.DateFormatVCardBasic}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return rec.SetBirthday(t.Format(config.DateFormatBirthday), now)
		}
	}
	return fmt.Errorf("%s: %q", config.ErrVCardParse, value)
}

// ExportVCards renders the records as a vCard 4.0 stream.
func ExportVCards(records []*book.Record) ([]byte, error) {
	var buf bytes.Buffer
	encoder := vcard.NewEncoder(&buf)

	for _, rec := range records {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name.String())
		for _, phone := range rec.Phones {
			card.AddValue(config.VCardTel, phone.String())
		}
		if rec.Birthday != nil {
			card.SetValue(config.VCardBDAY, rec.Birthday.Date().Format(config.DateFormatVCardDash))
		}
		vcard.ToV4(card)

		if err := encoder.Encode(card); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return buf.Bytes(), nil
}
