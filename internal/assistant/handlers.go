package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/server"
)

// Handler owns the wiring between commands and the book. Every command
// method returns a reply string or a typed error; Dispatch is the single
// place where errors become user-facing text.
type Handler struct {
	ctx        context.Context
	book       *book.Book
	generator  *engine.Generator
	feed       *server.FeedServer // nil when the feed server is disabled
	messages   *Messages
	window     int
	importURL  string
	importUser string
	importPass string
}

// NewHandler wires a handler from its collaborators. importPass is resolved
// by the caller (keyring lookup) so this package stays free of secret
// handling.
func NewHandler(ctx context.Context, b *book.Book, g *engine.Generator, feed *server.FeedServer, msgs *Messages, settings *config.Settings, importPass string) *Handler {
	return &Handler{
		ctx:        ctx,
		book:       b,
		generator:  g,
		feed:       feed,
		messages:   msgs,
		window:     settings.WindowDays,
		importURL:  settings.Import.URL,
		importUser: settings.Import.User,
		importPass: importPass,
	}
}

// Dispatch executes one command and reports whether the loop should stop.
// Typed errors from the core are converted here, exactly once, into the
// "Error: <message>" shape; nothing below this boundary formats errors for
// display.
func (h *Handler) Dispatch(command string, args []string) (reply string, quit bool) {
	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyCommand, command,
		config.LogKeyCount, len(args),
	)

	if command == config.CmdExit || command == config.CmdClose {
		return h.messages.Get(config.TKeyGoodbye), true
	}

	reply, err := h.handle(command, args)
	if err != nil {
		return fmt.Sprintf(config.FormatError, err), false
	}
	return reply, false
}

func (h *Handler) handle(command string, args []string) (string, error) {
	switch command {
	case config.CmdHello:
		return h.messages.Get(config.TKeyGreeting), nil
	case config.CmdAdd:
		return h.addContact(args)
	case config.CmdChange:
		return h.changeContact(args)
	case config.CmdPhone:
		return h.showPhones(args)
	case config.CmdAll:
		return h.listAll()
	case config.CmdAddBirthday:
		return h.addBirthday(args)
	case config.CmdShowBirthday:
		return h.showBirthday(args)
	case config.CmdBirthdays:
		return h.upcomingBirthdays()
	case config.CmdDelete:
		return h.deleteContact(args)
	case config.CmdImport:
		return h.importFile(args)
	case config.CmdImportURL:
		return h.importRemote()
	case config.CmdExport:
		return h.exportContacts()
	case config.CmdHelp:
		return h.messages.Get(config.TKeyHelp), nil
	default:
		return h.messages.Get(config.TKeyInvalidCommand), nil
	}
}

// addContact finds or creates the record, then appends the phone. The
// record is only stored once the phone validates, so a typo never leaves a
// phone-less contact behind.
func (h *Handler) addContact(args []string) (string, error) {
	if err := requireArgs(args, "name", "phone"); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	rec := h.book.Find(name)
	if rec == nil {
		fresh, err := book.NewRecord(name)
		if err != nil {
			return "", err
		}
		if err := fresh.AddPhone(phone); err != nil {
			return "", err
		}
		h.book.Add(fresh)
	} else if err := rec.AddPhone(phone); err != nil {
		return "", err
	}

	h.refreshFeed()
	return h.messages.Get(config.TKeyContactAdded), nil
}

func (h *Handler) changeContact(args []string) (string, error) {
	if err := requireArgs(args, "name", "old phone", "new phone"); err != nil {
		return "", err
	}
	rec := h.book.Find(args[0])
	if rec == nil {
		return "", &book.NotFoundError{Kind: config.KindContact, Key: args[0]}
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	h.refreshFeed()
	return h.messages.Get(config.TKeyContactUpdated), nil
}

func (h *Handler) showPhones(args []string) (string, error) {
	if err := requireArgs(args, "name"); err != nil {
		return "", err
	}
	rec := h.book.Find(args[0])
	if rec == nil {
		return "", &book.NotFoundError{Kind: config.KindContact, Key: args[0]}
	}
	return rec.PhoneList(), nil
}

func (h *Handler) listAll() (string, error) {
	if h.book.Len() == 0 {
		return h.messages.Get(config.TKeyNoContacts), nil
	}
	lines := make([]string, 0, h.book.Len())
	for _, rec := range h.book.All() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) addBirthday(args []string) (string, error) {
	if err := requireArgs(args, "name", "date"); err != nil {
		return "", err
	}
	rec := h.book.Find(args[0])
	if rec == nil {
		return "", &book.NotFoundError{Kind: config.KindContact, Key: args[0]}
	}
	if err := rec.SetBirthday(args[1], h.book.Now()); err != nil {
		return "", err
	}
	h.refreshFeed()
	return h.messages.Get(config.TKeyBirthdayAdded), nil
}

func (h *Handler) showBirthday(args []string) (string, error) {
	if err := requireArgs(args, "name"); err != nil {
		return "", err
	}
	rec := h.book.Find(args[0])
	if rec == nil {
		return "", &book.NotFoundError{Kind: config.KindContact, Key: args[0]}
	}
	if rec.Birthday == nil {
		return "", &book.NotFoundError{Kind: config.KindBirthday, Key: args[0]}
	}
	return fmt.Sprintf(config.FormatNameDate, rec.Name, rec.Birthday), nil
}

func (h *Handler) upcomingBirthdays() (string, error) {
	greetings := h.book.UpcomingBirthdays(h.window)
	h.refreshFeed()

	if len(greetings) == 0 {
		return h.messages.Get(config.TKeyNoUpcoming), nil
	}
	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf(config.FormatNameDate, g.Name, g.Date.Format(config.DateFormatBirthday))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) deleteContact(args []string) (string, error) {
	if err := requireArgs(args, "name"); err != nil {
		return "", err
	}
	if err := h.book.Delete(args[0]); err != nil {
		return "", err
	}
	h.refreshFeed()
	return h.messages.Get(config.TKeyContactDeleted), nil
}

func (h *Handler) importFile(args []string) (string, error) {
	if err := requireArgs(args, "file"); err != nil {
		return "", err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrImportFileOpen, err)
	}
	defer func() { _ = f.Close() }()

	count, err := h.generator.ImportInto(h.ctx, h.book, f)
	if err != nil {
		return "", err
	}
	h.refreshFeed()
	return h.messages.GetCount(config.TKeyImported, count), nil
}

func (h *Handler) importRemote() (string, error) {
	if h.importURL == "" {
		return "", errors.New(config.ErrImportURLEmpty)
	}
	if h.generator.Fetcher == nil {
		return "", errors.New(config.ErrFetcherMissing)
	}

	rc, err := h.generator.Fetcher.Fetch(h.ctx, h.importURL, h.importUser, h.importPass)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	count, err := h.generator.ImportInto(h.ctx, h.book, rc)
	if err != nil {
		return "", err
	}
	h.refreshFeed()
	return h.messages.GetCount(config.TKeyImported, count), nil
}

func (h *Handler) exportContacts() (string, error) {
	data, err := engine.ExportVCards(h.book.All())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// refreshFeed republishes the birthday feed after a mutation. A build
// failure only degrades the feed, never the command that triggered it.
func (h *Handler) refreshFeed() {
	if h.feed == nil {
		return
	}
	data, err := h.generator.BuildCalendar(h.book, h.window)
	if err != nil {
		slog.Warn(config.ErrICalEncode,
			config.LogKeyComponent, config.CompAssistant,
			config.LogKeyError, err,
		)
		return
	}
	h.feed.Update(data)
}

// requireArgs checks positional arguments against their names and reports
// the first missing one.
func requireArgs(args []string, names ...string) error {
	if len(args) >= len(names) {
		return nil
	}
	return &book.NotFoundError{Kind: config.KindArgument, Key: names[len(args)]}
}
