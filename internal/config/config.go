package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Contacts/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Contacts"
	AppID             = "com.github.tartampluch.go-contacts"
	KeyringService    = "com.github.tartampluch.go-contacts"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConfig       = "config"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescConfig   = "Path to a settings file (YAML)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Business Rules: Phones & Birthdays
// -----------------------------------------------------------------------------

const (
	// PhoneLength is the only accepted phone number length.
	// Numbers are stored exactly as entered, no punctuation stripping.
	PhoneLength = 10

	// DateFormatBirthday is the only accepted birthday input format (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// DefaultWindowDays is the inclusive lookahead used by the birthdays command.
	DefaultWindowDays = 7

	// DaysShiftSaturday and DaysShiftSunday move a weekend congratulation
	// date forward to the following Monday.
	DaysShiftSaturday = 2
	DaysShiftSunday   = 1
)

// -----------------------------------------------------------------------------
// REPL Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdImport       = "import"
	CmdImportURL    = "import-url"
	CmdExport       = "export"
	CmdHelp         = "help"
	CmdExit         = "exit"
	CmdClose        = "close"

	Prompt = "Enter a command: "
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome        = "welcome"
	TKeyGreeting       = "greeting"
	TKeyGoodbye        = "goodbye"
	TKeyContactAdded   = "contact_added"
	TKeyContactUpdated = "contact_updated"
	TKeyContactDeleted = "contact_deleted"
	TKeyBirthdayAdded  = "birthday_added"
	TKeyNoContacts     = "no_contacts"
	TKeyNoUpcoming     = "no_upcoming"
	TKeyInvalidCommand = "invalid_command"
	TKeyImported       = "imported"
	TKeyHelp           = "help"
)

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Settings Keys & Defaults
// -----------------------------------------------------------------------------

const (
	SettingLanguage   = "language"
	SettingWindowDays = "window_days"
	SettingFeedPort   = "feed_port"
	SettingImportURL  = "import.url"
	SettingImportUser = "import.user"

	SettingsFileName = "settings"
	SettingsFileType = "yaml"
	EnvPrefix        = "GOCONTACTS"

	DefaultLanguage = "en"
	DefaultFeedPort = "" // empty disables the feed server

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Rendering: Records & Lists
// -----------------------------------------------------------------------------

const (
	PhoneSeparator = "; "
	NoPhonesMarker = "no phones"

	// FormatRecord renders one contact. Arguments: name, phones, birthday suffix.
	FormatRecord = "Contact name: %s, phones: %s%s"
	// FormatRecordBirthday is the optional birthday suffix of FormatRecord.
	FormatRecordBirthday = ", Birthday: %s"
	// FormatNameDate renders "name: DD.MM.YYYY" lines (show-birthday, birthdays).
	FormatNameDate = "%s: %s"
	// FormatSummary is the feed event title.
	FormatSummary = "Birthday: %s"
	// FormatError is the single user-facing error shape produced at the
	// dispatch boundary.
	FormatError = "Error: %v"
)

// -----------------------------------------------------------------------------
// Error Subjects (typed not-found errors)
// -----------------------------------------------------------------------------

const (
	KindContact  = "contact"
	KindPhone    = "phone"
	KindBirthday = "birthday for"
	KindArgument = "argument"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Feed//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	DefaultICalRefresh = 1 * time.Hour

	// vCard Fields
	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTel  = "TEL"

	// vCard date layouts accepted on import (BDAY).
	DateFormatVCardDash  = "2006-01-02"
	DateFormatVCardBasic = "20060102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
	UIDSalt         = "go-contacts-v1-"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// StubVCalendar is the minimal valid iCalendar object served when no
// birthday falls inside the window. Keeps feed clients from flagging the
// subscription as invalid.
const StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB, plenty for address books
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteFeed           = "/birthdays.ics"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup   = "feed server startup failed"
	ErrServerShutdown  = "feed server shutdown failed"
	ErrPortRequired    = "feed server port is required"
	ErrPortNumber      = "feed server port must be a number"
	ErrPortRange       = "feed server port must be between 1 and 65535"
	ErrWindowPositive  = "window_days must be positive"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrImportURLEmpty  = "configuration error: import URL is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrSettingsRead    = "failed to read settings file"
	ErrSettingsDecode  = "failed to decode settings"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrReadInput       = "failed to read user input"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrImportFileOpen  = "failed to open import file"
	ErrEmptyName       = "name must not be empty"
	ErrPhoneFormat     = "phone number must be exactly 10 digits"
	ErrBirthdayFormat  = "invalid date format, use DD.MM.YYYY"
	ErrBirthdayFuture  = "birthday cannot be in the future"
	ErrLocNotInit      = "localizer not initialized"
	HTTPMsgInitialize  = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotOK = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down"
	MsgServerListen   = "Feed server listening"
	MsgServerStop     = "Shutting down feed server..."
	MsgFeedUpdated    = "Feed cache updated"
	MsgFeedDisabled   = "Feed server disabled (no port configured)"
	MsgLoopStarted    = "Interactive loop started"
	MsgLoopStopped    = "Interactive loop stopped"
	MsgImportStarted  = "Import started"
	MsgImportDone     = "Import finished"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedPhone   = "Skipping invalid phone number"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgSkippedNoName  = "Skipping card without a name"
	MsgFeedBuilt      = "Birthday feed generated"
	MsgSettingsLoaded = "Settings loaded"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgCommand        = "Command dispatched"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyUser      = "user"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "contacts_imported"
	LogKeyUpcoming  = "upcoming"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyWindow    = "window_days"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompAssistant = "assistant"
	CompBook      = "book"
	CompEngine    = "engine"
	CompFetcher   = "fetcher"
	CompServer    = "server"
	CompSettings  = "settings"
	CompI18n      = "i18n"
)
