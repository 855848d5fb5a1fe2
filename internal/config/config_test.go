package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"KeyringService", config.KeyringService},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"Prompt", config.Prompt},
		{"RouteFeed", config.RouteFeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestBusinessRules_Sanity checks that validation constants make sense logically.
func TestBusinessRules_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneLength, "Phone validation accepts exactly 10 digits")
	assert.Greater(t, config.DefaultWindowDays, 0, "Default birthday window must be positive")

	// The reference layout must render day-first with dots.
	sample := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05.06.2024", sample.Format(config.DateFormatBirthday))

	// Saturday+2 and Sunday+1 both land on the following Monday.
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, saturday.AddDate(0, 0, config.DaysShiftSaturday).Weekday())
	assert.Equal(t, time.Monday, sunday.AddDate(0, 0, config.DaysShiftSunday).Weekday())
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Contacts/"), "UserAgent must start with AppName/")
}

// TestStubVCalendar_Validity keeps the fallback feed a parseable iCalendar object.
func TestStubVCalendar_Validity(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
	assert.Contains(t, config.StubVCalendar, "PRODID:")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	// Timeouts
	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	// Limits
	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	// Address book exports are text; 64MB covers even huge directories while
	// preventing infinite streams from exhausting RAM.
	assert.GreaterOrEqual(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024), "MaxHTTPResponseSize should allow at least 1MB")
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")

	// Ports
	assert.Equal(t, 1, config.MinPort)
	assert.Equal(t, 65535, config.MaxPort)
}

// TestSupportedLanguages guards the language list against accidental edits:
// every entry must be a two-letter ISO 639-1 code and English must stay the
// fallback.
func TestSupportedLanguages(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	for _, lang := range config.SupportedLanguages {
		assert.Len(t, lang, 2, "language codes are ISO 639-1: %q", lang)
	}
}
