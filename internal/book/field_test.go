package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

// TestNewPhoneNumber verifies the fixed-format phone rule: exactly ten
// ASCII digits, nothing normalized away.
func TestNewPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid ten digits", "1234567890", false},
		{"valid with leading zeros", "0000000000", false},
		{"too short", "123456789", true},
		{"too long", "12345678901", true},
		{"letters", "12345abcde", true},
		{"punctuation not stripped", "123-456-78", true},
		{"spaces", "12345 6789", true},
		{"empty", "", true},
		{"unicode digits rejected", "١٢٣٤٥٦٧٨٩٠", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := book.NewPhoneNumber(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, book.IsValidation(err), "expected a validation error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

// TestNewBirthday covers strict DD.MM.YYYY parsing, the future-date rule
// and round-trip format stability.
func TestNewBirthday(t *testing.T) {
	// Reference "today": June 10th, 2024 (a Monday).
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid past date", "15.06.1990", false},
		{"valid today", "10.06.2024", false},
		{"valid leap day", "29.02.2000", false},
		{"tomorrow rejected", "11.06.2024", true},
		{"far future rejected", "01.01.2100", true},
		{"missing zero padding", "5.6.1990", true},
		{"ISO format rejected", "1990-06-15", true},
		{"slash separators rejected", "15/06/1990", true},
		{"nonexistent day", "31.02.1990", true},
		{"nonexistent leap day", "29.02.1999", true},
		{"garbage", "birthday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := book.NewBirthday(tt.raw, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, book.IsValidation(err), "expected a validation error, got %v", err)
				return
			}
			require.NoError(t, err)
			// Round-trip stability: the stored date renders back to the
			// exact input string.
			assert.Equal(t, tt.raw, b.String())
		})
	}
}

func TestNewName(t *testing.T) {
	_, err := book.NewName("")
	require.Error(t, err)
	assert.True(t, book.IsValidation(err))

	n, err := book.NewName("Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", n.String())
}
