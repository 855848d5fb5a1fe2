package assistant

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T, input string) string {
	t.Helper()
	h := newTestHandler(t, testToday)
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader(input), &out, h))
	return out.String()
}

func TestRun_FullSession(t *testing.T) {
	out := runLoop(t, "hello\nadd Ann 1234567890\nphone Ann\nexit\n")

	assert.Contains(t, out, "Welcome to Go Contacts!")
	assert.Contains(t, out, "How can I help you?")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "1234567890")
	assert.Contains(t, out, "Good bye!")
}

func TestRun_BlankLinesIgnored(t *testing.T) {
	out := runLoop(t, "\n\nhello\n\nclose\n")

	assert.Equal(t, 1, strings.Count(out, "How can I help you?"))
	assert.Contains(t, out, "Good bye!")
}

func TestRun_ErrorsDoNotStopLoop(t *testing.T) {
	out := runLoop(t, "add Ann 123\nhello\nexit\n")

	assert.Contains(t, out, "Error: invalid phone: phone number must be exactly 10 digits")
	assert.Contains(t, out, "How can I help you?")
}

// TestRun_EOF checks that end of input is treated like an explicit exit.
func TestRun_EOF(t *testing.T) {
	out := runLoop(t, "hello\n")
	assert.Contains(t, out, "Good bye!")
}

func TestRun_CancelledContext(t *testing.T) {
	h := newTestHandler(t, testToday)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, Run(ctx, strings.NewReader("hello\n"), &out, h))
	assert.Contains(t, out.String(), "Good bye!")
	assert.NotContains(t, out.String(), "How can I help you?")
}
