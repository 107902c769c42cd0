package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	delay    time.Duration
	err      error
	messages []*gomail.Message
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	time.Sleep(d.delay)
	d.messages = append(d.messages, m...)

	return d.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSMTPSender_Send(t *testing.T) {
	d := &recordingDialer{}
	sender := newSMTPSender(d, "noreply@jobboard.test", time.Second, newDiscardLogger())

	err := sender.Send(context.Background(), service.Email{
		To:       []string{"ana@example.com"},
		Subject:  "Password reset",
		Body:     "plain",
		HTMLBody: "<p>html</p>",
	})
	require.NoError(t, err)
	require.Len(t, d.messages, 1)

	msg := d.messages[0]
	assert.Equal(t, []string{"noreply@jobboard.test"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"ana@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Password reset"}, msg.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err = msg.WriteTo(&raw)
	require.NoError(t, err)
	body := raw.String()
	assert.Contains(t, body, "multipart/alternative")
	assert.Contains(t, body, "<p>html</p>")

	plainAt := strings.Index(body, "Content-Type: text/plain")
	htmlAt := strings.Index(body, "Content-Type: text/html")
	require.NotEqual(t, -1, plainAt)
	require.NotEqual(t, -1, htmlAt)
	assert.Less(t, plainAt, htmlAt, "the HTML part must be the last alternative")
}

func TestSMTPSender_HTMLOnly(t *testing.T) {
	d := &recordingDialer{}
	sender := newSMTPSender(d, "noreply@jobboard.test", time.Second, newDiscardLogger())

	err := sender.Send(context.Background(), service.Email{
		To:       []string{"ana@example.com"},
		Subject:  "Listing cancelled",
		HTMLBody: "<p>html</p>",
	})
	require.NoError(t, err)
	require.Len(t, d.messages, 1)

	var raw bytes.Buffer
	_, err = d.messages[0].WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Content-Type: text/html")
	assert.NotContains(t, raw.String(), "multipart/alternative")
}

func TestSMTPSender_NoRecipients(t *testing.T) {
	sender := newSMTPSender(&recordingDialer{}, "noreply@jobboard.test", time.Second, newDiscardLogger())

	err := sender.Send(context.Background(), service.Email{Subject: "x"})
	assert.Error(t, err)
}

func TestSMTPSender_DialError(t *testing.T) {
	relayErr := errors.New("relay refused")
	sender := newSMTPSender(&recordingDialer{err: relayErr}, "noreply@jobboard.test", time.Second, newDiscardLogger())

	err := sender.Send(context.Background(), service.Email{To: []string{"ana@example.com"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, relayErr))
}

func TestSMTPSender_Timeout(t *testing.T) {
	sender := newSMTPSender(&recordingDialer{delay: 200 * time.Millisecond}, "noreply@jobboard.test", 20*time.Millisecond, newDiscardLogger())

	start := time.Now()
	err := sender.Send(context.Background(), service.Email{To: []string{"ana@example.com"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := &logSender{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, sender.Send(context.Background(), service.Email{To: []string{"ana@example.com"}, Subject: "hello"}))
	assert.Contains(t, buf.String(), "hello")
}
