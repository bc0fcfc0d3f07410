package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type captured struct {
	from string
	to   []string
	raw  string
}

func capturingSender(out *captured) gomail.Sender {
	return gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		var buf bytes.Buffer
		if _, err := msg.WriteTo(&buf); err != nil {
			return err
		}
		out.from, out.to, out.raw = from, to, buf.String()
		return nil
	})
}

func TestSMTPMailer_Send(t *testing.T) {
	var got captured
	m := NewSMTPMailerWithSender("Argos <relatorios@argos.local>", capturingSender(&got), zap.NewNop())

	err := m.Send(context.Background(), Message{
		To:       []string{"ana@example.com"},
		Subject:  "Relatório Argos",
		HTMLBody: "<p>Segue o relatório.</p>",
		Attachments: []Attachment{{
			Filename:    "argos-relatorio-2026-10-18.csv",
			ContentType: "text/csv",
			Data:        []byte("=== KPIs ===\nname,value\n"),
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "relatorios@argos.local", got.from)
	assert.Equal(t, []string{"ana@example.com"}, got.to)
	assert.Contains(t, got.raw, `filename="argos-relatorio-2026-10-18.csv"`)
	assert.Contains(t, got.raw, "text/csv")
	assert.Contains(t, got.raw, base64.StdEncoding.EncodeToString([]byte("=== KPIs ===\nname,value\n")))
}

func TestSMTPMailer_Errors(t *testing.T) {
	failing := gomail.SendFunc(func(string, []string, io.WriterTo) error { return errors.New("relay denied") })
	m := NewSMTPMailerWithSender("a@b.co", failing, zap.NewNop())

	t.Run("no recipients", func(t *testing.T) {
		err := m.Send(context.Background(), Message{Subject: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no recipients")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := m.Send(ctx, Message{To: []string{"x@y.z"}})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("sender failure is wrapped", func(t *testing.T) {
		err := m.Send(context.Background(), Message{To: []string{"x@y.z"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "relay denied")
	})
}
