package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

func TestRender_EscapesInput(t *testing.T) {
	body, err := Render(TemplateContact, ContactData{
		SiteName: "ODA",
		Name:     "<script>alert(1)</script>",
		Message:  "Merhaba",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Merhaba")
}

func TestRender_MembershipOmitsEmptyNote(t *testing.T) {
	body, err := Render(TemplateMembership, MembershipData{Name: "Ali", FileCount: 2})
	require.NoError(t, err)
	assert.NotContains(t, body, "Not:")
	assert.Contains(t, body, "2")
}

func TestNewMailer_Selection(t *testing.T) {
	log := logger.NewNop()

	assert.IsType(t, &SendGridMailer{}, NewMailer(config.EmailConfig{Provider: "sendgrid", SendGridAPIKey: "k", From: "a@b.c"}, log))
	assert.IsType(t, &SMTPMailer{}, NewMailer(config.EmailConfig{Provider: "sendgrid", Host: "smtp", Username: "u", Password: "p"}, log))
	assert.IsType(t, &NopMailer{}, NewMailer(config.EmailConfig{Host: "smtp"}, log))
}

func TestNopMailer_Succeeds(t *testing.T) {
	assert.NoError(t, NewNopMailer(logger.NewNop()).Send(context.Background(), "a@b.c", "s", "b"))
}
