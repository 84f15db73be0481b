package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/nihatdadaloglu/oda/config"
)

// SendGridMailer 通过 SendGrid API 发送邮件
type SendGridMailer struct {
	from   *mail.Email
	client *sendgrid.Client
}

// NewSendGridMailer 创建 SendGrid 发送器
func NewSendGridMailer(cfg config.EmailConfig) *SendGridMailer {
	return &SendGridMailer{
		from:   mail.NewEmail(cfg.FromName, cfg.From),
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), "", htmlBody)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("SendGrid请求失败: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("SendGrid返回状态码 %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
