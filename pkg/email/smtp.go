package email

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nihatdadaloglu/oda/config"
)

// SMTPMailer 通过SMTP发送邮件
type SMTPMailer struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer 创建SMTP发送器
func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return &SMTPMailer{cfg: cfg, dialer: d}
}

// Send 发送邮件。gomail 不支持 context，ctx 结束时立即返回，已建立的SMTP会话在后台继续直到服务器断开
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from(), m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("SMTP发送失败: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("SMTP发送超时: %w", ctx.Err())
	}
}

func (m *SMTPMailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.Username
}
