package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// Mailer 发送一封HTML邮件
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// TemplateName 邮件模板名称
type TemplateName string

const (
	// TemplateContact 新的联系表单留言
	TemplateContact TemplateName = "contact"
	// TemplateMembership 新的入会申请
	TemplateMembership TemplateName = "membership"
)

// ContactData 联系留言通知的模板数据
type ContactData struct {
	SiteName string
	Name     string
	Email    string
	Phone    string
	Message  string
}

// MembershipData 入会申请通知的模板数据
type MembershipData struct {
	SiteName  string
	Name      string
	Email     string
	Phone     string
	Address   string
	TaxNumber string
	Note      string
	FileCount int
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render 渲染邮件模板，用户输入会被转义
func Render(name TemplateName, data interface{}) (string, error) {
	buf := new(bytes.Buffer)
	if err := templates.ExecuteTemplate(buf, string(name)+".html", data); err != nil {
		return "", fmt.Errorf("执行邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

// NewMailer 根据配置选择发送方式：配置了 SendGrid 密钥时走 SendGrid，
// 配置了 SMTP 账号时走 SMTP，否则只记录日志
func NewMailer(cfg config.EmailConfig, log *logger.Logger) Mailer {
	switch {
	case cfg.Provider == "sendgrid" && cfg.SendGridAPIKey != "":
		return NewSendGridMailer(cfg)
	case cfg.Host != "" && cfg.Username != "" && cfg.Password != "":
		return NewSMTPMailer(cfg)
	default:
		log.Warn("Email transport not configured, notifications will only be logged")
		return NewNopMailer(log)
	}
}

// NopMailer 不发送邮件，只记录日志
type NopMailer struct {
	logger *logger.Logger
}

// NewNopMailer 创建只记录日志的发送器
func NewNopMailer(log *logger.Logger) *NopMailer {
	return &NopMailer{logger: log}
}

func (m *NopMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("Email skipped, no transport configured", "to", to, "subject", subject)
	return nil
}
