package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/pkg/email"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// ContactForm 联系表单
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// MembershipForm 入会申请表单
type MembershipForm struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	TaxNumber string
	Note      *string
}

// IntakeService 公开表单的提交和申请状态查询
type IntakeService struct {
	contacts    *repository.Store[model.ContactMessage, *model.ContactMessage]
	memberships *repository.Store[model.MembershipApplication, *model.MembershipApplication]
	files       *FileIngestor
	notifier    Notifier
	adminEmail  string
	siteName    string
	logger      *logger.Logger
}

// NewIntakeService 创建表单服务
func NewIntakeService(
	contacts *repository.Store[model.ContactMessage, *model.ContactMessage],
	memberships *repository.Store[model.MembershipApplication, *model.MembershipApplication],
	files *FileIngestor,
	notifier Notifier,
	adminEmail, siteName string,
	logger *logger.Logger,
) *IntakeService {
	return &IntakeService{
		contacts:    contacts,
		memberships: memberships,
		files:       files,
		notifier:    notifier,
		adminEmail:  adminEmail,
		siteName:    siteName,
		logger:      logger,
	}
}

// SubmitContact 保存留言，保存成功后通知管理员
func (s *IntakeService) SubmitContact(ctx context.Context, form ContactForm) (*model.ContactMessage, error) {
	if err := requireFields(form.Name, form.Email, form.Phone, form.Message); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Message: form.Message,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	body, err := email.Render(email.TemplateContact, email.ContactData{
		SiteName: s.siteName,
		Name:     msg.Name,
		Email:    msg.Email,
		Phone:    msg.Phone,
		Message:  msg.Message,
	})
	if err != nil {
		s.logger.Error("渲染通知邮件失败", "error", err)
		return msg, nil
	}
	s.notifier.Notify(s.adminEmail, fmt.Sprintf("İletişim Formu - %s", msg.Name), body)
	return msg, nil
}

// SubmitMembership 保存申请，不合格的附件被忽略，保存成功后通知管理员
func (s *IntakeService) SubmitMembership(ctx context.Context, form MembershipForm, files []IncomingFile) (*model.MembershipApplication, error) {
	if err := requireFields(form.Name, form.Email, form.Phone, form.Address, form.TaxNumber); err != nil {
		return nil, err
	}

	var note *string
	if form.Note != nil && strings.TrimSpace(*form.Note) != "" {
		note = form.Note
	}

	app := &model.MembershipApplication{
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Address:   form.Address,
		TaxNumber: strings.TrimSpace(form.TaxNumber),
		Note:      note,
		Files:     s.files.IngestAll(ctx, files),
	}
	if err := s.memberships.Create(ctx, app); err != nil {
		return nil, err
	}

	data := email.MembershipData{
		SiteName:  s.siteName,
		Name:      app.Name,
		Email:     app.Email,
		Phone:     app.Phone,
		Address:   app.Address,
		TaxNumber: app.TaxNumber,
		FileCount: len(app.Files),
	}
	if note != nil {
		data.Note = *note
	}
	body, err := email.Render(email.TemplateMembership, data)
	if err != nil {
		s.logger.Error("渲染通知邮件失败", "error", err)
		return app, nil
	}
	s.notifier.Notify(s.adminEmail, fmt.Sprintf("Üyelik Başvurusu - %s", app.Name), body)
	return app, nil
}

// FindStatus 按邮箱或税号精确匹配申请（不去除空白，不忽略大小写），多条匹配时返回最新的一条，
// 只返回姓名、状态和提交时间
func (s *IntakeService) FindStatus(ctx context.Context, query string) (*model.MembershipStatus, error) {
	if query == "" {
		return nil, apperror.MalformedInput(constants.ErrQueryMissing)
	}

	app, err := s.memberships.FindFirstAny(ctx, []string{"email", "tax_number"}, query)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound(constants.ErrApplicationNotFound)
		}
		return nil, err
	}
	return &model.MembershipStatus{
		Name:      app.Name,
		Status:    app.Status,
		CreatedAt: app.CreatedAt,
	}, nil
}

func requireFields(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return apperror.ErrMalformedInput
		}
	}
	return nil
}
