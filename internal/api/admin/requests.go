package admin

import (
	"github.com/nihatdadaloglu/oda/internal/model"
)

// AnnouncementRequest 创建公告
type AnnouncementRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	CoverImage *string `json:"cover_image"`
}

// AnnouncementPatch 更新公告
type AnnouncementPatch struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Category   *string `json:"category"`
	CoverImage *string `json:"cover_image"`
}

func BuildAnnouncement(r AnnouncementRequest) *model.Announcement {
	return &model.Announcement{Title: r.Title, Content: r.Content, Category: r.Category, CoverImage: r.CoverImage}
}

func (p AnnouncementPatch) Apply(a *model.Announcement) {
	setString(&a.Title, p.Title)
	setString(&a.Content, p.Content)
	setString(&a.Category, p.Category)
	if p.CoverImage != nil {
		a.CoverImage = p.CoverImage
	}
}

// DocumentRequest 创建文件资料
type DocumentRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	FileURL     string   `json:"file_url" binding:"required"`
	Tags        []string `json:"tags"`
}

// DocumentPatch 更新文件资料
type DocumentPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	FileURL     *string   `json:"file_url"`
	Tags        *[]string `json:"tags"`
}

func BuildDocument(r DocumentRequest) *model.Document {
	return &model.Document{Title: r.Title, Description: r.Description, FileURL: r.FileURL, Tags: r.Tags}
}

func (p DocumentPatch) Apply(d *model.Document) {
	setString(&d.Title, p.Title)
	setString(&d.Description, p.Description)
	setString(&d.FileURL, p.FileURL)
	setList(&d.Tags, p.Tags)
}

// VisitRequest 创建访问活动
type VisitRequest struct {
	Title         string   `json:"title" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"cover_image"`
	GalleryImages []string `json:"gallery_images"`
}

// VisitPatch 更新访问活动
type VisitPatch struct {
	Title         *string   `json:"title"`
	Date          *string   `json:"date"`
	Description   *string   `json:"description"`
	CoverImage    *string   `json:"cover_image"`
	GalleryImages *[]string `json:"gallery_images"`
}

func BuildVisit(r VisitRequest) *model.Visit {
	return &model.Visit{
		Title:         r.Title,
		Date:          r.Date,
		Description:   r.Description,
		CoverImage:    r.CoverImage,
		GalleryImages: r.GalleryImages,
	}
}

func (p VisitPatch) Apply(v *model.Visit) {
	setString(&v.Title, p.Title)
	setString(&v.Date, p.Date)
	setString(&v.Description, p.Description)
	setString(&v.CoverImage, p.CoverImage)
	setList(&v.GalleryImages, p.GalleryImages)
}

// PaymentRequest 创建支付条目，按钮文字为空时使用默认值
type PaymentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ExternalURL string `json:"external_url" binding:"required"`
	ButtonText  string `json:"button_text"`
}

// PaymentPatch 更新支付条目
type PaymentPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ExternalURL *string `json:"external_url"`
	ButtonText  *string `json:"button_text"`
}

func BuildPayment(r PaymentRequest) *model.PaymentItem {
	return &model.PaymentItem{Title: r.Title, Description: r.Description, ExternalURL: r.ExternalURL, ButtonText: r.ButtonText}
}

func (p PaymentPatch) Apply(item *model.PaymentItem) {
	setString(&item.Title, p.Title)
	setString(&item.Description, p.Description)
	setString(&item.ExternalURL, p.ExternalURL)
	setString(&item.ButtonText, p.ButtonText)
}

// SectionRequest 按 (page, key) 写入页面内容
type SectionRequest struct {
	Page    string `json:"page" binding:"required"`
	Key     string `json:"key" binding:"required"`
	Content string `json:"content"`
}

// SectionPatch 按ID更新页面内容
type SectionPatch struct {
	Content *string `json:"content"`
}

func (p SectionPatch) Apply(s *model.PageSection) {
	setString(&s.Content, p.Content)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *model.StringList, v *[]string) {
	if v != nil {
		*dst = *v
	}
}
