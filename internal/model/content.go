package model

import "github.com/nihatdadaloglu/oda/internal/constants"

// Document 可下载的文件资料
type Document struct {
	Base
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	FileURL     string     `db:"file_url" json:"file_url"`
	Tags        StringList `db:"tags" json:"tags"`
}

// Visit 访问活动及图集
type Visit struct {
	Base
	Title         string     `db:"title" json:"title"`
	Date          string     `db:"visit_date" json:"date"`
	Description   string     `db:"description" json:"description"`
	CoverImage    string     `db:"cover_image" json:"cover_image"`
	GalleryImages StringList `db:"gallery_images" json:"gallery_images"`
}

// PaymentItem 指向外部支付页面的条目
type PaymentItem struct {
	Base
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	ExternalURL string `db:"external_url" json:"external_url"`
	ButtonText  string `db:"button_text" json:"button_text"`
}

// BeforeCreate 设置默认按钮文字
func (p *PaymentItem) BeforeCreate(Timestamp) {
	if p.ButtonText == "" {
		p.ButtonText = constants.DefaultPaymentButton
	}
}

// PageSection 页面中按 (page, key) 定位的一段内容
type PageSection struct {
	Base
	Page    string `db:"page" json:"page"`
	Key     string `db:"section_key" json:"key"`
	Content string `db:"content" json:"content"`
}

// Settings 站点联系信息，全局只有一条
type Settings struct {
	Base
	Singleton   int    `db:"singleton" json:"-"`
	Address     string `db:"address" json:"address"`
	Phone       string `db:"phone" json:"phone"`
	Email       string `db:"email" json:"email"`
	WhatsApp    string `db:"whatsapp" json:"whatsapp"`
	MapLocation string `db:"map_location" json:"map_location"`
}
