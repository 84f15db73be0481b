package model

import "github.com/nihatdadaloglu/oda/internal/constants"

// ContactMessage 联系表单留言，写入后不再修改
type ContactMessage struct {
	Base
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
	Message string `db:"message" json:"message"`
	Status  string `db:"status" json:"status"`
}

func (m *ContactMessage) BeforeCreate(Timestamp) {
	m.Status = constants.ContactStatusNew
}

// MembershipApplication 入会申请
type MembershipApplication struct {
	Base
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	Phone     string     `db:"phone" json:"phone"`
	Address   string     `db:"address" json:"address"`
	TaxNumber string     `db:"tax_number" json:"tax_number"`
	Note      *string    `db:"note" json:"note"`
	Files     StringList `db:"files" json:"files"`
	Status    string     `db:"status" json:"status"`
}

func (a *MembershipApplication) BeforeCreate(Timestamp) {
	a.Status = constants.MembershipStatusStart
}

// MembershipStatus 公开查询时返回的申请状态，只包含这三个字段
type MembershipStatus struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt Timestamp `json:"created_at"`
}
