package model

// Announcement 公告
type Announcement struct {
	Base
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Category    string    `db:"category" json:"category"`
	CoverImage  *string   `db:"cover_image" json:"cover_image"`
	Slug        string    `db:"slug" json:"slug"`
	PublishedAt Timestamp `db:"published_at" json:"published_at"`
}

func (a *Announcement) SlugSource() string { return a.Title }

func (a *Announcement) SetSlug(slug string) { a.Slug = slug }

// BeforeCreate 未指定发布时间时以创建时间发布
func (a *Announcement) BeforeCreate(now Timestamp) {
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
}
