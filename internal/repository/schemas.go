package repository

// 各类记录的表结构和列表规则

var UserSchema = Schema{
	Table:        "users",
	Columns:      []string{"email", "password_hash", "role", "name"},
	DefaultSort:  "created_at",
	DefaultLimit: 50,
	SortKeys:     map[string]string{"created_at": "created_at", "email": "email"},
	Filters:      map[string]Filter{"role": {Column: "role"}},
}

var AnnouncementSchema = Schema{
	Table:        "announcements",
	Columns:      []string{"title", "content", "category", "cover_image", "slug", "published_at"},
	DefaultSort:  "published_at",
	DefaultLimit: 10,
	SortKeys: map[string]string{
		"published_at": "published_at",
		"created_at":   "created_at",
		"updated_at":   "updated_at",
		"title":        "title",
	},
	Filters: map[string]Filter{
		"category": {Column: "category", Match: MatchEqual},
		"search":   {Column: "title", Match: MatchContains},
	},
}

var DocumentSchema = Schema{
	Table:        "documents",
	Columns:      []string{"title", "description", "file_url", "tags"},
	DefaultSort:  "created_at",
	DefaultLimit: 50,
	SortKeys:     map[string]string{"created_at": "created_at", "updated_at": "updated_at", "title": "title"},
}

var VisitSchema = Schema{
	Table:        "visits",
	Columns:      []string{"title", "visit_date", "description", "cover_image", "gallery_images"},
	DefaultSort:  "visit_date",
	DefaultLimit: 20,
	SortKeys:     map[string]string{"date": "visit_date", "created_at": "created_at", "title": "title"},
}

var PaymentSchema = Schema{
	Table:        "payments",
	Columns:      []string{"title", "description", "external_url", "button_text"},
	DefaultSort:  "created_at",
	DefaultLimit: 100,
	SortKeys:     map[string]string{"created_at": "created_at", "title": "title"},
}

var PageSectionSchema = Schema{
	Table:        "page_sections",
	Columns:      []string{"page", "section_key", "content"},
	DefaultSort:  "created_at",
	DefaultLimit: 100,
	SortKeys:     map[string]string{"created_at": "created_at", "page": "page", "key": "section_key"},
	Filters:      map[string]Filter{"page": {Column: "page", Match: MatchEqual}},
}

var SettingsSchema = Schema{
	Table:        "settings",
	Columns:      []string{"singleton", "address", "phone", "email", "whatsapp", "map_location"},
	DefaultSort:  "created_at",
	DefaultLimit: 1,
}

var ContactSchema = Schema{
	Table:        "contacts",
	Columns:      []string{"name", "email", "phone", "message", "status"},
	DefaultSort:  "created_at",
	DefaultLimit: 50,
	SortKeys:     map[string]string{"created_at": "created_at", "name": "name"},
	Filters:      map[string]Filter{"status": {Column: "status", Match: MatchEqual}},
}

var MembershipSchema = Schema{
	Table:        "membership_applications",
	Columns:      []string{"name", "email", "phone", "address", "tax_number", "note", "files", "status"},
	DefaultSort:  "created_at",
	DefaultLimit: 50,
	SortKeys:     map[string]string{"created_at": "created_at", "name": "name"},
	Filters:      map[string]Filter{"status": {Column: "status", Match: MatchEqual}},
}
