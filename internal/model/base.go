package model

// Base 所有持久化记录共有的字段。
// ID 是对外唯一的标识；CreatedAt 创建后不再改变；UpdatedAt 在第一次修改前为空。
type Base struct {
	ID        string     `db:"id" json:"id"`
	CreatedAt Timestamp  `db:"created_at" json:"created_at"`
	UpdatedAt *Timestamp `db:"updated_at" json:"updated_at,omitempty"`
}

// Meta 返回记录的公共字段
func (b *Base) Meta() *Base {
	return b
}

// Entity 可由通用存储读写的记录
type Entity interface {
	Meta() *Base
}

// Sluggable 需要根据标题生成slug的记录
type Sluggable interface {
	SlugSource() string
	SetSlug(slug string)
}

// CreateHook 在首次写入前初始化派生字段
type CreateHook interface {
	BeforeCreate(now Timestamp)
}
