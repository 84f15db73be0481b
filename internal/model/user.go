package model

// User 管理员账户
type User struct {
	Base
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	Name         string `db:"name" json:"name"`
}
