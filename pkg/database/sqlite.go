package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteConnection 打开（或创建）SQLite数据库，用于单机部署和测试
func NewSQLiteConnection(path string) (*sqlx.DB, error) {
	if path == "" {
		path = "oda.db"
	}
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("打开SQLite数据库失败: %w", err)
	}

	// SQLite 只允许一个写连接
	db.SetMaxOpenConns(1)

	// 内存数据库不支持 WAL，忽略错误
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("设置SQLite参数失败: %w", err)
	}
	return db, nil
}
