package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// 表结构同时兼容 MySQL 和 SQLite。时间以定长文本存储，列表字段存为JSON数组文本。
// 文本比较必须区分大小写和重音，MySQL 上由 mysqlTableOptions 指定二进制排序规则，SQLite 默认即是。
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		content TEXT NOT NULL,
		category VARCHAR(128) NOT NULL,
		cover_image VARCHAR(1024) NULL,
		slug VARCHAR(512) NOT NULL,
		published_at VARCHAR(32) NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		description TEXT NOT NULL,
		file_url VARCHAR(1024) NOT NULL,
		tags TEXT NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		visit_date VARCHAR(64) NOT NULL,
		description TEXT NOT NULL,
		cover_image VARCHAR(1024) NOT NULL,
		gallery_images TEXT NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		description TEXT NOT NULL,
		external_url VARCHAR(1024) NOT NULL,
		button_text VARCHAR(128) NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS page_sections (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		page VARCHAR(128) NOT NULL,
		section_key VARCHAR(128) NOT NULL,
		content TEXT NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL,
		UNIQUE (page, section_key)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		singleton INTEGER NOT NULL UNIQUE,
		address VARCHAR(512) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL,
		whatsapp VARCHAR(64) NOT NULL,
		map_location VARCHAR(128) NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(32) NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS membership_applications (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		address TEXT NOT NULL,
		tax_number VARCHAR(64) NOT NULL,
		note TEXT NULL,
		files TEXT NOT NULL,
		status VARCHAR(32) NOT NULL,
		created_at VARCHAR(32) NOT NULL,
		updated_at VARCHAR(32) NULL
	)`,
}

const mysqlTableOptions = " ENGINE=InnoDB DEFAULT CHARACTER SET utf8mb4 COLLATE utf8mb4_bin"

// migrationsFor 返回指定驱动使用的建表语句
func migrationsFor(driver string) []string {
	if driver != "mysql" {
		return migrations
	}
	stmts := make([]string, len(migrations))
	for i, stmt := range migrations {
		stmts[i] = stmt + mysqlTableOptions
	}
	return stmts
}

// Migrate 创建缺失的表，可重复执行
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range migrationsFor(db.DriverName()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
