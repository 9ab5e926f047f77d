package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order; every statement must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS item_requests (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		user_id VARCHAR(64) NOT NULL,
		description TEXT NOT NULL,
		image_url TEXT NULL,
		status ENUM('open', 'closed') NOT NULL DEFAULT 'open',
		created_at DATETIME NOT NULL,
		INDEX idx_item_requests_status_created (status, created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS vendor_responses (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		vendor_id VARCHAR(64) NOT NULL,
		request_id CHAR(26) NOT NULL,
		price DECIMAL(10,2) NULL,
		message TEXT NOT NULL,
		image_url TEXT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL,
		INDEX idx_vendor_responses_request (request_id)
	)`,
	`CREATE TABLE IF NOT EXISTS stores (
		vendor_id VARCHAR(64) PRIMARY KEY,
		store_name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL UNIQUE,
		address VARCHAR(512) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		message TEXT NOT NULL,
		link VARCHAR(512) NULL,
		is_read TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		INDEX idx_notifications_user (user_id, is_read, created_at)
	)`,
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
