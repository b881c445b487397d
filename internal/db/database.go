package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQL connection and owns schema management
type Database struct {
	db *sql.DB
}

// NewDatabase opens the database at the given DSN and ensures the schema
// exists
func NewDatabase(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is required")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Verify we can actually connect to the database
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("ping failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("pragma failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	if err := createTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("create tables failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	return &Database{db: db}, nil
}

// GetDB exposes the underlying connection for repositories
func (d *Database) GetDB() *sql.DB {
	return d.db
}

// Close closes the database connection
func (d *Database) Close() error {
	if d == nil {
		return errors.New("database is nil")
	}
	if d.db == nil {
		return errors.New("database already closed")
	}

	err := d.db.Close()
	d.db = nil
	return err
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}

// Schema holds the full table definitions. Shared with the in-memory test
// database helper.
const Schema = `
	CREATE TABLE IF NOT EXISTS inquiries (
		id TEXT PRIMARY KEY,
		form TEXT NOT NULL,
		page TEXT,
		status TEXT NOT NULL DEFAULT 'new',
		is_deleted INTEGER NOT NULL DEFAULT 0,
		last_contacted_at INTEGER,
		emails_sent INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS prospects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT,
		category TEXT,
		phone TEXT,
		website TEXT,
		automation_need_score INTEGER NOT NULL DEFAULT 0,
		score_reasons TEXT,
		primary_email TEXT,
		emails TEXT,
		linkedin_url TEXT,
		facebook_url TEXT,
		instagram_url TEXT,
		twitter_url TEXT,
		cms TEXT,
		has_booking_system INTEGER,
		has_live_chat INTEGER,
		employee_count INTEGER,
		founded_year INTEGER,
		website_verified INTEGER,
		website_trust_score INTEGER,
		website_flags TEXT,
		discovered_at INTEGER NOT NULL,
		last_seen_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lead_notes (
		id TEXT PRIMARY KEY,
		inquiry_id TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		FOREIGN KEY (inquiry_id) REFERENCES inquiries(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS email_logs (
		id TEXT PRIMARY KEY,
		inquiry_id TEXT,
		direction TEXT NOT NULL,
		from_email TEXT,
		to_email TEXT NOT NULL,
		subject TEXT,
		body_preview TEXT,
		status TEXT NOT NULL,
		provider_message_id TEXT,
		error_message TEXT,
		sent_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS email_preferences (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		allow_newsletter INTEGER NOT NULL DEFAULT 1,
		allow_outreach INTEGER NOT NULL DEFAULT 1,
		unsubscribed_all INTEGER NOT NULL DEFAULT 0,
		unsubscribe_token TEXT UNIQUE NOT NULL,
		unsubscribed_at INTEGER,
		unsubscribed_reason TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS email_bot_configs (
		id TEXT PRIMARY KEY,
		key TEXT UNIQUE NOT NULL,
		label TEXT,
		subject TEXT NOT NULL,
		html_template TEXT NOT NULL,
		channel TEXT NOT NULL,
		enabled INTEGER NOT NULL DEFAULT 1,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
`
