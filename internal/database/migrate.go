// Package database owns the schema and the change-notification
// triggers. Migrate is idempotent and runs on every startup.
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// NotifyChannel is the single LISTEN/NOTIFY channel all table triggers
// publish to. The payload is the table name.
const NotifyChannel = "arcade_changes"

var statements = []string{
	`CREATE TABLE IF NOT EXISTS computers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		specs TEXT[] NOT NULL DEFAULT '{}',
		spec_icons TEXT[] NOT NULL DEFAULT '{}',
		highlight BOOLEAN NOT NULL DEFAULT FALSE,
		highlight_label TEXT NOT NULL DEFAULT '',
		highlight_color TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		secondary_images TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS peripherals (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		specs TEXT[] NOT NULL DEFAULT '{}',
		highlight BOOLEAN NOT NULL DEFAULT FALSE,
		highlight_label TEXT NOT NULL DEFAULT '',
		highlight_color TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		secondary_images TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS delivered_computers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		customer TEXT NOT NULL DEFAULT '',
		delivery_date DATE NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		specs TEXT[] NOT NULL DEFAULT '{}',
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_computers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		gpu TEXT NOT NULL DEFAULT '',
		cpu TEXT NOT NULL DEFAULT '',
		ram TEXT NOT NULL DEFAULT '',
		storage TEXT NOT NULL DEFAULT '',
		motherboard TEXT NOT NULL DEFAULT '',
		cooler TEXT NOT NULL DEFAULT '',
		watercooler TEXT NOT NULL DEFAULT '',
		sold BOOLEAN NOT NULL DEFAULT FALSE,
		border_color TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		secondary_images TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sold_computers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		customer TEXT NOT NULL DEFAULT '',
		sold_date DATE NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		specs TEXT[] NOT NULL DEFAULT '{}',
		image_url TEXT NOT NULL DEFAULT '',
		border_color TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_expenses (
		id UUID PRIMARY KEY,
		month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
		year INT NOT NULL,
		paid_traffic NUMERIC(12,2) NOT NULL DEFAULT 0,
		bank_insurance NUMERIC(12,2) NOT NULL DEFAULT 0,
		other_expenses JSONB NOT NULL DEFAULT '[]',
		total NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role TEXT NOT NULL CHECK (role IN ('admin', 'user')),
		UNIQUE (user_id)
	)`,
	`CREATE OR REPLACE FUNCTION notify_table_change() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('arcade_changes', TG_TABLE_NAME);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql`,
}

// Tables carrying a change-notification trigger. user tables are not
// watched: role changes take effect on the next request anyway.
var notifiedTables = []string{
	"computers",
	"peripherals",
	"delivered_computers",
	"inventory_computers",
	"sold_computers",
	"monthly_expenses",
}

// Migrate creates the schema, the notify function and one statement
// level trigger per watched table.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, table := range notifiedTables {
		drop := fmt.Sprintf(`DROP TRIGGER IF EXISTS %s_notify ON %s`, table, table)
		if _, err := db.ExecContext(ctx, drop); err != nil {
			return fmt.Errorf("drop trigger on %s: %w", table, err)
		}
		create := fmt.Sprintf(`CREATE TRIGGER %s_notify
			AFTER INSERT OR UPDATE OR DELETE ON %s
			FOR EACH STATEMENT EXECUTE FUNCTION notify_table_change()`, table, table)
		if _, err := db.ExecContext(ctx, create); err != nil {
			return fmt.Errorf("create trigger on %s: %w", table, err)
		}
	}
	return nil
}
