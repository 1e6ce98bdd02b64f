package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create attendance records table. Rows are append-only: one row per
-- check-in or check-out event, grouped into weekly ledgers by week_key.
CREATE TABLE IF NOT EXISTS attendance_records (
    id SERIAL PRIMARY KEY,
    week_key VARCHAR(50) NOT NULL,
    name VARCHAR(100) NOT NULL,
    ts TIMESTAMP NOT NULL,
    status VARCHAR(10) NOT NULL,
    weekday VARCHAR(10) NOT NULL,
    total DOUBLE PRECISION NOT NULL,
    remaining DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attendance_records_week_name
    ON attendance_records (week_key, name, id);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
