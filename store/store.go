package store

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/macrodk/check-in-out-with-slack/models"
)

// RecordStore persists attendance records in Postgres. Rows are grouped by
// week key and user name; append order is id order. Rows are never updated
// or deleted.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Append adds a record to the user's partition of the given week's ledger.
func (s *RecordStore) Append(key string, rec models.AttendanceRecord) error {
	_, err := s.db.Exec(`
        INSERT INTO attendance_records (week_key, name, ts, status, weekday, total, remaining)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, key, rec.Name, rec.Timestamp, rec.Status, rec.Weekday, rec.Total, rec.Remaining)
	if err != nil {
		return fmt.Errorf("error appending attendance record: %w", err)
	}
	return nil
}

// LastStatus returns the status of the user's most recent record under the
// given week key, or "" if the user has no records there. Read failures are
// logged and treated as no data.
func (s *RecordStore) LastStatus(key, user string) string {
	var status string
	err := s.db.QueryRow(`
        SELECT status FROM attendance_records
        WHERE week_key = $1 AND name = $2
        ORDER BY id DESC
        LIMIT 1
    `, key, user).Scan(&status)
	if err == sql.ErrNoRows {
		return ""
	}
	if err != nil {
		log.Printf("Error reading last status for %s: %v", user, err)
		return ""
	}
	return status
}

// RecordsForWeek returns the user's records under the given week key with
// timestamps at or after weekStart, in append order. Read failures are
// logged and yield an empty sequence.
func (s *RecordStore) RecordsForWeek(key, user string, weekStart time.Time) []models.AttendanceRecord {
	rows, err := s.db.Query(`
        SELECT name, ts, status, weekday, total, remaining
        FROM attendance_records
        WHERE week_key = $1 AND name = $2 AND ts >= $3
        ORDER BY id
    `, key, user, weekStart)
	if err != nil {
		log.Printf("Error reading records for %s: %v", user, err)
		return nil
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.Name, &rec.Timestamp, &rec.Status, &rec.Weekday, &rec.Total, &rec.Remaining); err != nil {
			log.Printf("Error scanning record for %s: %v", user, err)
			return nil
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading records for %s: %v", user, err)
		return nil
	}
	return records
}

// UsersForWeek returns the names that have records under the given week key,
// in first-appearance order.
func (s *RecordStore) UsersForWeek(key string) []string {
	rows, err := s.db.Query(`
        SELECT name FROM attendance_records
        WHERE week_key = $1
        GROUP BY name
        ORDER BY MIN(id)
    `, key)
	if err != nil {
		log.Printf("Error listing users for week %s: %v", key, err)
		return nil
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Printf("Error scanning user name: %v", err)
			return nil
		}
		users = append(users, name)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error listing users for week %s: %v", key, err)
		return nil
	}
	return users
}
