package store

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/macrodk/check-in-out-with-slack/db"
	"github.com/macrodk/check-in-out-with-slack/models"

	_ "github.com/lib/pq"
)

// openTestDB connects to the database named by TEST_DATABASE_URL. Store
// tests are skipped when no test database is configured.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := conn.Ping(); err != nil {
		t.Fatalf("pinging test database: %v", err)
	}
	if err := db.InitSchema(conn); err != nil {
		t.Fatalf("initializing schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func testKey(t *testing.T) string {
	return fmt.Sprintf("%s_%d", t.Name(), time.Now().UnixNano())
}

func TestAppendRoundTrip(t *testing.T) {
	s := NewRecordStore(openTestDB(t))
	key := testKey(t)
	weekStart := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)

	want := []models.AttendanceRecord{
		{Name: "anna", Timestamp: weekStart.Add(9 * time.Hour), Status: models.StatusCheckin, Weekday: "Monday", Total: 0, Remaining: 40},
		{Name: "anna", Timestamp: weekStart.Add(17 * time.Hour), Status: models.StatusCheckout, Weekday: "Monday", Total: 0, Remaining: 40},
		{Name: "anna", Timestamp: weekStart.Add(33 * time.Hour), Status: models.StatusCheckin, Weekday: "Tuesday", Total: 7, Remaining: 33},
	}
	for _, rec := range want {
		if err := s.Append(key, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got := s.RecordsForWeek(key, "anna", weekStart)
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Name != want[i].Name ||
			!got[i].Timestamp.UTC().Equal(want[i].Timestamp) ||
			got[i].Status != want[i].Status ||
			got[i].Weekday != want[i].Weekday ||
			got[i].Total != want[i].Total ||
			got[i].Remaining != want[i].Remaining {
			t.Fatalf("record %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLastStatus(t *testing.T) {
	s := NewRecordStore(openTestDB(t))
	key := testKey(t)
	now := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)

	if got := s.LastStatus(key, "anna"); got != "" {
		t.Fatalf("expected no status for empty partition, got %q", got)
	}

	if err := s.Append(key, models.AttendanceRecord{Name: "anna", Timestamp: now, Status: models.StatusCheckin, Weekday: "Monday"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got := s.LastStatus(key, "anna"); got != models.StatusCheckin {
		t.Fatalf("expected checkin, got %q", got)
	}

	// Another user's records do not leak into the partition
	if got := s.LastStatus(key, "ben"); got != "" {
		t.Fatalf("expected no status for other user, got %q", got)
	}
}

func TestRecordsBeforeWeekStartExcluded(t *testing.T) {
	s := NewRecordStore(openTestDB(t))
	key := testKey(t)
	weekStart := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)

	old := models.AttendanceRecord{Name: "anna", Timestamp: weekStart.Add(-2 * time.Hour), Status: models.StatusCheckin, Weekday: "Sunday"}
	current := models.AttendanceRecord{Name: "anna", Timestamp: weekStart.Add(9 * time.Hour), Status: models.StatusCheckin, Weekday: "Monday"}
	for _, rec := range []models.AttendanceRecord{old, current} {
		if err := s.Append(key, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got := s.RecordsForWeek(key, "anna", weekStart)
	if len(got) != 1 {
		t.Fatalf("expected 1 record at or after week start, got %d", len(got))
	}
	if !got[0].Timestamp.UTC().Equal(current.Timestamp) {
		t.Fatalf("wrong record survived the filter: %+v", got[0])
	}
}

func TestUsersForWeek(t *testing.T) {
	s := NewRecordStore(openTestDB(t))
	key := testKey(t)
	now := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)

	for _, name := range []string{"anna", "ben", "anna"} {
		if err := s.Append(key, models.AttendanceRecord{Name: name, Timestamp: now, Status: models.StatusCheckin, Weekday: "Monday"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got := s.UsersForWeek(key)
	if len(got) != 2 || got[0] != "anna" || got[1] != "ben" {
		t.Fatalf("unexpected users: %v", got)
	}
}
