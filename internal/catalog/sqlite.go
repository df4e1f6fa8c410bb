package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// OpenSQLite loads the event catalog from a sqlite database. A fresh database
// is migrated and seeded with the built-in events, so first run works without
// any manual setup. The returned catalog is a plain in-memory snapshot: the
// dataset is static for the life of the process.
func OpenSQLite(dsn string, opts ...Option) (*Memory, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection so the seeded schema stays visible.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog database: %w", err)
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, fmt.Errorf("failed to seed catalog database: %w", err)
	}

	events, err := loadEvents(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return New(events, opts...), nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		moods TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		venue TEXT NOT NULL,
		price REAL NOT NULL,
		available_seats INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`)
	return err
}

func seedIfEmpty(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, ev := range SeedEvents() {
		moods, err := json.Marshal(ev.Moods)
		if err != nil {
			return err
		}
		_, err = db.Exec(
			`INSERT INTO events (id, name, category, moods, date, time, venue, price, available_seats, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.ID, ev.Name, ev.Category, string(moods), ev.Date, ev.Time,
			ev.Venue, ev.Price, ev.AvailableSeats, ev.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func loadEvents(db *sql.DB) ([]domain.Event, error) {
	rows, err := db.Query(
		`SELECT id, name, category, moods, date, time, venue, price, available_seats, description
		 FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var moods string
		err := rows.Scan(&ev.ID, &ev.Name, &ev.Category, &moods, &ev.Date,
			&ev.Time, &ev.Venue, &ev.Price, &ev.AvailableSeats, &ev.Description)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(moods), &ev.Moods); err != nil {
			return nil, fmt.Errorf("invalid moods for event %d: %w", ev.ID, err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
