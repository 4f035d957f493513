// Package testing provides test utilities and database setup for testing the schedule service
package testing

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schema mirrors migrations/ for sqlite: arrays and jsonb become TEXT, uuid becomes TEXT
const schema = `
CREATE TABLE concepts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE companies (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    concept_id  INTEGER NOT NULL REFERENCES concepts(id),
    name        TEXT NOT NULL,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE stores (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    company_id  INTEGER NOT NULL REFERENCES companies(id),
    name        TEXT NOT NULL,
    timezone    TEXT NOT NULL DEFAULT 'UTC',
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE placement_groups (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    store_id    INTEGER NOT NULL REFERENCES stores(id),
    parent_id   INTEGER REFERENCES placement_groups(id),
    name        TEXT NOT NULL,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE daypart_definitions (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    daypart_name   TEXT NOT NULL,
    display_label  TEXT NOT NULL,
    color          TEXT NOT NULL DEFAULT '',
    icon           TEXT NOT NULL DEFAULT '',
    sort_order     INTEGER NOT NULL DEFAULT 0,
    scope          TEXT NOT NULL,
    concept_id     INTEGER REFERENCES concepts(id),
    store_id       INTEGER REFERENCES stores(id),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE daypart_schedules (
    id                     INTEGER PRIMARY KEY AUTOINCREMENT,
    daypart_definition_id  INTEGER NOT NULL REFERENCES daypart_definitions(id),
    days_of_week           TEXT NOT NULL DEFAULT '{}',
    start_time             TEXT NOT NULL,
    end_time               TEXT,
    runs_on_days           BOOLEAN NOT NULL DEFAULT 1,
    schedule_type          TEXT NOT NULL DEFAULT 'regular',
    schedule_name          TEXT,
    event_name             TEXT,
    event_date             DATE,
    recurrence_type        TEXT NOT NULL DEFAULT 'none',
    recurrence_config      TEXT NOT NULL DEFAULT '{}',
    priority_level         INTEGER NOT NULL DEFAULT 0 CHECK (priority_level BETWEEN 0 AND 1000),
    created_at             DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at             DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE placement_daypart_overrides (
    id                     INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid                   TEXT NOT NULL UNIQUE,
    placement_group_id     INTEGER NOT NULL REFERENCES placement_groups(id),
    daypart_definition_id  INTEGER NOT NULL REFERENCES daypart_definitions(id),
    days_of_week           TEXT NOT NULL DEFAULT '{}',
    start_time             TEXT NOT NULL,
    end_time               TEXT,
    runs_on_days           BOOLEAN NOT NULL DEFAULT 1,
    schedule_type          TEXT NOT NULL DEFAULT 'regular',
    schedule_name          TEXT,
    event_name             TEXT,
    event_date             DATE,
    recurrence_type        TEXT NOT NULL DEFAULT 'none',
    recurrence_config      TEXT NOT NULL DEFAULT '{}',
    priority_level         INTEGER NOT NULL DEFAULT 0 CHECK (priority_level BETWEEN 0 AND 1000),
    created_at             DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at             DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE schedule_audit_log (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    placement_group_id  INTEGER NOT NULL,
    schedule_id         INTEGER,
    action              TEXT NOT NULL,
    description         TEXT,
    ip_address          TEXT,
    user_agent          TEXT,
    request_id          TEXT,
    metadata            TEXT,
    success             BOOLEAN NOT NULL DEFAULT 1,
    error_message       TEXT,
    created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// tables in deletion order
var tables = []string{
	"schedule_audit_log",
	"placement_daypart_overrides",
	"daypart_schedules",
	"daypart_definitions",
	"placement_groups",
	"stores",
	"companies",
	"concepts",
}

var dbCounter atomic.Int64

// TestDB represents a test database instance
type TestDB struct {
	DB   *gorm.DB
	Name string
}

// SetupTestDB opens a private in-memory sqlite database and creates the schema.
// The pool is pinned to one connection so the in-memory database outlives individual queries
// and nested repository calls share the surrounding transaction.
func SetupTestDB() (*TestDB, error) {
	name := fmt.Sprintf("signage_test_%d", dbCounter.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to apply schema to %s: %w", name, err)
		}
	}

	return &TestDB{DB: db, Name: name}, nil
}

// TeardownTestDB closes the connection, which drops the in-memory database
func (tdb *TestDB) TeardownTestDB() error {
	if tdb.DB == nil {
		return nil
	}
	sqlDB, err := tdb.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ClearAllTables removes all data from tables while preserving structure
func (tdb *TestDB) ClearAllTables() error {
	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// TestWithDB sets up a test database, runs the test function, and cleans up
func TestWithDB(testFunc func(*TestDB) error) error {
	testDB, err := SetupTestDB()
	if err != nil {
		return fmt.Errorf("failed to setup test database: %w", err)
	}
	defer func() { _ = testDB.TeardownTestDB() }()

	return testFunc(testDB)
}

// CreateTestContext creates a context for testing
func CreateTestContext() context.Context {
	return context.Background()
}
