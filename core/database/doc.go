// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on
// the application's configuration. The catalog feature uses it to record the curated
// icon set.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the database
// within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (SHOW COLUMNS on MySQL, PRAGMA table_info on
// SQLite). The catalog check uses it to verify the curated_icons table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "curated_icons")
package database
