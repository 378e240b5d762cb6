package migrations

import "embed"

// FS holds the historical_campaigns schema and its indexes.
// internal/db.Migrate reads it through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 2
