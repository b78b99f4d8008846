package migrations

import "embed"

// FS embeds the SQL migrations of this directory for the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate brings the database to.
const Version = 2
