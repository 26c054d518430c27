package migrations

import "embed"

// FS holds the schema migrations so the binary carries its own schema.
//
//go:embed postgres/*.sql
var FS embed.FS

const PostgresDir = "postgres"
