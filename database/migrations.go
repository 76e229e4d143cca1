package database

import "embed"

// Migrations holds the SQL files applied by config.ConnectDB.
//
//go:embed migration/*.sql
var Migrations embed.FS
