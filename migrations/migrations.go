// Package migrations embeds the SQL migration sets for each database backend.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
