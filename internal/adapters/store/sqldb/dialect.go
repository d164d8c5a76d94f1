package sqldb

import (
	"encoding/json"
	"fmt"
)

// Dialect holds the SQL that differs between engines.
type Dialect struct {
	// Name identifies the engine in errors and traces.
	Name string
	// Schema is executed statement by statement when the store opens.
	Schema []string
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
	// FieldEquals renders an equality test between the top-level body
	// attribute field and bind parameter n.
	FieldEquals func(field string, n int) string
	// FilterArg converts a filter value to the bind argument FieldEquals
	// expects.
	FilterArg func(v any) (any, error)
}

// SQLite renders JSON attribute access with json_extract. SQLite returns JSON
// booleans as integers, so boolean filter values bind as 0 or 1.
var SQLite = Dialect{
	Name: "sqlite",
	Schema: []string{
		`CREATE TABLE IF NOT EXISTS documents (
			kind TEXT NOT NULL,
			id INTEGER NOT NULL,
			body TEXT NOT NULL CHECK (json_valid(body)),
			PRIMARY KEY (kind, id)
		)`,
		`CREATE TABLE IF NOT EXISTS sequences (
			kind TEXT PRIMARY KEY,
			next_id INTEGER NOT NULL
		)`,
	},
	Placeholder: func(int) string { return "?" },
	FieldEquals: func(field string, _ int) string {
		return fmt.Sprintf("json_extract(body, '$.%s') = ?", field)
	},
	FilterArg: func(v any) (any, error) {
		if b, ok := v.(bool); ok {
			if b {
				return 1, nil
			}
			return 0, nil
		}
		return v, nil
	},
}

// Postgres stores bodies as JSONB and compares attributes as JSONB values.
var Postgres = Dialect{
	Name: "postgres",
	Schema: []string{
		`CREATE TABLE IF NOT EXISTS documents (
			kind TEXT NOT NULL,
			id BIGINT NOT NULL,
			body JSONB NOT NULL,
			PRIMARY KEY (kind, id)
		)`,
		`CREATE TABLE IF NOT EXISTS sequences (
			kind TEXT PRIMARY KEY,
			next_id BIGINT NOT NULL
		)`,
	},
	Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	FieldEquals: func(field string, n int) string {
		return fmt.Sprintf("body->'%s' = $%d::jsonb", field, n)
	},
	FilterArg: func(v any) (any, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	},
}
