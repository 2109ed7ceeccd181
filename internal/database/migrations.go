package database

type migration struct {
	name  string
	stmts []string
}

// migrations are applied in order; a migration's version is its 1-based
// index. Never edit an applied entry, append a new one.
var migrations = []migration{
	{
		name: "documents",
		stmts: []string{
			`CREATE TABLE documents (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				collection TEXT NOT NULL,
				id TEXT NOT NULL,
				body TEXT NOT NULL,
				created_at TEXT NOT NULL,
				UNIQUE (collection, id)
			)`,
			`CREATE INDEX idx_documents_collection ON documents(collection, seq)`,
		},
	},
}
