package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Cheatsheets seeds the cheatsheets collection.
func Cheatsheets(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Cheatsheet]{
		name:       "cheatsheets",
		label:      "📋 Cheatsheets",
		collection: "cheatsheets",
		file:       "cheatsheets.yaml",
		requires:   []string{"technologies"},
		fsys:       fsys,
		build: func(items []domain.Cheatsheet, r refs, w pipeline.Warner) []store.Document {
			return cheatsheetRecords(items, r["technologies"], w)
		},
	}
}

func cheatsheetRecords(items []domain.Cheatsheet, technologies slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, c := range items {
		technologyID, ok := technologies[c.Technology]
		if !ok {
			w.Skip("technology not found, cheatsheet skipped", "cheatsheet", c.Slug, "technology", c.Technology)
			continue
		}

		sections := make([]store.Document, 0, len(c.Sections))
		for _, s := range c.Sections {
			entries := make([]store.Document, 0, len(s.Items))
			for _, it := range s.Items {
				entries = append(entries, store.Document{"code": it.Code, "description": it.Description})
			}
			sections = append(sections, store.Document{
				"title": s.Title,
				"order": s.Order,
				"items": entries,
			})
		}

		docs = append(docs, store.Document{
			"title":       c.Title,
			"slug":        c.Slug,
			"technology":  technologyID,
			"description": c.Description,
			"sections":    sections,
		})
	}
	return docs
}
