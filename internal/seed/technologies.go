package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Technologies seeds the technologies collection. Each technology points at
// its category.
func Technologies(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Technology]{
		name:       "technologies",
		label:      "🛠️  Technologies",
		collection: "technologies",
		file:       "technologies.yaml",
		requires:   []string{"categories"},
		fsys:       fsys,
		build: func(items []domain.Technology, r refs, w pipeline.Warner) []store.Document {
			return technologyRecords(items, r["categories"], w)
		},
	}
}

func technologyRecords(items []domain.Technology, categories slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, t := range items {
		categoryID, ok := categories[t.Category]
		if !ok {
			w.Skip("category not found, technology skipped", "technology", t.Slug, "category", t.Category)
			continue
		}
		docs = append(docs, store.Document{
			"name":        t.Name,
			"slug":        t.Slug,
			"category":    categoryID,
			"description": t.Description,
			"icon":        t.Icon,
			"website":     t.Website,
			"popular":     t.Popular,
			"order":       t.Order,
		})
	}
	return docs
}
