package seed

import (
	"io/fs"

	"gopkg.in/go-playground/colors.v1"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Categories seeds the categories collection.
func Categories(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Category]{
		name:       "categories",
		label:      "📂 Categories",
		collection: "categories",
		file:       "categories.yaml",
		fsys:       fsys,
		build: func(items []domain.Category, _ refs, w pipeline.Warner) []store.Document {
			return categoryRecords(items, w)
		},
	}
}

// Tags seeds the tags collection.
func Tags(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Tag]{
		name:       "tags",
		label:      "🏷️  Tags",
		collection: "tags",
		file:       "tags.yaml",
		fsys:       fsys,
		build: func(items []domain.Tag, _ refs, w pipeline.Warner) []store.Document {
			return tagRecords(items, w)
		},
	}
}

func categoryRecords(items []domain.Category, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, c := range items {
		docs = append(docs, store.Document{
			"name":        c.Name,
			"slug":        c.Slug,
			"description": c.Description,
			"icon":        c.Icon,
			"color":       hexColor(c.Color, w, c.Slug),
			"order":       c.Order,
		})
	}
	return docs
}

func tagRecords(items []domain.Tag, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, t := range items {
		docs = append(docs, store.Document{
			"name":  t.Name,
			"slug":  t.Slug,
			"color": hexColor(t.Color, w, t.Slug),
		})
	}
	return docs
}

// hexColor returns c in canonical hex form. An invalid color is dropped
// with a warning; the item itself is kept.
func hexColor(c string, w pipeline.Warner, owner string) string {
	if c == "" {
		return ""
	}
	hex, err := colors.ParseHEX(c)
	if err != nil {
		w.Warn("invalid color, dropped", "item", owner, "color", c)
		return ""
	}
	return hex.String()
}
