package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Tutorials seeds the tutorials collection with embedded lessons.
func Tutorials(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Tutorial]{
		name:       "tutorials",
		label:      "📘 Tutorials",
		collection: "tutorials",
		file:       "tutorials.yaml",
		requires:   []string{"technologies", "topics"},
		fsys:       fsys,
		build: func(items []domain.Tutorial, r refs, w pipeline.Warner) []store.Document {
			return tutorialRecords(items, r["technologies"], r["topics"], w)
		},
	}
}

func tutorialRecords(items []domain.Tutorial, technologies, topics slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, t := range items {
		technologyID, ok := technologies[t.Technology]
		if !ok {
			w.Skip("technology not found, tutorial skipped", "tutorial", t.Slug, "technology", t.Technology)
			continue
		}

		lessons := make([]store.Document, 0, len(t.Lessons))
		for _, l := range t.Lessons {
			lessons = append(lessons, store.Document{
				"title":   l.Title,
				"content": l.Content,
				"code":    l.Code,
				"order":   l.Order,
			})
		}

		doc := store.Document{
			"title":       t.Title,
			"slug":        t.Slug,
			"technology":  technologyID,
			"description": t.Description,
			"level":       string(t.Level),
			"order":       t.Order,
			"lessons":     lessons,
		}
		if t.Topic != "" {
			if topicID, ok := topics[t.Topic]; ok {
				doc["topic"] = topicID
			} else {
				w.Warn("topic not found, reference dropped", "item", t.Slug, "topic", t.Topic)
			}
		}
		docs = append(docs, doc)
	}
	return docs
}
