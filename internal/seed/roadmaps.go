package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Roadmaps seeds the roadmaps collection. Steps reference technologies and
// courses; a missing step reference is dropped, a missing category skips
// the roadmap.
func Roadmaps(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Roadmap]{
		name:       "roadmaps",
		label:      "🗺️  Roadmaps",
		collection: "roadmaps",
		file:       "roadmaps.yaml",
		requires:   []string{"categories", "technologies", "courses"},
		fsys:       fsys,
		build: func(items []domain.Roadmap, r refs, w pipeline.Warner) []store.Document {
			return roadmapRecords(items, r["categories"], r["technologies"], r["courses"], w)
		},
	}
}

func roadmapRecords(items []domain.Roadmap, categories, technologies, courses slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, rm := range items {
		categoryID, ok := categories[rm.Category]
		if !ok {
			w.Skip("category not found, roadmap skipped", "roadmap", rm.Slug, "category", rm.Category)
			continue
		}

		steps := make([]store.Document, 0, len(rm.Steps))
		for _, s := range rm.Steps {
			step := store.Document{
				"title":       s.Title,
				"description": s.Description,
				"order":       s.Order,
				"courses":     courses.resolveAll(s.Courses, w, "course", rm.Slug),
			}
			if s.Technology != "" {
				if id, ok := technologies[s.Technology]; ok {
					step["technology"] = id
				} else {
					w.Warn("technology not found, reference dropped", "item", rm.Slug, "step", s.Title, "technology", s.Technology)
				}
			}
			steps = append(steps, step)
		}

		docs = append(docs, store.Document{
			"title":          rm.Title,
			"slug":           rm.Slug,
			"category":       categoryID,
			"description":    rm.Description,
			"level":          string(rm.Level),
			"estimatedWeeks": rm.EstimatedWeeks,
			"steps":          steps,
		})
	}
	return docs
}
