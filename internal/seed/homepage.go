package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Homepage seeds the curated landing page sections.
func Homepage(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.HomepageSection]{
		name:       "homepage",
		label:      "🏠 Homepage sections",
		collection: "homepage_sections",
		file:       "homepage.yaml",
		requires:   []string{"courses", "roadmaps", "technologies"},
		fsys:       fsys,
		build: func(items []domain.HomepageSection, r refs, w pipeline.Warner) []store.Document {
			return homepageRecords(items, map[domain.SectionKind]slugIndex{
				domain.SectionCourses:      r["courses"],
				domain.SectionRoadmaps:     r["roadmaps"],
				domain.SectionTechnologies: r["technologies"],
			}, w)
		},
	}
}

func homepageRecords(items []domain.HomepageSection, sources map[domain.SectionKind]slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, s := range items {
		idx, ok := sources[s.Kind]
		if !ok {
			w.Skip("unknown section kind, section skipped", "section", s.Key, "kind", s.Kind)
			continue
		}
		docs = append(docs, store.Document{
			"key":      s.Key,
			"title":    s.Title,
			"subtitle": s.Subtitle,
			"kind":     string(s.Kind),
			"items":    idx.resolveAll(s.Items, w, string(s.Kind), s.Key),
			"order":    s.Order,
			"visible":  s.Visible,
		})
	}
	return docs
}
