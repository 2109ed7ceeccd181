package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Courses seeds the courses collection.
func Courses(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Course]{
		name:       "courses",
		label:      "🎓 Courses",
		collection: "courses",
		file:       "courses.yaml",
		requires:   []string{"categories", "technologies"},
		fsys:       fsys,
		build: func(items []domain.Course, r refs, w pipeline.Warner) []store.Document {
			return courseRecords(items, r["categories"], r["technologies"], w)
		},
	}
}

// Topics seeds the topics collection; every topic belongs to a course.
func Topics(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Topic]{
		name:       "topics",
		label:      "📑 Topics",
		collection: "topics",
		file:       "topics.yaml",
		requires:   []string{"courses"},
		fsys:       fsys,
		build: func(items []domain.Topic, r refs, w pipeline.Warner) []store.Document {
			return topicRecords(items, r["courses"], w)
		},
	}
}

func courseRecords(items []domain.Course, categories, technologies slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, c := range items {
		categoryID, ok := categories[c.Category]
		if !ok {
			w.Skip("category not found, course skipped", "course", c.Slug, "category", c.Category)
			continue
		}
		technologyID, ok := technologies[c.Technology]
		if !ok {
			w.Skip("technology not found, course skipped", "course", c.Slug, "technology", c.Technology)
			continue
		}
		prerequisites := c.Prerequisites
		if prerequisites == nil {
			prerequisites = []string{}
		}
		docs = append(docs, store.Document{
			"title":         c.Title,
			"slug":          c.Slug,
			"category":      categoryID,
			"technology":    technologyID,
			"description":   c.Description,
			"instructor":    c.Instructor,
			"level":         string(c.Level),
			"durationHours": c.DurationHours,
			"price":         c.Price,
			"isFree":        c.Price == 0,
			"published":     c.Published,
			"prerequisites": prerequisites,
		})
	}
	return docs
}

func topicRecords(items []domain.Topic, courses slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, t := range items {
		courseID, ok := courses[t.Course]
		if !ok {
			w.Skip("course not found, topic skipped", "topic", t.Slug, "course", t.Course)
			continue
		}
		docs = append(docs, store.Document{
			"title":            t.Title,
			"slug":             t.Slug,
			"course":           courseID,
			"summary":          t.Summary,
			"estimatedMinutes": t.EstimatedMinutes,
			"order":            t.Order,
		})
	}
	return docs
}
