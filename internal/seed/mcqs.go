package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// MCQs seeds the mcqs collection.
func MCQs(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.MCQ]{
		name:       "mcqs",
		label:      "❓ MCQs",
		collection: "mcqs",
		file:       "mcqs.yaml",
		requires:   []string{"technologies", "topics"},
		fsys:       fsys,
		build: func(items []domain.MCQ, r refs, w pipeline.Warner) []store.Document {
			return mcqRecords(items, r["technologies"], r["topics"], w)
		},
	}
}

func mcqRecords(items []domain.MCQ, technologies, topics slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for i, q := range items {
		technologyID, ok := technologies[q.Technology]
		if !ok {
			w.Skip("technology not found, question skipped", "index", i, "technology", q.Technology)
			continue
		}
		options := make([]any, len(q.Options))
		for j, o := range q.Options {
			options[j] = o
		}
		doc := store.Document{
			"question":    q.Question,
			"technology":  technologyID,
			"options":     options,
			"answer":      q.Answer,
			"explanation": q.Explanation,
			"difficulty":  string(q.Difficulty),
		}
		if q.Topic != "" {
			if topicID, ok := topics[q.Topic]; ok {
				doc["topic"] = topicID
			} else {
				w.Warn("topic not found, reference dropped", "index", i, "topic", q.Topic)
			}
		}
		docs = append(docs, doc)
	}
	return docs
}
