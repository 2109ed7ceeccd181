package seed

import (
	"io/fs"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// Articles seeds the blog articles collection.
func Articles(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Article]{
		name:       "articles",
		label:      "📰 Articles",
		collection: "articles",
		file:       "articles.yaml",
		requires:   []string{"categories", "tags"},
		fsys:       fsys,
		build: func(items []domain.Article, r refs, w pipeline.Warner) []store.Document {
			return articleRecords(items, r["categories"], r["tags"], w)
		},
	}
}

// Comments seeds reader comments on articles.
func Comments(fsys fs.FS) pipeline.Seeder {
	return &unit[domain.Comment]{
		name:       "comments",
		label:      "💬 Comments",
		collection: "comments",
		file:       "comments.yaml",
		requires:   []string{"articles"},
		fsys:       fsys,
		build: func(items []domain.Comment, r refs, w pipeline.Warner) []store.Document {
			return commentRecords(items, r["articles"], w)
		},
	}
}

func articleRecords(items []domain.Article, categories, tags slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for _, a := range items {
		categoryID, ok := categories[a.Category]
		if !ok {
			w.Skip("category not found, article skipped", "article", a.Slug, "category", a.Category)
			continue
		}
		docs = append(docs, store.Document{
			"title":       a.Title,
			"slug":        a.Slug,
			"category":    categoryID,
			"tags":        tags.resolveAll(a.Tags, w, "tag", a.Slug),
			"author":      a.Author,
			"excerpt":     a.Excerpt,
			"content":     a.Content,
			"readMinutes": a.ReadMinutes,
			"featured":    a.Featured,
			"publishedAt": a.PublishedAt.UTC(),
		})
	}
	return docs
}

func commentRecords(items []domain.Comment, articles slugIndex, w pipeline.Warner) []store.Document {
	docs := make([]store.Document, 0, len(items))
	for i, c := range items {
		articleID, ok := articles[c.Article]
		if !ok {
			w.Skip("article not found, comment skipped", "index", i, "article", c.Article)
			continue
		}
		doc := store.Document{
			"article":  articleID,
			"author":   c.Author,
			"body":     c.Body,
			"approved": c.Approved,
		}
		if !c.CreatedAt.IsZero() {
			doc["createdAt"] = c.CreatedAt.UTC()
		}
		docs = append(docs, doc)
	}
	return docs
}
