package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/johnwards/learnseed/internal/domain"
	"github.com/johnwards/learnseed/internal/store"
)

// recorder collects Skip and Warn calls.
type recorder struct {
	skips []string
	warns []string
}

func (r *recorder) Skip(msg string, _ ...any) { r.skips = append(r.skips, msg) }
func (r *recorder) Warn(msg string, _ ...any) { r.warns = append(r.warns, msg) }

func index(slugs ...string) slugIndex {
	idx := make(slugIndex, len(slugs))
	for _, s := range slugs {
		idx[s] = store.NewID()
	}
	return idx
}

func TestIndexBySlug(t *testing.T) {
	a, b := store.NewID(), store.NewID()
	idx := indexBySlug([]store.Document{
		{store.IDKey: a, "slug": "web"},
		{store.IDKey: b, "slug": "data"},
		{store.IDKey: store.NewID()},
	})

	want := slugIndex{"web": a, "data": b}
	if diff := cmp.Diff(want, idx); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryRecordsValidateColor(t *testing.T) {
	w := &recorder{}

	docs := categoryRecords([]domain.Category{
		{Slug: "web", Color: "#3B82F6"},
		{Slug: "data", Color: "teal-ish"},
		{Slug: "devops"},
	}, w)

	if len(docs) != 3 {
		t.Fatalf("an invalid color must not drop the category, got %d records", len(docs))
	}
	if len(w.warns) != 1 {
		t.Errorf("expected 1 warning, got %v", w.warns)
	}
	if got := docs[0].String("color"); !strings.EqualFold(got, "#3B82F6") {
		t.Errorf("color = %q", got)
	}
	if got := docs[1].String("color"); got != "" {
		t.Errorf("invalid color kept: %q", got)
	}
}

func TestTechnologyRecordsSkipsMissingCategory(t *testing.T) {
	categories := index("web-development", "devops")
	w := &recorder{}

	docs := technologyRecords([]domain.Technology{
		{Name: "HTML", Slug: "html", Category: "web-development"},
		{Name: "Rust", Slug: "rust", Category: "systems"},
		{Name: "Docker", Slug: "docker", Category: "devops"},
	}, categories, w)

	if len(docs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(docs))
	}
	if len(w.skips) != 1 {
		t.Errorf("expected 1 skip, got %v", w.skips)
	}
	if got := docs[0]["category"]; got != categories["web-development"] {
		t.Errorf("html category = %v, want %v", got, categories["web-development"])
	}
	if got := docs[1].String("slug"); got != "docker" {
		t.Errorf("second record = %q, want docker", got)
	}
}

func TestCourseRecords(t *testing.T) {
	categories := index("web-development")
	technologies := index("javascript")
	w := &recorder{}

	docs := courseRecords([]domain.Course{
		{Slug: "free", Category: "web-development", Technology: "javascript", Price: 0},
		{Slug: "paid", Category: "web-development", Technology: "javascript", Price: 29, Prerequisites: []string{"free"}},
		{Slug: "no-category", Category: "design", Technology: "javascript"},
		{Slug: "no-technology", Category: "web-development", Technology: "cobol"},
	}, categories, technologies, w)

	if len(docs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(docs))
	}
	if len(w.skips) != 2 {
		t.Errorf("expected 2 skips, got %v", w.skips)
	}
	if docs[0]["isFree"] != true || docs[1]["isFree"] != false {
		t.Errorf("isFree not derived from price: %v, %v", docs[0]["isFree"], docs[1]["isFree"])
	}
	if p, ok := docs[0]["prerequisites"].([]string); !ok || p == nil {
		t.Errorf("prerequisites should default to an empty list, got %#v", docs[0]["prerequisites"])
	}
}

func TestTutorialRecordsDropsOnlyMissingTopic(t *testing.T) {
	technologies := index("css")
	topics := index("css-flexbox")
	w := &recorder{}

	docs := tutorialRecords([]domain.Tutorial{
		{Slug: "cards", Technology: "css", Topic: "css-flexbox", Lessons: []domain.Lesson{{Title: "Markup", Order: 1}}},
		{Slug: "grid", Technology: "css", Topic: "css-grid"},
		{Slug: "unknown", Technology: "sass"},
	}, technologies, topics, w)

	if len(docs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(docs))
	}
	if len(w.skips) != 1 || len(w.warns) != 1 {
		t.Errorf("expected 1 skip and 1 warning, got %v / %v", w.skips, w.warns)
	}
	if docs[0]["topic"] != topics["css-flexbox"] {
		t.Errorf("topic = %v, want %v", docs[0]["topic"], topics["css-flexbox"])
	}
	if _, ok := docs[1]["topic"]; ok {
		t.Errorf("dangling topic reference kept: %v", docs[1]["topic"])
	}
	if lessons := docs[0]["lessons"].([]store.Document); len(lessons) != 1 {
		t.Errorf("expected 1 lesson, got %d", len(lessons))
	}
}

func TestRoadmapRecordsDropsStepReferences(t *testing.T) {
	w := &recorder{}

	docs := roadmapRecords([]domain.Roadmap{
		{Slug: "frontend", Category: "web-development", Steps: []domain.RoadmapStep{
			{Title: "Basics", Technology: "html", Courses: []string{"html-css", "missing-course"}},
			{Title: "Framework", Technology: "svelte"},
		}},
		{Slug: "orphan", Category: "games"},
	}, index("web-development"), index("html"), index("html-css"), w)

	if len(docs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(docs))
	}
	if len(w.skips) != 1 {
		t.Errorf("expected 1 skip, got %v", w.skips)
	}
	if len(w.warns) != 2 {
		t.Errorf("expected 2 warnings, got %v", w.warns)
	}
	steps := docs[0]["steps"].([]store.Document)
	if courses := steps[0]["courses"].([]store.ID); len(courses) != 1 {
		t.Errorf("expected 1 resolved course, got %v", courses)
	}
	if _, ok := steps[1]["technology"]; ok {
		t.Errorf("unresolved technology kept on step: %v", steps[1])
	}
}

func TestCommentRecordsKeepsDatedTimestamps(t *testing.T) {
	at := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	w := &recorder{}

	docs := commentRecords([]domain.Comment{
		{Article: "hello", Author: "Sam", CreatedAt: at},
		{Article: "hello", Author: "Ines"},
		{Article: "gone", Author: "Jonas"},
	}, index("hello"), w)

	if len(docs) != 2 || len(w.skips) != 1 {
		t.Fatalf("expected 2 records and 1 skip, got %d / %v", len(docs), w.skips)
	}

	stamp(docs, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if got, _ := docs[0]["createdAt"].(time.Time); !got.Equal(at) {
		t.Errorf("dataset createdAt overwritten: %v", docs[0]["createdAt"])
	}
	if docs[1]["createdAt"] == nil || docs[1]["updatedAt"] == nil {
		t.Errorf("timestamps not stamped: %v", docs[1])
	}
}

func TestHomepageRecordsResolvesByKind(t *testing.T) {
	courses := index("go-basics")
	w := &recorder{}

	docs := homepageRecords([]domain.HomepageSection{
		{Key: "featured", Kind: domain.SectionCourses, Items: []string{"go-basics", "missing"}},
		{Key: "videos", Kind: "videos", Items: []string{"intro"}},
	}, map[domain.SectionKind]slugIndex{domain.SectionCourses: courses}, w)

	if len(docs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(docs))
	}
	if len(w.skips) != 1 || len(w.warns) != 1 {
		t.Errorf("expected 1 skip and 1 warning, got %v / %v", w.skips, w.warns)
	}
	items := docs[0]["items"].([]store.ID)
	if len(items) != 1 || items[0] != courses["go-basics"] {
		t.Errorf("items = %v", items)
	}
}

func TestEmbeddedDatasetsDecode(t *testing.T) {
	data := DefaultData()

	check := func(name string, n int, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if n == 0 {
			t.Errorf("%s: dataset is empty", name)
		}
	}

	categories, err := load[domain.Category](data, "categories.yaml")
	check("categories", len(categories), err)
	if len(categories) != 5 {
		t.Errorf("expected 5 categories, got %d", len(categories))
	}
	technologies, err := load[domain.Technology](data, "technologies.yaml")
	check("technologies", len(technologies), err)
	if len(technologies) != 10 {
		t.Errorf("expected 10 technologies, got %d", len(technologies))
	}

	tags, err := load[domain.Tag](data, "tags.yaml")
	check("tags", len(tags), err)
	courses, err := load[domain.Course](data, "courses.yaml")
	check("courses", len(courses), err)
	topics, err := load[domain.Topic](data, "topics.yaml")
	check("topics", len(topics), err)
	tutorials, err := load[domain.Tutorial](data, "tutorials.yaml")
	check("tutorials", len(tutorials), err)
	roadmaps, err := load[domain.Roadmap](data, "roadmaps.yaml")
	check("roadmaps", len(roadmaps), err)
	cheatsheets, err := load[domain.Cheatsheet](data, "cheatsheets.yaml")
	check("cheatsheets", len(cheatsheets), err)
	mcqs, err := load[domain.MCQ](data, "mcqs.yaml")
	check("mcqs", len(mcqs), err)
	articles, err := load[domain.Article](data, "articles.yaml")
	check("articles", len(articles), err)
	comments, err := load[domain.Comment](data, "comments.yaml")
	check("comments", len(comments), err)
	sections, err := load[domain.HomepageSection](data, "homepage.yaml")
	check("homepage", len(sections), err)

	for _, q := range mcqs {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Errorf("question %q: answer %d out of range", q.Question, q.Answer)
		}
	}
}
