package seed_test

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/seed"
	"github.com/johnwards/learnseed/internal/store"
	"github.com/johnwards/learnseed/internal/testhelpers"
)

// openStore keeps the test database open across orchestrator runs.
type openStore struct{ store.Store }

func (openStore) Disconnect(context.Context) error { return nil }

func newOrchestrator(t *testing.T, fsys fs.FS) (*pipeline.Orchestrator, store.Store) {
	t.Helper()

	reg, err := seed.NewRegistry(fsys)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	s := openStore{testhelpers.NewTestStore(t)}
	open := func(context.Context) (store.Store, error) { return s, nil }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return pipeline.New(reg, open, pipeline.WithLogger(logger)), s
}

func find(t *testing.T, s store.Store, collection string) []store.Document {
	t.Helper()

	docs, err := s.Collection(collection).Find(context.Background(), store.Filter{})
	if err != nil {
		t.Fatalf("find %s: %v", collection, err)
	}
	return docs
}

func ids(docs []store.Document) map[store.ID]bool {
	out := make(map[store.ID]bool, len(docs))
	for _, d := range docs {
		out[d.ID()] = true
	}
	return out
}

// overlay returns the embedded datasets with files replaced.
func overlay(t *testing.T, files map[string]string) fstest.MapFS {
	t.Helper()

	data := seed.DefaultData()
	entries, err := fs.ReadDir(data, ".")
	if err != nil {
		t.Fatalf("read datasets: %v", err)
	}
	m := fstest.MapFS{}
	for _, e := range entries {
		b, err := fs.ReadFile(data, e.Name())
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		m[e.Name()] = &fstest.MapFile{Data: b}
	}
	for name, body := range files {
		m[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return m
}

func TestStandardRegistryOrder(t *testing.T) {
	reg, err := seed.NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	want := []string{
		"categories", "technologies", "courses", "topics", "tutorials", "roadmaps",
		"cheatsheets", "mcqs", "tags", "articles", "comments", "homepage",
	}
	if diff := cmp.Diff(want, reg.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAllSeedsEveryCollection(t *testing.T) {
	o, s := newOrchestrator(t, nil)

	sum, err := o.RunAll(context.Background())
	if err != nil {
		t.Fatalf("run all: %v", err)
	}
	if sum.State != pipeline.StateSucceeded {
		t.Errorf("state = %s", sum.State)
	}
	if len(sum.Results) != 12 {
		t.Fatalf("expected 12 results, got %d", len(sum.Results))
	}
	if sum.Skipped() != 0 {
		t.Errorf("default datasets should not skip anything, skipped %d", sum.Skipped())
	}

	for _, r := range sum.Results {
		if r.Created == 0 {
			t.Errorf("%s created nothing", r.Unit)
		}
		if n := testhelpers.CountDocs(t, s, r.Collection); n != r.Created {
			t.Errorf("%s: reported %d, collection holds %d", r.Unit, r.Created, n)
		}
	}

	categories, _ := sum.Result("categories")
	technologies, _ := sum.Result("technologies")
	if categories.Created != 5 || technologies.Created != 10 {
		t.Errorf("expected 5 categories and 10 technologies, got %d and %d", categories.Created, technologies.Created)
	}
	if _, ok := sum.Result("homepage"); !ok {
		t.Error("homepage not seeded")
	}
	if n := testhelpers.CountDocs(t, s, "homepage_sections"); n == 0 {
		t.Error("homepage_sections is empty")
	}
}

func TestTechnologiesReferenceCategoryIDs(t *testing.T) {
	o, s := newOrchestrator(t, nil)
	if _, err := o.RunAll(context.Background()); err != nil {
		t.Fatalf("run all: %v", err)
	}

	categories := ids(find(t, s, "categories"))
	technologies := find(t, s, "technologies")
	if len(categories) != 5 || len(technologies) != 10 {
		t.Fatalf("expected 5 categories and 10 technologies, got %d and %d", len(categories), len(technologies))
	}

	for _, tech := range technologies {
		id, ok := store.AsID(tech["category"])
		if !ok {
			t.Errorf("%s: category is %T, want an ID", tech.String("slug"), tech["category"])
			continue
		}
		if !categories[id] {
			t.Errorf("%s: category %s is not a seeded category", tech.String("slug"), id)
		}
	}
}

func TestForeignKeysResolve(t *testing.T) {
	o, s := newOrchestrator(t, nil)
	if _, err := o.RunAll(context.Background()); err != nil {
		t.Fatalf("run all: %v", err)
	}

	targets := map[string]map[store.ID]bool{}
	for _, c := range []string{"categories", "technologies", "courses", "topics", "tags", "articles", "roadmaps"} {
		targets[c] = ids(find(t, s, c))
	}

	refs := []struct {
		collection string
		field      string
		target     string
		optional   bool
	}{
		{"technologies", "category", "categories", false},
		{"courses", "category", "categories", false},
		{"courses", "technology", "technologies", false},
		{"topics", "course", "courses", false},
		{"tutorials", "technology", "technologies", false},
		{"tutorials", "topic", "topics", true},
		{"roadmaps", "category", "categories", false},
		{"cheatsheets", "technology", "technologies", false},
		{"mcqs", "technology", "technologies", false},
		{"mcqs", "topic", "topics", true},
		{"articles", "category", "categories", false},
		{"comments", "article", "articles", false},
	}

	for _, ref := range refs {
		for _, doc := range find(t, s, ref.collection) {
			v, present := doc[ref.field]
			if !present {
				if !ref.optional {
					t.Errorf("%s %v: missing %s", ref.collection, doc.ID(), ref.field)
				}
				continue
			}
			id, ok := store.AsID(v)
			if !ok || !targets[ref.target][id] {
				t.Errorf("%s %v: %s=%v not found in %s", ref.collection, doc.ID(), ref.field, v, ref.target)
			}
		}
	}

	for _, a := range find(t, s, "articles") {
		for _, v := range a["tags"].([]any) {
			if id, ok := store.AsID(v); !ok || !targets["tags"][id] {
				t.Errorf("article %s: tag %v not found", a.String("slug"), v)
			}
		}
	}
}

func TestRunAllIsIdempotent(t *testing.T) {
	o, s := newOrchestrator(t, nil)

	var first map[string]int
	for i := 0; i < 2; i++ {
		sum, err := o.RunAll(context.Background())
		if err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
		counts := map[string]int{}
		for _, r := range sum.Results {
			counts[r.Collection] = testhelpers.CountDocs(t, s, r.Collection)
		}
		if first == nil {
			first = counts
			continue
		}
		for c, n := range counts {
			if first[c] != n {
				t.Errorf("%s: %d documents after first run, %d after second", c, first[c], n)
			}
		}
	}

	// References from the second run point at second-run records.
	categories := ids(find(t, s, "categories"))
	for _, tech := range find(t, s, "technologies") {
		id, _ := store.AsID(tech["category"])
		if !categories[id] {
			t.Errorf("%s references a category from a previous run", tech.String("slug"))
		}
	}
}

func TestRunOneChangesOnlyItsCollection(t *testing.T) {
	o, s := newOrchestrator(t, nil)
	if _, err := o.RunAll(context.Background()); err != nil {
		t.Fatalf("run all: %v", err)
	}

	before := ids(find(t, s, "categories"))
	oldTech := ids(find(t, s, "technologies"))

	sum, err := o.RunOne(context.Background(), "technologies")
	if err != nil {
		t.Fatalf("run one: %v", err)
	}
	if len(sum.Results) != 1 || sum.Results[0].Created != 10 {
		t.Fatalf("unexpected results: %+v", sum.Results)
	}

	after := ids(find(t, s, "categories"))
	if len(after) != len(before) {
		t.Fatalf("categories changed size: %d -> %d", len(before), len(after))
	}
	for id := range before {
		if !after[id] {
			t.Errorf("category %s was replaced", id)
		}
	}

	for _, tech := range find(t, s, "technologies") {
		if oldTech[tech.ID()] {
			t.Errorf("technology %s was not re-created", tech.String("slug"))
		}
		id, _ := store.AsID(tech["category"])
		if !before[id] {
			t.Errorf("%s: category not resolved from stored records", tech.String("slug"))
		}
	}
}

func TestMissingCategorySkipsTechnology(t *testing.T) {
	fsys := overlay(t, map[string]string{
		"technologies.yaml": `
- name: HTML
  slug: html
  category: web-development
- name: Rust
  slug: rust
  category: systems-programming
`,
	})

	reg, err := seed.NewRegistry(fsys)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	// Only the first two units, so later units do not pick up the missing
	// technologies.
	sub, err := pipeline.NewRegistry(unitsNamed(t, reg, "categories", "technologies")...)
	if err != nil {
		t.Fatalf("sub registry: %v", err)
	}

	s := openStore{testhelpers.NewTestStore(t)}
	o := pipeline.New(sub, func(context.Context) (store.Store, error) { return s, nil },
		pipeline.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	sum, err := o.RunAll(context.Background())
	if err != nil {
		t.Fatalf("a missing prerequisite item must not fail the run: %v", err)
	}
	res, _ := sum.Result("technologies")
	if res.Created != 1 || res.Skipped != 1 {
		t.Errorf("created %d skipped %d, want 1 and 1", res.Created, res.Skipped)
	}
	if n := testhelpers.CountDocs(t, s, "technologies"); n != 1 {
		t.Errorf("technologies holds %d documents, want 1", n)
	}
}

func TestUnknownDatasetFieldFailsUnit(t *testing.T) {
	fsys := overlay(t, map[string]string{
		"categories.yaml": "- name: Web\n  slug: web\n  colour: \"#fff\"\n",
	})
	o, s := newOrchestrator(t, fsys)

	sum, err := o.RunAll(context.Background())
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
	if !strings.Contains(err.Error(), "categories.yaml") {
		t.Errorf("error should name the dataset: %v", err)
	}
	if sum.Failed != "categories" || len(sum.Results) != 0 {
		t.Errorf("failed=%q results=%d", sum.Failed, len(sum.Results))
	}
	if n := testhelpers.CountDocs(t, s, "technologies"); n != 0 {
		t.Errorf("later units ran: technologies holds %d", n)
	}
}

func TestEmptyDatasetCreatesNothing(t *testing.T) {
	fsys := overlay(t, map[string]string{"tags.yaml": ""})
	o, s := newOrchestrator(t, fsys)

	if _, err := o.RunAll(context.Background()); err != nil {
		t.Fatalf("run all: %v", err)
	}
	if n := testhelpers.CountDocs(t, s, "tags"); n != 0 {
		t.Errorf("tags holds %d documents, want 0", n)
	}
	for _, a := range find(t, s, "articles") {
		if tags := a["tags"].([]any); len(tags) != 0 {
			t.Errorf("article %s kept tag references: %v", a.String("slug"), tags)
		}
	}
}

func unitsNamed(t *testing.T, reg *pipeline.Registry, names ...string) []pipeline.Seeder {
	t.Helper()

	out := make([]pipeline.Seeder, 0, len(names))
	for _, n := range names {
		u, ok := reg.Unit(n)
		if !ok {
			t.Fatalf("unit %q not registered", n)
		}
		out = append(out, u)
	}
	return out
}
