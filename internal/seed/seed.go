// Package seed defines the standard seed units of the e-learning content
// store and the datasets they insert.
package seed

import (
	"embed"
	"io/fs"

	"github.com/johnwards/learnseed/internal/pipeline"
)

// Data contains the default datasets, one YAML file per unit.
//
//go:embed data/*.yaml
var Data embed.FS

// DefaultData returns the embedded datasets rooted at the data directory.
func DefaultData() fs.FS {
	sub, err := fs.Sub(Data, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Units returns the standard units reading their datasets from fsys. The
// order is the historical hand-written seeding order and serves as the
// tie-break when dependencies do not decide.
func Units(fsys fs.FS) []pipeline.Seeder {
	if fsys == nil {
		fsys = DefaultData()
	}
	return []pipeline.Seeder{
		Categories(fsys),
		Technologies(fsys),
		Courses(fsys),
		Topics(fsys),
		Tutorials(fsys),
		Roadmaps(fsys),
		Cheatsheets(fsys),
		MCQs(fsys),
		Tags(fsys),
		Articles(fsys),
		Comments(fsys),
		Homepage(fsys),
	}
}

// NewRegistry validates the standard units and returns their registry.
func NewRegistry(fsys fs.FS) (*pipeline.Registry, error) {
	return pipeline.NewRegistry(Units(fsys)...)
}
