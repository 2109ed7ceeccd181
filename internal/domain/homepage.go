package domain

// SectionKind says which collection a homepage section's items come from.
type SectionKind string

const (
	SectionCourses      SectionKind = "courses"
	SectionRoadmaps     SectionKind = "roadmaps"
	SectionTechnologies SectionKind = "technologies"
)

// HomepageSection is a curated block on the landing page. Items are slugs
// of records of the given Kind, shown in list order.
type HomepageSection struct {
	Key      string      `yaml:"key"`
	Title    string      `yaml:"title"`
	Subtitle string      `yaml:"subtitle"`
	Kind     SectionKind `yaml:"kind"`
	Items    []string    `yaml:"items"`
	Order    int         `yaml:"order"`
	Visible  bool        `yaml:"visible"`
}
