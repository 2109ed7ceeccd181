package domain

// Roadmap is an ordered learning plan spanning several technologies.
type Roadmap struct {
	Title          string        `yaml:"title"`
	Slug           string        `yaml:"slug"`
	Category       string        `yaml:"category"`
	Description    string        `yaml:"description"`
	Level          Level         `yaml:"level"`
	EstimatedWeeks int           `yaml:"estimatedWeeks"`
	Steps          []RoadmapStep `yaml:"steps"`
}

// RoadmapStep is one milestone. Technology and Courses are slugs.
type RoadmapStep struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Technology  string   `yaml:"technology"`
	Courses     []string `yaml:"courses"`
	Order       int      `yaml:"order"`
}
