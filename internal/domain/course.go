package domain

// Level is the difficulty of a course, tutorial, roadmap or question.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Course is a structured, multi-topic learning path on one technology.
type Course struct {
	Title         string   `yaml:"title"`
	Slug          string   `yaml:"slug"`
	Category      string   `yaml:"category"`
	Technology    string   `yaml:"technology"`
	Description   string   `yaml:"description"`
	Instructor    string   `yaml:"instructor"`
	Level         Level    `yaml:"level"`
	DurationHours float64  `yaml:"durationHours"`
	Price         float64  `yaml:"price"`
	Published     bool     `yaml:"published"`
	Prerequisites []string `yaml:"prerequisites"`
}

// Topic is one chapter of a course. Order is its position in the course.
type Topic struct {
	Title            string `yaml:"title"`
	Slug             string `yaml:"slug"`
	Course           string `yaml:"course"`
	Summary          string `yaml:"summary"`
	EstimatedMinutes int    `yaml:"estimatedMinutes"`
	Order            int    `yaml:"order"`
}
