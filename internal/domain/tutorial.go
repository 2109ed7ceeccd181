package domain

// Tutorial is a free-standing written guide. Topic optionally links it to a
// course chapter.
type Tutorial struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Technology  string   `yaml:"technology"`
	Topic       string   `yaml:"topic"`
	Description string   `yaml:"description"`
	Level       Level    `yaml:"level"`
	Order       int      `yaml:"order"`
	Lessons     []Lesson `yaml:"lessons"`
}

// Lesson is a section of a tutorial.
type Lesson struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Code    string `yaml:"code"`
	Order   int    `yaml:"order"`
}
