package domain

// Category is a top-level grouping for technologies, courses, roadmaps and
// articles.
type Category struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Order       int    `yaml:"order"`
}

// Tag labels articles.
type Tag struct {
	Name  string `yaml:"name"`
	Slug  string `yaml:"slug"`
	Color string `yaml:"color"`
}
