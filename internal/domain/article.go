package domain

import "time"

// Article is a blog post. Category and Tags are slugs.
type Article struct {
	Title       string    `yaml:"title"`
	Slug        string    `yaml:"slug"`
	Category    string    `yaml:"category"`
	Tags        []string  `yaml:"tags"`
	Author      string    `yaml:"author"`
	Excerpt     string    `yaml:"excerpt"`
	Content     string    `yaml:"content"`
	ReadMinutes int       `yaml:"readMinutes"`
	Featured    bool      `yaml:"featured"`
	PublishedAt time.Time `yaml:"publishedAt"`
}

// Comment is a reader comment on an article, referenced by slug.
type Comment struct {
	Article   string    `yaml:"article"`
	Author    string    `yaml:"author"`
	Body      string    `yaml:"body"`
	Approved  bool      `yaml:"approved"`
	CreatedAt time.Time `yaml:"createdAt"`
}
