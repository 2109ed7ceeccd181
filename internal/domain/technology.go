package domain

// Technology is a language, framework or tool. Category holds the slug of
// the owning category.
type Technology struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Website     string `yaml:"website"`
	Popular     bool   `yaml:"popular"`
	Order       int    `yaml:"order"`
}
