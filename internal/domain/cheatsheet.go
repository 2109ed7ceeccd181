package domain

// Cheatsheet is a quick reference for one technology.
type Cheatsheet struct {
	Title       string              `yaml:"title"`
	Slug        string              `yaml:"slug"`
	Technology  string              `yaml:"technology"`
	Description string              `yaml:"description"`
	Sections    []CheatsheetSection `yaml:"sections"`
}

type CheatsheetSection struct {
	Title string           `yaml:"title"`
	Order int              `yaml:"order"`
	Items []CheatsheetItem `yaml:"items"`
}

type CheatsheetItem struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}
