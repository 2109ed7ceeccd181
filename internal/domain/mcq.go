package domain

// MCQ is a multiple-choice practice question. Answer is the index of the
// correct entry in Options.
type MCQ struct {
	Question    string   `yaml:"question"`
	Technology  string   `yaml:"technology"`
	Topic       string   `yaml:"topic"`
	Options     []string `yaml:"options"`
	Answer      int      `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Difficulty  Level    `yaml:"difficulty"`
}
