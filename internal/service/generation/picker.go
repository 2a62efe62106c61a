package generation

import "math/rand/v2"

// Picker chooses one of several options. Tests inject a fixed picker.
type Picker interface {
	Pick(options []string) string
}

// RandomPicker picks uniformly at random.
type RandomPicker struct{}

// Pick implements Picker. It returns "" for an empty slice.
func (RandomPicker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.IntN(len(options))]
}

// Word categories and fact topics the prompts rotate through.
var (
	WordCategories = []string{"academic", "business", "technology", "science", "literature", "law", "philosophy"}
	FactTopics     = []string{"science", "history", "technology", "nature", "space", "languages", "culture"}
)
