package curriculum

// SectionKind distinguishes plain lesson content from an activity sequence.
type SectionKind string

const (
	SectionText     SectionKind = "text"
	SectionActivity SectionKind = "activity"
)

// QuestionKind is the quiz question type tag.
type QuestionKind string

const (
	MultipleChoice QuestionKind = "multiple-choice"
	Matching       QuestionKind = "matching"
	ShortAnswer    QuestionKind = "short-answer"
	Scenario       QuestionKind = "scenario"
)

// Difficulty rates a quiz question.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Week is one unit of curriculum content, numbered sequentially from 1.
type Week struct {
	Number       int        `yaml:"week"`
	Title        string     `yaml:"title"`
	ShortDesc    string     `yaml:"short_desc"`
	Subtopics    []string   `yaml:"subtopics"`
	Assessment   string     `yaml:"assessment"`
	Introduction string     `yaml:"introduction"`
	Sections     []Section  `yaml:"sections"`
	Takeaways    []string   `yaml:"takeaways"`
	Quiz         []Question `yaml:"quiz"`
}

// Section is a titled block of content within a week. For SectionText the
// content is markdown; for SectionActivity it is a serialized JSON array of
// activity steps, decoded and validated at load time.
type Section struct {
	Title   string      `yaml:"title"`
	Kind    SectionKind `yaml:"kind"`
	Content string      `yaml:"content"`

	steps []ActivityStep
}

// Steps returns the decoded activity steps. Empty for text sections.
func (s Section) Steps() []ActivityStep {
	return s.steps
}

// ActivityStep is one sub-unit of an activity section.
type ActivityStep struct {
	Step  int    `json:"step"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Question is a single quiz question. Only the fields relevant to its Kind
// are consulted; the others stay zero.
type Question struct {
	ID           int          `yaml:"id"`
	Kind         QuestionKind `yaml:"kind"`
	Difficulty   Difficulty   `yaml:"difficulty"`
	Text         string       `yaml:"question"`
	Options      []string     `yaml:"options"`
	CorrectIndex int          `yaml:"correct_index"`
	CorrectText  string       `yaml:"correct_text"`
	Pairs        []Pair       `yaml:"pairs"`
	Explanation  string       `yaml:"explanation"`
}

// Pair is one left/right match in a matching question.
type Pair struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// PooledQuestion is a question carrying its week of origin, used when all
// weeks' quizzes are pooled into one view. Question IDs are only unique
// within a week, so the week number is part of the identity.
type PooledQuestion struct {
	Week int
	Question
}
