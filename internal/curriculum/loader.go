// Package curriculum holds the static lesson content: weeks, sections,
// activity steps and per-week quizzes, loaded from YAML files.
package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var contentFS embed.FS

// stepsSchema validates the serialized activity-step payload embedded in
// activity sections before it is decoded.
const stepsSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["step", "title", "desc"],
    "properties": {
      "step": {"type": "integer", "minimum": 1},
      "title": {"type": "string", "minLength": 1},
      "desc": {"type": "string", "minLength": 1}
    },
    "additionalProperties": false
  }
}`

// Store is the read-only curriculum store. Immutable after Load.
type Store struct {
	weeks []Week
}

// Default loads the curriculum content shipped with the binary.
func Default() (*Store, error) {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads all week YAML files from fsys and validates them.
func Load(fsys fs.FS) (*Store, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(stepsSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling steps schema: %w", err)
	}

	var weeks []Week
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		var w Week
		if err := yaml.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if w.Number == 0 {
			slog.Warn("skipping YAML without a week number", "path", path)
			return nil
		}
		if err := validateWeek(&w, schema); err != nil {
			return fmt.Errorf("week %d (%s): %w", w.Number, path, err)
		}
		weeks = append(weeks, w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading curriculum: %w", err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("no curriculum weeks found")
	}

	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Number < weeks[j].Number })
	for i, w := range weeks {
		if w.Number != i+1 {
			return nil, fmt.Errorf("week numbers must be contiguous from 1, got %d at position %d", w.Number, i+1)
		}
	}

	slog.Info("curriculum loaded", "weeks", len(weeks))
	return &Store{weeks: weeks}, nil
}

// validateWeek decodes activity payloads and checks the per-week invariants.
func validateWeek(w *Week, schema *gojsonschema.Schema) error {
	if w.Title == "" {
		return fmt.Errorf("missing title")
	}

	for i := range w.Sections {
		s := &w.Sections[i]
		switch s.Kind {
		case SectionText:
		case SectionActivity:
			if err := decodeSteps(s, schema); err != nil {
				return fmt.Errorf("section %q: %w", s.Title, err)
			}
		default:
			return fmt.Errorf("section %q: unknown kind %q", s.Title, s.Kind)
		}
	}

	seen := make(map[int]bool, len(w.Quiz))
	for _, q := range w.Quiz {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
	}
	return nil
}

func decodeSteps(s *Section, schema *gojsonschema.Schema) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(s.Content))
	if err != nil {
		return fmt.Errorf("activity payload is not valid JSON: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("activity payload rejected by schema: %s", result.Errors()[0])
	}

	if err := json.Unmarshal([]byte(s.Content), &s.steps); err != nil {
		return fmt.Errorf("decoding activity steps: %w", err)
	}

	// Duplicate titles within one activity read as the same step.
	titles := make(map[string]bool, len(s.steps))
	for _, st := range s.steps {
		if titles[st.Title] {
			return fmt.Errorf("duplicate step title %q", st.Title)
		}
		titles[st.Title] = true
	}
	return nil
}

func validateQuestion(q Question) error {
	switch q.Kind {
	case MultipleChoice, Scenario:
		if len(q.Options) == 0 {
			return fmt.Errorf("no options")
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("correct_index %d out of range", q.CorrectIndex)
		}
	case ShortAnswer:
		if strings.TrimSpace(q.CorrectText) == "" {
			return fmt.Errorf("missing correct_text")
		}
	case Matching:
		if len(q.Pairs) == 0 {
			return fmt.Errorf("no pairs")
		}
	default:
		return fmt.Errorf("unknown kind %q", q.Kind)
	}

	switch q.Difficulty {
	case Easy, Medium, Hard:
	default:
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}
	return nil
}

// Weeks returns all weeks in order.
func (s *Store) Weeks() []Week {
	return s.weeks
}

// Week returns the week with the given number.
func (s *Store) Week(n int) (Week, bool) {
	if n < 1 || n > len(s.weeks) {
		return Week{}, false
	}
	return s.weeks[n-1], true
}

// Next returns the week following week n, if any.
func (s *Store) Next(n int) (Week, bool) {
	return s.Week(n + 1)
}

// AllQuestions pools every week's quiz in week order, tagging each question
// with its week of origin.
func (s *Store) AllQuestions() []PooledQuestion {
	var pooled []PooledQuestion
	for _, w := range s.weeks {
		for _, q := range w.Quiz {
			pooled = append(pooled, PooledQuestion{Week: w.Number, Question: q})
		}
	}
	return pooled
}
