package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/advisor-cli/internal/model"
)

// answersFile accepts either a top-level "answers" map or a flat map of
// question ID to value. JSON files parse as YAML.
type answersFile struct {
	UserID  string          `yaml:"user_id"`
	Answers model.AnswerSet `yaml:"answers"`
}

// loadAnswers reads answers from path (if set) and applies id=value overrides.
func loadAnswers(path string, overrides []string) (model.AnswerSet, string, error) {
	answers := model.AnswerSet{}
	var userID string

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", eris.Wrapf(err, "read answers file %s", path)
		}
		a, u, err := parseAnswers(data)
		if err != nil {
			return nil, "", eris.Wrapf(err, "parse answers file %s", path)
		}
		answers, userID = a, u
	}

	for _, kv := range overrides {
		id, val, ok := strings.Cut(kv, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, "", eris.Errorf("invalid --answer %q: want question_id=value", kv)
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, "", eris.Errorf("invalid --answer %q: value must be an integer", kv)
		}
		answers[id] = n
	}
	return answers, userID, nil
}

// parseAnswers reads the structured form when the document has an "answers"
// key, and the flat form otherwise.
func parseAnswers(data []byte) (model.AnswerSet, string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", err
	}
	if _, ok := doc["answers"]; ok {
		var f answersFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, "", eris.Wrap(err, "answers block")
		}
		if len(f.Answers) == 0 {
			return nil, "", eris.New("answers block is empty")
		}
		return f.Answers, f.UserID, nil
	}
	var flat map[string]int
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, "", err
	}
	if flat == nil {
		flat = map[string]int{}
	}
	return model.AnswerSet(flat), "", nil
}

// promptAnswers asks each question on out and reads the chosen value from in,
// re-asking until the value is one of the question's options.
func promptAnswers(in io.Reader, out io.Writer, questions []model.Question) (model.AnswerSet, error) {
	sc := bufio.NewScanner(in)
	answers := model.AnswerSet{}

	for i, q := range questions {
		_, _ = fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Text)
		for _, o := range q.Options {
			_, _ = fmt.Fprintf(out, "   %d) %s\n", o.Value, o.Text)
		}
		for {
			_, _ = fmt.Fprint(out, "Your answer: ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, eris.Wrap(err, "read answer")
				}
				return nil, eris.Errorf("input ended before question %q was answered", q.ID)
			}
			v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
			if err == nil && q.Accepts(v) {
				answers[q.ID] = v
				break
			}
			_, _ = fmt.Fprintln(out, "Please enter one of the listed option numbers.")
		}
	}
	return answers, nil
}
