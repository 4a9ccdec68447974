package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// DefaultContent is the content of a plan nobody has chatted about yet.
const DefaultContent = "{}"

// Content is the structured body of a plan.
type Content struct {
	Goals                   []Goal   `json:"goals"`
	SelfAssessmentQuestions []string `json:"self_assessment_questions"`
}

// Goal is one development objective.
type Goal struct {
	Description string   `json:"description"`
	Skills      Skills   `json:"skills"`
	Alignment   string   `json:"alignment"`
	ActionPlan  []string `json:"action_plan"`
	KeyResults  []string `json:"key_results"`
}

// Skills groups what a goal needs to learn.
type Skills struct {
	Hard []string `json:"hard_skills"`
	Soft []string `json:"soft_skills"`
}

// Empty reports whether there is nothing to show.
func (c Content) Empty() bool {
	return len(c.Goals) == 0 && len(c.SelfAssessmentQuestions) == 0
}

// Encode returns the JSON form stored by the API.
func (c Content) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeContent parses raw plan content. Blank input is an empty Content;
// anything other than a JSON object fails with ErrMalformedContent.
func DecodeContent(raw string) (Content, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Content{}, nil
	}
	if !strings.HasPrefix(raw, "{") {
		return Content{}, ErrMalformedContent
	}

	var c Content
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if err := dec.Decode(&c); err != nil {
		return Content{}, errors.Join(ErrMalformedContent, err)
	}
	if dec.More() {
		return Content{}, ErrMalformedContent
	}
	return c, nil
}
