// Package submission turns the "submit a VC" form into a JSON record for manual hand-off.
package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/umputun/vcaggregate/pkg/domain"
)

//go:generate moq -out mocks/clipboard.go -pkg mocks -skip-ensure -fmt goimports . Clipboard

// Clipboard accepts text to place on the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// ValidationError lists required form fields that were left empty
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Has reports whether field is among the missing ones
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Result is a collected submission
type Result struct {
	Submission domain.Submission
	JSON       string
	Copied     bool // false if the clipboard write failed or is disabled
}

// Collector validates submissions and copies their JSON to the clipboard
type Collector struct {
	clipboard Clipboard
}

// NewCollector makes a collector. A nil clipboard disables copying.
func NewCollector(clipboard Clipboard) *Collector {
	return &Collector{clipboard: clipboard}
}

// Collect validates the form and serializes it to indented JSON, then tries to copy the JSON
// to the clipboard. A clipboard failure is logged and only reflected in Result.Copied.
func (c *Collector) Collect(form domain.SubmissionForm) (*Result, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}

	sub := Parse(form)
	text, err := Marshal(sub)
	if err != nil {
		return nil, err
	}

	res := &Result{Submission: sub, JSON: text}
	if c.clipboard == nil {
		return res, nil
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		log.Printf("[WARN] can't copy submission %q to clipboard: %v", sub.Name, err)
		return res, nil
	}
	res.Copied = true
	log.Printf("[INFO] submission %q copied to clipboard", sub.Name)
	return res, nil
}

// Validate checks required fields. Ticket is optional, facet fields need at least one tag.
func Validate(form domain.SubmissionForm) error {
	var missing []string
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	if blank(form.Name) {
		missing = append(missing, "name")
	}
	if blank(form.Website) {
		missing = append(missing, "website")
	}
	if blank(form.HQ) {
		missing = append(missing, "hq")
	}
	if len(ParseTags(form.Regions)) == 0 {
		missing = append(missing, "regions")
	}
	if len(ParseTags(form.Stages)) == 0 {
		missing = append(missing, "stages")
	}
	if len(ParseTags(form.Sectors)) == 0 {
		missing = append(missing, "sectors")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Parse converts the form into a submission. Scalar fields are kept as entered.
func Parse(form domain.SubmissionForm) domain.Submission {
	return domain.Submission{
		Name:    form.Name,
		Website: form.Website,
		HQ:      form.HQ,
		Regions: ParseTags(form.Regions),
		Stages:  ParseTags(form.Stages),
		Sectors: ParseTags(form.Sectors),
		Ticket:  form.Ticket,
	}
}

// ParseTags splits comma-separated text into trimmed, non-empty tags.
// Order and duplicates are kept; the result is never nil.
func ParseTags(s string) []string {
	res := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

// Marshal renders the submission as JSON indented by two spaces, without HTML escaping
func Marshal(sub domain.Submission) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sub); err != nil {
		return "", fmt.Errorf("encode submission: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
