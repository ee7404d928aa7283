// Package report parses and validates the raw model output against the
// diagnosis schema. Prompt instructions are a request, not a guarantee, so
// every invariant the prompt asks for is re-enforced here.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cobra893021/kajicon-go/internal/domain"
)

// Validate turns rawText into a DiagnosisReport or fails with
// domain.ErrInvalidReport. The opposite-gender fields are blanked
// defensively; a missing requested-gender analysis rejects the whole report,
// since partial reports are never returned.
func Validate(rawText string, gender domain.Gender) (domain.DiagnosisReport, error) {
	payload := stripFences(strings.TrimSpace(rawText))

	var rep domain.DiagnosisReport
	if err := json.Unmarshal([]byte(payload), &rep); err != nil {
		// JSON response mode was requested, but extract the first balanced
		// object anyway in case the model wrapped it in prose.
		extracted, ok := extractObject(payload)
		if !ok {
			return domain.DiagnosisReport{}, fmt.Errorf("%w: %v", domain.ErrInvalidReport, err)
		}
		if err := json.Unmarshal([]byte(extracted), &rep); err != nil {
			return domain.DiagnosisReport{}, fmt.Errorf("%w: %v", domain.ErrInvalidReport, err)
		}
	}

	if strings.TrimSpace(rep.BasicPersonality) == "" {
		return domain.DiagnosisReport{}, fmt.Errorf("%w: basicPersonality is empty", domain.ErrInvalidReport)
	}

	switch gender {
	case domain.Female:
		if strings.TrimSpace(rep.FemaleTraits) == "" {
			return domain.DiagnosisReport{}, fmt.Errorf("%w: femaleTraits is empty for a female request", domain.ErrInvalidReport)
		}
		rep.MaleTraits = ""
		rep.Psychegram.Male = ""
	case domain.Male:
		if strings.TrimSpace(rep.MaleTraits) == "" {
			return domain.DiagnosisReport{}, fmt.Errorf("%w: maleTraits is empty for a male request", domain.ErrInvalidReport)
		}
		rep.FemaleTraits = ""
		rep.Psychegram.Female = ""
	}

	return rep, nil
}

// stripFences removes a markdown code-fence wrapper if present, including a
// language tag on the opening fence.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractObject returns the first balanced top-level JSON object in s,
// tracking string literals so braces inside values don't confuse the depth
// count.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
