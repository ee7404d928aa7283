package domain

// Gender selects which trait field of a report must be populated. The
// opposite field is always forced to the empty string.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender validates the caller-supplied gender flag.
func ParseGender(raw string) (Gender, error) {
	switch Gender(raw) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	default:
		return "", ErrInvalidGender
	}
}

// Archetype is one of the 60 named classifications a birth date maps to.
type Archetype struct {
	Base  int    `json:"base"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// Psychegram holds the five structural sub-traits plus the gender-specific
// psychology fields added in the v2 schema.
type Psychegram struct {
	Features      string `json:"features"`
	Interpersonal string `json:"interpersonal"`
	Action        string `json:"action"`
	Expression    string `json:"expression"`
	Talent        string `json:"talent"`
	Male          string `json:"male,omitempty"`
	Female        string `json:"female,omitempty"`
}

// GroupTraitSeed is the pre-authored raw diagnostic material for a group
// code. It is fed verbatim into the prompt as grounding context.
type GroupTraitSeed struct {
	BasicPersonality string     `json:"basicPersonality"`
	LifeTrend        string     `json:"lifeTrend"`
	FemaleTraits     string     `json:"femaleTraits"`
	MaleTraits       string     `json:"maleTraits"`
	Work             string     `json:"work"`
	Psychegram       Psychegram `json:"psychegram"`
}

// DiagnosisReport is the validated structured output of the AI step.
// Exactly one of FemaleTraits/MaleTraits is non-empty, matching the
// requested gender.
type DiagnosisReport struct {
	Title            string     `json:"title"`
	BasicPersonality string     `json:"basicPersonality"`
	LifeTrend        string     `json:"lifeTrend"`
	FemaleTraits     string     `json:"femaleTraits"`
	MaleTraits       string     `json:"maleTraits"`
	Work             string     `json:"work"`
	Psychegram       Psychegram `json:"psychegram"`
}
