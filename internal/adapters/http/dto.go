package http

// DiagnosisRequest is the JSON body of POST /api/diagnosis.
type DiagnosisRequest struct {
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
}

// DiagnosisResponse is the JSON shape returned by POST /api/diagnosis.
type DiagnosisResponse struct {
	Number int        `json:"number"`
	Name   string     `json:"name"`
	Group  string     `json:"group"`
	Gender string     `json:"gender"`
	Report ReportResp `json:"report"`
	Meta   MetaResp   `json:"meta"`
}

type ReportResp struct {
	Title            string         `json:"title"`
	BasicPersonality string         `json:"basicPersonality"`
	LifeTrend        string         `json:"lifeTrend"`
	FemaleTraits     string         `json:"femaleTraits"`
	MaleTraits       string         `json:"maleTraits"`
	Work             string         `json:"work"`
	Psychegram       PsychegramResp `json:"psychegram"`
}

type PsychegramResp struct {
	Features      string `json:"features"`
	Interpersonal string `json:"interpersonal"`
	Action        string `json:"action"`
	Expression    string `json:"expression"`
	Talent        string `json:"talent"`
	Male          string `json:"male,omitempty"`
	Female        string `json:"female,omitempty"`
}

type MetaResp struct {
	Model     string `json:"model"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// CheckLimitResponse matches the legacy front-end contract exactly.
type CheckLimitResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
