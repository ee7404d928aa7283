package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cobra893021/kajicon-go/internal/domain"
	"github.com/cobra893021/kajicon-go/internal/ports"
	"github.com/cobra893021/kajicon-go/internal/prompt"
	"github.com/cobra893021/kajicon-go/internal/report"
)

// DiagnoseRequest is the application-level input (no HTTP types).
type DiagnoseRequest struct {
	BirthDate string
	Gender    string
}

// DiagnoseResponse is the application-level output.
type DiagnoseResponse struct {
	Archetype domain.Archetype
	Gender    domain.Gender
	Report    domain.DiagnosisReport
	Model     string
	LatencyMS int64
}

// DiagnosisService runs one request through the full pipeline: date
// validation, archetype resolution, trait lookup, quota acquisition, prompt
// build, dispatch and response validation. Steps are strictly sequential and
// the first failure halts the pipeline.
type DiagnosisService struct {
	tables    ports.TableStore
	limiter   ports.Limiter
	generator ports.Generator
	model     string
}

func NewDiagnosisService(ts ports.TableStore, lim ports.Limiter, gen ports.Generator, model string) *DiagnosisService {
	return &DiagnosisService{
		tables:    ts,
		limiter:   lim,
		generator: gen,
		model:     model,
	}
}

func (s *DiagnosisService) Diagnose(ctx context.Context, req DiagnoseRequest) (DiagnoseResponse, error) {
	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		return DiagnoseResponse{}, err
	}
	year, month, day, err := domain.ParseBirthDate(req.BirthDate)
	if err != nil {
		return DiagnoseResponse{}, err
	}

	fate, err := s.tables.FateNumber(ctx, year, month)
	if err != nil {
		return DiagnoseResponse{}, fmt.Errorf("fate number: %w", err)
	}
	base, err := domain.BaseNumber(fate, day)
	if err != nil {
		return DiagnoseResponse{}, fmt.Errorf("base number: %w", err)
	}
	arch, err := s.tables.Archetype(ctx, base)
	if err != nil {
		return DiagnoseResponse{}, fmt.Errorf("archetype: %w", err)
	}
	seed, err := s.tables.Traits(ctx, arch.Group)
	if err != nil {
		return DiagnoseResponse{}, fmt.Errorf("trait seed: %w", err)
	}

	// The slot is consumed here, after all cheap local validation and
	// immediately before the external call. It is never refunded.
	if _, err := s.limiter.TryAcquire(); err != nil {
		return DiagnoseResponse{}, err
	}

	p := prompt.Build(arch.Name, seed, gender)

	start := time.Now()
	raw, err := s.generator.Generate(ctx, p)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return DiagnoseResponse{}, fmt.Errorf("generate: %w", err)
	}

	rep, err := report.Validate(raw, gender)
	if err != nil {
		return DiagnoseResponse{}, fmt.Errorf("validate: %w", err)
	}

	return DiagnoseResponse{
		Archetype: arch,
		Gender:    gender,
		Report:    rep,
		Model:     s.model,
		LatencyMS: latency,
	}, nil
}

// CheckLimit consumes one quota slot without running a diagnosis. It backs
// the legacy front-end contract where the limit check is a separate call.
func (s *DiagnosisService) CheckLimit() (int, error) {
	return s.limiter.TryAcquire()
}

// Chat proxies a caller-supplied prompt to the generative backend verbatim
// and returns the raw model output. It does not touch the daily counter.
func (s *DiagnosisService) Chat(ctx context.Context, promptText string) (string, error) {
	return s.generator.Generate(ctx, promptText)
}
