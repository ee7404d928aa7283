package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cobra893021/kajicon-go/internal/app"
	"github.com/cobra893021/kajicon-go/internal/domain"
)

type Handler struct {
	svc *app.DiagnosisService
}

func NewHandler(svc *app.DiagnosisService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/api/diagnosis", h.Diagnose)
	e.POST("/api/check-limit", h.CheckLimit)
	e.POST("/api/chat", h.Chat)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Diagnose(c echo.Context) error {
	var req DiagnosisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	resp, err := h.svc.Diagnose(c.Request().Context(), app.DiagnoseRequest{
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(resp, requestID))
}

// CheckLimit consumes one quota slot. The response shapes are part of the
// legacy front-end contract and must not change.
func (h *Handler) CheckLimit(c echo.Context) error {
	count, err := h.svc.CheckLimit()
	if err != nil {
		if errors.Is(err, domain.ErrDailyLimitReached) {
			return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Daily limit reached"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	slog.Info("diagnosis slot accepted",
		"request_id", c.Get("request_id"),
		"count", count,
	)
	return c.JSON(http.StatusOK, CheckLimitResponse{Success: true, Count: count})
}

// Chat forwards a raw prompt to the model and returns the unparsed output.
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "prompt is required"})
	}

	text, err := h.svc.Chat(c.Request().Context(), req.Prompt)
	if err != nil {
		requestID, _ := c.Get("request_id").(string)
		slog.Error("chat dispatch failed", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "AIの呼び出しに失敗しました"})
	}

	return c.JSON(http.StatusOK, ChatResponse{Text: text})
}

func toResponse(r app.DiagnoseResponse, requestID string) DiagnosisResponse {
	return DiagnosisResponse{
		Number: r.Archetype.Base,
		Name:   r.Archetype.Name,
		Group:  r.Archetype.Group,
		Gender: string(r.Gender),
		Report: ReportResp{
			Title:            r.Report.Title,
			BasicPersonality: r.Report.BasicPersonality,
			LifeTrend:        r.Report.LifeTrend,
			FemaleTraits:     r.Report.FemaleTraits,
			MaleTraits:       r.Report.MaleTraits,
			Work:             r.Report.Work,
			Psychegram: PsychegramResp{
				Features:      r.Report.Psychegram.Features,
				Interpersonal: r.Report.Psychegram.Interpersonal,
				Action:        r.Report.Psychegram.Action,
				Expression:    r.Report.Psychegram.Expression,
				Talent:        r.Report.Psychegram.Talent,
				Male:          r.Report.Psychegram.Male,
				Female:        r.Report.Psychegram.Female,
			},
		},
		Meta: MetaResp{
			Model:     r.Model,
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
	}
}

// mapError collapses the error taxonomy into the caller-visible outcomes.
// Upstream and validation failures share one generic message; their causes
// are logged server-side only and must never reach the client.
func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidDateFormat), errors.Is(err, domain.ErrInvalidGender):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrYearOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year outside the supported range"})
	case errors.Is(err, domain.ErrDailyLimitReached):
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Daily limit reached"})
	case errors.Is(err, domain.ErrUpstreamLLM), errors.Is(err, domain.ErrMissingCredential):
		slog.Error("upstream LLM failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "diagnosis generation failed"})
	case errors.Is(err, domain.ErrInvalidReport):
		slog.Error("report validation failed", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "diagnosis generation failed"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
