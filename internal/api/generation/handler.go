package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/legiit/coldmail-backend/internal/entity"
	"github.com/legiit/coldmail-backend/internal/pkg/formatter"
	"github.com/legiit/coldmail-backend/internal/pkg/logger"
	"github.com/legiit/coldmail-backend/internal/pkg/response"
)

type Handler struct {
	usecase GenerationUsecase
}

func NewHandler(usecase GenerationUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// GenerateEmails handles POST /api/emails/generate
func (h *Handler) GenerateEmails(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateEmails")

	var req entity.GenerateEmailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	niche := strings.TrimSpace(req.Niche)
	product := strings.TrimSpace(req.Product)
	if niche == "" || product == "" {
		ctxzap.Warn(ctx, "missing required fields",
			zap.String("niche", niche),
			zap.String("product", product),
		)
		response.Error(w, http.StatusBadRequest, "Missing required fields: niche and product")
		return
	}

	ctxzap.Info(ctx, "generating emails",
		zap.String("niche", niche),
		zap.String("product", product),
	)

	result, err := h.usecase.GenerateEmails(ctx, &entity.GenerationRequest{
		Niche:   niche,
		Product: product,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("X-Generation-Id", result.ID)
	response.Success(w, toGenerateResponse(result))
}

// ExportEmails handles POST /api/emails/export
func (h *Handler) ExportEmails(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportEmails")

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatText)
	}

	format := entity.ExportFormat(formatParam)
	if !format.IsValid() {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		response.Error(w, http.StatusBadRequest, "format must be one of: txt, markdown, pdf, docx")
		return
	}

	var req entity.ExportEmailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Emails) == 0 {
		response.Error(w, http.StatusBadRequest, entity.ErrNoEmails.Error())
		return
	}

	factory := formatter.NewFactory()
	fmtr, err := factory.Create(format)
	if err != nil {
		ctxzap.Error(ctx, "format not implemented", zap.Error(err))
		response.Error(w, http.StatusNotImplemented, "format not implemented")
		return
	}

	data, err := fmtr.Format(req.Niche, fromExportDTOs(req.Emails))
	if err != nil {
		ctxzap.Error(ctx, "failed to format emails", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to format emails")
		return
	}

	ctxzap.Info(ctx, "emails exported",
		zap.String("format", string(format)),
		zap.Int("email_count", len(req.Emails)),
	)

	w.Header().Set("Content-Type", fmtr.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename(req.Niche, fmtr.FileExtension())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// exportFilename derives a deterministic download name from the niche,
// matching the original client-side convention.
func exportFilename(niche, ext string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(niche), "-"))
	if slug == "" {
		slug = "drafts"
	}
	return fmt.Sprintf("legiit-cold-emails-%s%s", slug, ext)
}

// handleUsecaseError converts pipeline failures into the uniform error
// payload. Everything past input validation is a server-side failure;
// credential details never leak to the caller.
func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var vendorErr *entity.VendorError
	var transportErr *entity.TransportError
	var extractionErr *entity.ExtractionError
	var validationErr *entity.ValidationError

	switch {
	case errors.Is(err, entity.ErrAPIKeyMissing):
		ctxzap.Error(ctx, "API key not configured")
		response.Error(w, http.StatusInternalServerError, "API key not configured")
	case errors.As(err, &vendorErr):
		ctxzap.Error(ctx, "vendor call failed",
			zap.Int("vendor_status", vendorErr.StatusCode),
			zap.String("vendor_body", vendorErr.Body),
		)
		response.Error(w, http.StatusInternalServerError, fmt.Sprintf("API request failed: %d", vendorErr.StatusCode))
	case errors.As(err, &transportErr):
		ctxzap.Error(ctx, "vendor unreachable", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to reach AI provider")
	case errors.As(err, &extractionErr), errors.As(err, &validationErr):
		ctxzap.Error(ctx, "AI response unusable", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, fmt.Sprintf("Failed to parse AI response: %v", err))
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
