package report

import (
	"context"
	"log/slog"
	"net/http"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=reportService --structname=ReportService --output=../mocks --outpkg=mocks
type reportService interface {
	Get(ctx context.Context) (*api.ReportsResponse, error)
}

type ReportHandler struct {
	log     *slog.Logger
	service reportService
}

func NewReportHandler(log *slog.Logger, s reportService) *ReportHandler {
	return &ReportHandler{
		log:     log,
		service: s,
	}
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.Get(ctx)
	if err != nil {
		log.Error("failed to build reports", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
