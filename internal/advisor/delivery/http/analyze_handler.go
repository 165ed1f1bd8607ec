package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/internal/advisor/repository"
	"golang-equity-advisor/internal/advisor/service"
	"golang-equity-advisor/pkg/logger"
	"golang-equity-advisor/pkg/utils"

	"github.com/labstack/echo/v4"
)

// AnalyzeHandler handles HTTP requests for ticker analysis.
type AnalyzeHandler struct {
	analyzerService service.AnalyzerService
	batchService    service.BatchService
	decisionRepo    repository.DecisionRepository
	logger          *logger.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzerService service.AnalyzerService, batchService service.BatchService, decisionRepo repository.DecisionRepository, logger *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzerService: analyzerService,
		batchService:    batchService,
		decisionRepo:    decisionRepo,
		logger:          logger,
	}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalyzeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analyze", h.Analyze)
	g.POST("/analyze/batch", h.AnalyzeBatch)
	g.GET("/decisions", h.GetDecisions)
}

// Analyze godoc
// @Summary Analyze a single ticker
// @Description Run the full advisory pipeline for one ticker and return the reconciled decision
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeRequest   true    "Ticker to analyze"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Ticker == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticker is required"})
	}

	record, err := h.analyzerService.Analyze(c.Request().Context(), req.Ticker, req.Sector)
	if err != nil {
		if errors.Is(err, service.ErrMalformedTicker) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to analyze ticker", logger.ErrorField(err), logger.StringField("ticker", req.Ticker))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, service.DecisionToResponse(record))
}

// AnalyzeBatch godoc
// @Summary Analyze a batch of tickers
// @Description Run the advisory pipeline over many tickers with bounded concurrency
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.BatchAnalyzeRequest   true    "Tickers to analyze"
// @Success 200 {object} dto.BatchAnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /analyze/batch [post]
func (h *AnalyzeHandler) AnalyzeBatch(c echo.Context) error {
	var req dto.BatchAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if len(req.Tickers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tickers is required"})
	}

	results := h.batchService.AnalyzeMany(c.Request().Context(), req.Tickers, req.Sector, req.MaxConcurrency)
	return c.JSON(http.StatusOK, dto.BatchAnalyzeResponse{Results: results})
}

// GetDecisions godoc
// @Summary List recent decisions
// @Description List recently persisted decisions, optionally filtered by ticker
// @Tags analysis
// @Produce  json
// @Param   ticker  query   string  false   "Filter by ticker"
// @Param   limit   query   int     false   "Max rows to return"
// @Success 200 {array} dto.AnalyzeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /decisions [get]
func (h *AnalyzeHandler) GetDecisions(c echo.Context) error {
	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
		}
		limit = parsed
	}

	ctx := c.Request().Context()
	ticker := c.QueryParam("ticker")
	if ticker != "" {
		// Decisions are persisted under the normalized symbol; match the
		// filter the same way. An unparseable filter just matches nothing.
		if normalized, err := utils.NormalizeTicker(ticker); err == nil {
			ticker = normalized
		}
	}

	var err error
	var decisions []dto.AnalyzeResponse
	if ticker != "" {
		records, findErr := h.decisionRepo.FindByTicker(ctx, ticker, limit)
		err = findErr
		for i := range records {
			decisions = append(decisions, *service.DecisionToResponse(&records[i]))
		}
	} else {
		records, findErr := h.decisionRepo.FindRecent(ctx, limit)
		err = findErr
		for i := range records {
			decisions = append(decisions, *service.DecisionToResponse(&records[i]))
		}
	}
	if err != nil {
		h.logger.Error("Failed to list decisions", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list decisions"})
	}

	return c.JSON(http.StatusOK, decisions)
}
