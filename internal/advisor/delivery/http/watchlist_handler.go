package http

import (
	"net/http"

	"golang-equity-advisor/internal/advisor/repository"
	"golang-equity-advisor/internal/entity"
	"golang-equity-advisor/pkg/logger"
	"golang-equity-advisor/pkg/utils"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	stocksRepo repository.StocksRepository
	logger     *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(stocksRepo repository.StocksRepository, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{stocksRepo: stocksRepo, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/watchlist", h.GetWatchlist)
	g.POST("/watchlist", h.AddStock)
	g.DELETE("/watchlist/:code", h.RemoveStock)
}

// GetWatchlist godoc
// @Summary List watchlist entries
// @Tags watchlist
// @Produce  json
// @Success 200 {array} entity.Stock
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	stocks, err := h.stocksRepo.GetActiveStocks(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list watchlist", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list watchlist"})
	}
	return c.JSON(http.StatusOK, stocks)
}

// AddStock godoc
// @Summary Add a stock to the watchlist
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   stock  body    entity.Stock   true    "Stock to watch"
// @Success 201 {object} entity.Stock
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [post]
func (h *WatchlistHandler) AddStock(c echo.Context) error {
	var stock entity.Stock
	if err := c.Bind(&stock); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	code, err := utils.NormalizeTicker(stock.Code)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	stock.Code = code
	stock.IsActive = true

	if err := h.stocksRepo.Create(c.Request().Context(), &stock); err != nil {
		h.logger.Error("Failed to add stock to watchlist", logger.ErrorField(err), logger.StringField("code", stock.Code))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add stock"})
	}
	return c.JSON(http.StatusCreated, stock)
}

// RemoveStock godoc
// @Summary Remove a stock from the watchlist
// @Tags watchlist
// @Produce  json
// @Param   code  path    string  true    "Ticker code"
// @Success 204 {object} nil
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist/{code} [delete]
func (h *WatchlistHandler) RemoveStock(c echo.Context) error {
	if err := h.stocksRepo.DeleteByCode(c.Request().Context(), c.Param("code")); err != nil {
		h.logger.Error("Failed to remove stock from watchlist", logger.ErrorField(err), logger.StringField("code", c.Param("code")))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to remove stock"})
	}
	return c.NoContent(http.StatusNoContent)
}
