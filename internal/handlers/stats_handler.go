package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/journal"
	"tradelog/internal/services"
)

// StatsHandler serves computed statistics.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// OverallStatsResponse wraps month-only statistics.
type OverallStatsResponse struct {
	Stats journal.OverallStats `json:"stats"`
}

// CombinedStatsResponse wraps month and trade statistics.
type CombinedStatsResponse struct {
	Stats journal.CombinedStats `json:"stats"`
}

// TradeStatsResponse wraps trade statistics.
type TradeStatsResponse struct {
	Stats journal.TradeStats `json:"stats"`
}

// GetOverallStats returns statistics over manual month records
// @Summary     Overall month statistics
// @Description Totals, win rate, average return, profit factor ("∞" when there are no losing months) and best/worst month
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} OverallStatsResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/overall [get]
func (h *StatsHandler) GetOverallStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.GetOverallStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, OverallStatsResponse{Stats: *stats})
}

// GetCombinedStats returns statistics where trades decide the P&L of the months they cover
// @Summary     Combined month and trade statistics
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CombinedStatsResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/combined [get]
func (h *StatsHandler) GetCombinedStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.GetCombinedStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CombinedStatsResponse{Stats: *stats})
}

// GetTradeStats returns statistics over closed trades
// @Summary     Trade statistics
// @Description Counts, totals, averages, profit factor, best/worst trade and streaks
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TradeStatsResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/trades [get]
func (h *StatsHandler) GetTradeStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.GetTradeStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TradeStatsResponse{Stats: *stats})
}

// GetYearlyStats returns month statistics per year
// @Summary     Yearly statistics
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]journal.YearSummary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/yearly [get]
func (h *StatsHandler) GetYearlyStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	years, err := h.statsService.GetYearlyStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": years})
}

// GetCalendar returns realized P&L per day of one month
// @Summary     Calendar P&L
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month key (YYYY-MM)"
// @Success     200 {object} map[string][]journal.DayPnL
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/calendar [get]
func (h *StatsHandler) GetCalendar(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	days, err := h.statsService.GetCalendar(userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetEquityCurve returns cumulative month P&L
// @Summary     Equity curve
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]journal.EquityPoint
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/equity [get]
func (h *StatsHandler) GetEquityCurve(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.statsService.GetEquityCurve(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GetSymbolBreakdown returns closed-trade results per symbol
// @Summary     Per-symbol breakdown
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]journal.SymbolStats
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/symbols [get]
func (h *StatsHandler) GetSymbolBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbols, err := h.statsService.GetSymbolBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"symbols": symbols})
}
