package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/pagination"
	"tradelog/internal/services"
)

// TradeHandler handles trade requests.
type TradeHandler struct {
	tradeService services.TradeServicer
	auditService services.AuditServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService services.TradeServicer, auditService services.AuditServicer) *TradeHandler {
	return &TradeHandler{tradeService: tradeService, auditService: auditService}
}

// TradeResponse wraps a single trade.
type TradeResponse struct {
	Trade journal.TradeRecord `json:"trade"`
}

func tradeAuditChanges(t *journal.TradeRecord) map[string]interface{} {
	changes := map[string]interface{}{"symbol": t.Symbol, "status": t.Status}
	if t.PnL != nil {
		changes["pnl"] = *t.PnL
	}
	return changes
}

// CreateTrade handles the creation of a trade
// @Summary     Create a trade
// @Description Record an open or closed trade. P&L is derived for closed trades.
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body forms.TradeForm true "Trade details"
// @Success     201 {object} TradeResponse "Trade created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades [post]
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.TradeForm
	if err := bindJSON(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	in, err := forms.ParseTradeForm(form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.CreateTrade(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRADE", "trade", trade.ID, c.ClientIP(), tradeAuditChanges(trade))

	c.JSON(http.StatusCreated, TradeResponse{Trade: *trade})
}

// GetTrades handles listing trades
// @Summary     List trades
// @Description Paginated trades, most recent entry first
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Param       status    query string false "open or closed"
// @Param       symbol    query string false "Symbol"
// @Param       month     query string false "Month key (YYYY-MM) the trade counts toward"
// @Param       tag       query string false "Tag"
// @Param       from_date query string false "Entry on or after (YYYY-MM-DD or RFC3339)"
// @Param       to_date   query string false "Entry on or before (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} pagination.PageResponse[journal.TradeRecord]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades [get]
func (h *TradeHandler) GetTrades(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TradeFilter{
		Symbol: c.Query("symbol"),
		Tag:    c.Query("tag"),
	}
	if v := c.Query("status"); v != "" {
		s := journal.TradeStatus(v)
		if s != journal.TradeStatusOpen && s != journal.TradeStatusClosed {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be 'open' or 'closed'"))
			return
		}
		filter.Status = &s
	}
	if v := c.Query("month"); v != "" {
		if _, ok := journal.ParseMonthKey(v); !ok {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format"))
			return
		}
		filter.MonthKey = v
	}
	if v := c.Query("from_date"); v != "" {
		from, parseErr := forms.ParseFlexibleTime(v)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		filter.FromDate = &from
	}
	if v := c.Query("to_date"); v != "" {
		to, parseErr := forms.ParseFlexibleTime(v)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		filter.ToDate = &to
	}

	result, err := h.tradeService.GetUserTrades(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTradeByID handles retrieving one trade
// @Summary     Get trade by ID
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trade ID"
// @Success     200 {object} TradeResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades/{id} [get]
func (h *TradeHandler) GetTradeByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tradeID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.GetTradeByID(userID, tradeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TradeResponse{Trade: *trade})
}

// UpdateTrade handles replacing a trade
// @Summary     Update a trade
// @Description Replace every field of a trade. Send status "closed" with exit data to close it.
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Trade ID"
// @Param       request body forms.TradeForm true "Trade details"
// @Success     200 {object} TradeResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades/{id} [put]
func (h *TradeHandler) UpdateTrade(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tradeID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.TradeForm
	if err := bindJSON(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	in, err := forms.ParseTradeForm(form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.UpdateTrade(userID, tradeID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRADE", "trade", trade.ID, c.ClientIP(), tradeAuditChanges(trade))

	c.JSON(http.StatusOK, TradeResponse{Trade: *trade})
}

// DeleteTrade handles deleting a trade
// @Summary     Delete a trade
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trade ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades/{id} [delete]
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tradeID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tradeService.DeleteTrade(userID, tradeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRADE", "trade", tradeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Trade deleted successfully"})
}
