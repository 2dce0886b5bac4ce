package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/pagination"
	"tradelog/internal/services"
)

// MonthHandler handles month record requests.
type MonthHandler struct {
	monthService services.MonthRecordServicer
	auditService services.AuditServicer
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(monthService services.MonthRecordServicer, auditService services.AuditServicer) *MonthHandler {
	return &MonthHandler{monthService: monthService, auditService: auditService}
}

// MonthResponse wraps a single month record.
type MonthResponse struct {
	Month journal.MonthRecord `json:"month"`
}

// CreateMonth handles the creation of a month record
// @Summary     Create a month record
// @Description Record a month's starting and ending capital. Gross change, net P&L and return are derived.
// @Tags        months
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body forms.MonthForm true "Month details"
// @Success     201 {object} MonthResponse "Month created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Month already recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /months [post]
func (h *MonthHandler) CreateMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.MonthForm
	if err := bindJSON(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	in, err := forms.ParseMonthForm(form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := h.monthService.CreateMonth(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_MONTH", "month", month.ID, c.ClientIP(),
		map[string]interface{}{"month": month.Month, "net_profit_loss": month.NetProfitLoss})

	c.JSON(http.StatusCreated, MonthResponse{Month: *month})
}

// GetMonths handles listing month records
// @Summary     List month records
// @Description Paginated month records, newest first
// @Tags        months
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Param       year      query int    false "Only months of this year"
// @Param       status    query string false "active or closed"
// @Success     200 {object} pagination.PageResponse[journal.MonthRecord]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /months [get]
func (h *MonthHandler) GetMonths(c *gin.Context) {
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

	var filter services.MonthFilter
	if v := c.Query("year"); v != "" {
		year, convErr := strconv.Atoi(v)
		if convErr != nil || year < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a positive integer"))
			return
		}
		filter.Year = &year
	}
	if v := c.Query("status"); v != "" {
		s := journal.MonthStatus(v)
		if s != journal.MonthStatusActive && s != journal.MonthStatusClosed {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be 'active' or 'closed'"))
			return
		}
		filter.Status = &s
	}

	result, err := h.monthService.GetUserMonths(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMonthByID handles retrieving one month record
// @Summary     Get month record by ID
// @Tags        months
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Month ID"
// @Success     200 {object} MonthResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Month not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /months/{id} [get]
func (h *MonthHandler) GetMonthByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	monthID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := h.monthService.GetMonthByID(userID, monthID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Month: *month})
}

// UpdateMonth handles replacing a month record
// @Summary     Update a month record
// @Description Replace every field of a month record; derived fields are recomputed
// @Tags        months
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Month ID"
// @Param       request body forms.MonthForm true "Month details"
// @Success     200 {object} MonthResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Month not found"
// @Failure     409 {object} ErrorResponse "Month already recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /months/{id} [put]
func (h *MonthHandler) UpdateMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	monthID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.MonthForm
	if err := bindJSON(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	in, err := forms.ParseMonthForm(form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := h.monthService.UpdateMonth(userID, monthID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_MONTH", "month", month.ID, c.ClientIP(),
		map[string]interface{}{"month": month.Month, "net_profit_loss": month.NetProfitLoss})

	c.JSON(http.StatusOK, MonthResponse{Month: *month})
}

// DeleteMonth handles deleting a month record
// @Summary     Delete a month record
// @Tags        months
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Month ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Month not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /months/{id} [delete]
func (h *MonthHandler) DeleteMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	monthID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.monthService.DeleteMonth(userID, monthID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_MONTH", "month", monthID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Month deleted successfully"})
}
