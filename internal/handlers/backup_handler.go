package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/services"
)

// BackupHandler exports and restores a user's whole journal.
type BackupHandler struct {
	backupService services.BackupServicer
	auditService  services.AuditServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer, auditService services.AuditServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService, auditService: auditService}
}

// ExportBackup returns every month and trade as one document
// @Summary     Export journal
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Backup
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	backup, err := h.backupService.Export(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, backup)
}

// ReplaceBackup overwrites the journal with a backup document
// @Summary     Restore journal
// @Description Replace all months and trades with the document's contents. Derived fields are recomputed.
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.Backup true "Backup document"
// @Success     200 {object} services.BackupSummary
// @Failure     400 {object} ErrorResponse "Invalid backup"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup [put]
func (h *BackupHandler) ReplaceBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var backup services.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidBackup, err.Error()))
		return
	}

	summary, err := h.backupService.Replace(userID, backup)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REPLACE_JOURNAL", "backup", "", c.ClientIP(),
		map[string]interface{}{"months": summary.Months, "trades": summary.Trades})

	c.JSON(http.StatusOK, summary)
}
