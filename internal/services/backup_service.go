package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/logger"
	"tradelog/internal/models"
	"tradelog/internal/uuid"
)

// backupService exports and restores a user's journal.
type backupService struct {
	db *gorm.DB
}

// NewBackupService creates a new BackupServicer.
func NewBackupService(db *gorm.DB) BackupServicer {
	return &backupService{db: db}
}

// Export returns every month and trade of the user.
func (s *backupService) Export(userID string) (*Backup, error) {
	var monthRows []models.MonthRecord
	if err := s.db.Where("user_id = ?", userID).Order("month ASC").Find(&monthRows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var tradeRows []models.Trade
	if err := s.db.Where("user_id = ?", userID).Order("entry_date ASC, created_at ASC").Find(&tradeRows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &Backup{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC(),
		Months:     models.MonthRecordsToJournal(monthRows),
		Trades:     journal.NewTradeRecords(models.TradesToJournal(tradeRows)),
	}, nil
}

// Replace overwrites both collections with the backup's contents in one
// transaction. Derived fields are recomputed; stored values are ignored.
func (s *backupService) Replace(userID string, backup Backup) (*BackupSummary, error) {
	monthRows, tradeRows, err := buildBackupRows(userID, backup)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.MonthRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Trade{}).Error; err != nil {
			return err
		}
		if len(monthRows) > 0 {
			if err := tx.Create(&monthRows).Error; err != nil {
				return err
			}
		}
		if len(tradeRows) > 0 {
			if err := tx.Create(&tradeRows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Named("backup").Infow("journal restored", "user_id", userID, "months", len(monthRows), "trades", len(tradeRows))
	return &BackupSummary{Months: len(monthRows), Trades: len(tradeRows)}, nil
}

// buildBackupRows checks every record with the same rules the entry forms
// apply and rebuilds the derived fields.
func buildBackupRows(userID string, backup Backup) ([]models.MonthRecord, []models.Trade, error) {
	if backup.Version != BackupVersion {
		return nil, nil, invalidBackup("unsupported version %d", backup.Version)
	}

	now := time.Now()
	seen := make(map[string]struct{}, len(backup.Months))
	monthRows := make([]models.MonthRecord, 0, len(backup.Months))
	for i, rec := range backup.Months {
		in, err := forms.MonthInputFromRecord(rec)
		if err != nil {
			return nil, nil, invalidBackup("months[%d]: %s", i, err.Error())
		}
		if _, dup := seen[in.Month]; dup {
			return nil, nil, invalidBackup("months[%d]: duplicate month %s", i, in.Month)
		}
		seen[in.Month] = struct{}{}

		month := in.Record(backupID(rec.ID))
		month.CreatedAt, month.UpdatedAt = rec.CreatedAt, rec.UpdatedAt
		stampTimes(&month.CreatedAt, &month.UpdatedAt, now)
		monthRows = append(monthRows, *models.NewMonthRecord(userID, month))
	}

	tradeRows := make([]models.Trade, 0, len(backup.Trades))
	for i, rec := range backup.Trades {
		in, err := forms.TradeInputFromRecord(rec)
		if err != nil {
			return nil, nil, invalidBackup("trades[%d]: %s", i, err.Error())
		}

		info := in.Info(backupID(rec.ID))
		info.CreatedAt, info.UpdatedAt = rec.CreatedAt, rec.UpdatedAt
		stampTimes(&info.CreatedAt, &info.UpdatedAt, now)
		tradeRows = append(tradeRows, *models.NewTrade(userID, in.TradeWithInfo(info)))
	}

	return monthRows, tradeRows, nil
}

func invalidBackup(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInvalidBackup, fmt.Sprintf(format, args...))
}

// backupID keeps a well-formed id and replaces anything else.
func backupID(id string) string {
	if uuid.IsValid(id) {
		return id
	}
	return uuid.New()
}

func stampTimes(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}
