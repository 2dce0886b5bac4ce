package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// monthRecordService handles month record storage.
type monthRecordService struct {
	db *gorm.DB
}

// NewMonthRecordService creates a new MonthRecordServicer.
func NewMonthRecordService(db *gorm.DB) MonthRecordServicer {
	return &monthRecordService{db: db}
}

// CreateMonth stores a new month. Only one record per month is allowed.
func (s *monthRecordService) CreateMonth(userID string, in forms.MonthInput) (*journal.MonthRecord, error) {
	if err := s.ensureMonthFree(userID, in.Month, ""); err != nil {
		return nil, err
	}

	row := models.NewMonthRecord(userID, in.Record(""))
	if err := s.db.Create(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := row.ToJournal()
	return &rec, nil
}

// GetUserMonths retrieves a paginated list of months, newest first.
func (s *monthRecordService) GetUserMonths(userID string, page pagination.PageRequest, filter MonthFilter) (*pagination.PageResponse[journal.MonthRecord], error) {
	page.Defaults()

	query := s.db.Model(&models.MonthRecord{}).Where("user_id = ?", userID)
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	query = query.Session(&gorm.Session{})

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []models.MonthRecord
	if err := query.Order("month DESC").Scopes(pagination.Paginate(page)).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(models.MonthRecordsToJournal(rows), page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllMonths returns every month for the user in calendar order.
func (s *monthRecordService) GetAllMonths(userID string) ([]journal.MonthRecord, error) {
	var rows []models.MonthRecord
	if err := s.db.Where("user_id = ?", userID).Order("month ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return models.MonthRecordsToJournal(rows), nil
}

// GetMonthByID retrieves a month by ID for a specific user.
func (s *monthRecordService) GetMonthByID(userID, monthID string) (*journal.MonthRecord, error) {
	row, err := s.findMonth(userID, monthID)
	if err != nil {
		return nil, err
	}
	rec := row.ToJournal()
	return &rec, nil
}

// UpdateMonth replaces every editable field and recomputes the derived ones.
func (s *monthRecordService) UpdateMonth(userID, monthID string, in forms.MonthInput) (*journal.MonthRecord, error) {
	existing, err := s.findMonth(userID, monthID)
	if err != nil {
		return nil, err
	}
	if in.Month != existing.Month {
		if err := s.ensureMonthFree(userID, in.Month, monthID); err != nil {
			return nil, err
		}
	}

	rec := in.Record(existing.ID)
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now()

	row := models.NewMonthRecord(userID, rec)
	if err := s.db.Save(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updated := row.ToJournal()
	return &updated, nil
}

// DeleteMonth removes a month.
func (s *monthRecordService) DeleteMonth(userID, monthID string) error {
	if _, err := s.findMonth(userID, monthID); err != nil {
		return err
	}
	if err := s.db.Where("id = ? AND user_id = ?", monthID, userID).Delete(&models.MonthRecord{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *monthRecordService) findMonth(userID, monthID string) (*models.MonthRecord, error) {
	var row models.MonthRecord
	if err := s.db.Where("id = ? AND user_id = ?", monthID, userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMonthNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// ensureMonthFree fails with ErrDuplicateMonth when another record for the
// month exists. exceptID is ignored in the check.
func (s *monthRecordService) ensureMonthFree(userID, month, exceptID string) error {
	query := s.db.Model(&models.MonthRecord{}).Where("user_id = ? AND month = ?", userID, month)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateMonth
	}
	return nil
}
