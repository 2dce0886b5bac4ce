package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// tradeService handles trade storage.
type tradeService struct {
	db *gorm.DB
}

// NewTradeService creates a new TradeServicer.
func NewTradeService(db *gorm.DB) TradeServicer {
	return &tradeService{db: db}
}

// CreateTrade stores a new open or closed trade.
func (s *tradeService) CreateTrade(userID string, in forms.TradeInput) (*journal.TradeRecord, error) {
	row := models.NewTrade(userID, in.Trade(""))
	if err := s.db.Create(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := journal.NewTradeRecord(row.ToJournal())
	return &rec, nil
}

// GetUserTrades retrieves a paginated, filtered list of trades, most
// recently entered first.
func (s *tradeService) GetUserTrades(userID string, page pagination.PageRequest, filter TradeFilter) (*pagination.PageResponse[journal.TradeRecord], error) {
	page.Defaults()

	query := applyTradeFilter(s.db.Model(&models.Trade{}).Where("user_id = ?", userID), filter).
		Session(&gorm.Session{})

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []models.Trade
	if err := query.Order("entry_date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(journal.NewTradeRecords(models.TradesToJournal(rows)), page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTradeFilter(query *gorm.DB, filter TradeFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Symbol != "" {
		query = query.Where("symbol = ?", strings.ToUpper(strings.TrimSpace(filter.Symbol)))
	}
	if filter.MonthKey != "" {
		query = query.Where("month_key = ?", filter.MonthKey)
	}
	if filter.Tag != "" {
		query = query.Where("CAST(tags AS TEXT) LIKE ? ESCAPE '!'", tagPattern(filter.Tag))
	}
	if filter.FromDate != nil {
		query = query.Where("entry_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("entry_date <= ?", *filter.ToDate)
	}
	return query
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// tagPattern matches tag as a whole element of the JSON tags column, with
// LIKE wildcards in the tag taken literally.
func tagPattern(tag string) string {
	encoded, _ := json.Marshal(strings.ToLower(strings.TrimSpace(tag)))
	return "%" + likeEscaper.Replace(string(encoded)) + "%"
}

// GetAllTrades returns every trade for the user in entry order.
func (s *tradeService) GetAllTrades(userID string) ([]journal.Trade, error) {
	var rows []models.Trade
	if err := s.db.Where("user_id = ?", userID).Order("entry_date ASC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return models.TradesToJournal(rows), nil
}

// GetTradeByID retrieves a trade by ID for a specific user.
func (s *tradeService) GetTradeByID(userID, tradeID string) (*journal.TradeRecord, error) {
	row, err := s.findTrade(userID, tradeID)
	if err != nil {
		return nil, err
	}
	rec := journal.NewTradeRecord(row.ToJournal())
	return &rec, nil
}

// UpdateTrade replaces the trade. Closing or reopening happens here; there is
// no partial close.
func (s *tradeService) UpdateTrade(userID, tradeID string, in forms.TradeInput) (*journal.TradeRecord, error) {
	existing, err := s.findTrade(userID, tradeID)
	if err != nil {
		return nil, err
	}

	trade := in.Trade(existing.ID)
	row := models.NewTrade(userID, trade)
	row.CreatedAt = existing.CreatedAt
	row.UpdatedAt = time.Now()

	if err := s.db.Save(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := journal.NewTradeRecord(row.ToJournal())
	return &rec, nil
}

// DeleteTrade removes a trade.
func (s *tradeService) DeleteTrade(userID, tradeID string) error {
	if _, err := s.findTrade(userID, tradeID); err != nil {
		return err
	}
	if err := s.db.Where("id = ? AND user_id = ?", tradeID, userID).Delete(&models.Trade{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *tradeService) findTrade(userID, tradeID string) (*models.Trade, error) {
	var row models.Trade
	if err := s.db.Where("id = ? AND user_id = ?", tradeID, userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}
