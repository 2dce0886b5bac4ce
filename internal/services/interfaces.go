package services

import (
	"time"

	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/pagination"
)

// MonthFilter holds optional filter parameters for listing month records.
type MonthFilter struct {
	Year   *int
	Status *journal.MonthStatus
}

// MonthRecordServicer defines the contract for month record storage.
type MonthRecordServicer interface {
	CreateMonth(userID string, in forms.MonthInput) (*journal.MonthRecord, error)
	GetUserMonths(userID string, page pagination.PageRequest, filter MonthFilter) (*pagination.PageResponse[journal.MonthRecord], error)
	GetAllMonths(userID string) ([]journal.MonthRecord, error)
	GetMonthByID(userID, monthID string) (*journal.MonthRecord, error)
	UpdateMonth(userID, monthID string, in forms.MonthInput) (*journal.MonthRecord, error)
	DeleteMonth(userID, monthID string) error
}

// TradeFilter holds optional filter parameters for listing trades.
type TradeFilter struct {
	Status   *journal.TradeStatus
	Symbol   string
	MonthKey string
	Tag      string
	FromDate *time.Time
	ToDate   *time.Time
}

// TradeServicer defines the contract for trade storage.
type TradeServicer interface {
	CreateTrade(userID string, in forms.TradeInput) (*journal.TradeRecord, error)
	GetUserTrades(userID string, page pagination.PageRequest, filter TradeFilter) (*pagination.PageResponse[journal.TradeRecord], error)
	GetAllTrades(userID string) ([]journal.Trade, error)
	GetTradeByID(userID, tradeID string) (*journal.TradeRecord, error)
	UpdateTrade(userID, tradeID string, in forms.TradeInput) (*journal.TradeRecord, error)
	DeleteTrade(userID, tradeID string) error
}

// StatsServicer computes statistics over a user's full collections. Nothing
// is cached; every call reads the current rows.
type StatsServicer interface {
	GetOverallStats(userID string) (*journal.OverallStats, error)
	GetCombinedStats(userID string) (*journal.CombinedStats, error)
	GetTradeStats(userID string) (*journal.TradeStats, error)
	GetYearlyStats(userID string) ([]journal.YearSummary, error)
	GetCalendar(userID, monthKey string) ([]journal.DayPnL, error)
	GetEquityCurve(userID string) ([]journal.EquityPoint, error)
	GetSymbolBreakdown(userID string) ([]journal.SymbolStats, error)
}

// BackupVersion is the current backup document version.
const BackupVersion = 1

// Backup is a complete copy of one user's journal.
type Backup struct {
	Version    int                   `json:"version"`
	ExportedAt time.Time             `json:"exported_at"`
	Months     []journal.MonthRecord `json:"months"`
	Trades     []journal.TradeRecord `json:"trades"`
}

// BackupSummary reports what a restore wrote.
type BackupSummary struct {
	Months int `json:"months"`
	Trades int `json:"trades"`
}

// BackupServicer exports and restores whole collections.
type BackupServicer interface {
	Export(userID string) (*Backup, error)
	Replace(userID string, backup Backup) (*BackupSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
