package services

import (
	apperrors "tradelog/internal/errors"
	"tradelog/internal/journal"
)

// statsService computes statistics from the stored collections.
type statsService struct {
	months MonthRecordServicer
	trades TradeServicer
}

// NewStatsService creates a new StatsServicer reading through the given stores.
func NewStatsService(months MonthRecordServicer, trades TradeServicer) StatsServicer {
	return &statsService{months: months, trades: trades}
}

// GetOverallStats aggregates the manual month records only.
func (s *statsService) GetOverallStats(userID string) (*journal.OverallStats, error) {
	months, err := s.months.GetAllMonths(userID)
	if err != nil {
		return nil, err
	}
	stats := journal.CalculateOverallStats(months)
	return &stats, nil
}

// GetCombinedStats aggregates months and trades, letting trades decide the
// P&L of any month they cover.
func (s *statsService) GetCombinedStats(userID string) (*journal.CombinedStats, error) {
	months, err := s.months.GetAllMonths(userID)
	if err != nil {
		return nil, err
	}
	trades, err := s.trades.GetAllTrades(userID)
	if err != nil {
		return nil, err
	}
	stats := journal.CalculateCombinedStats(months, trades)
	return &stats, nil
}

// GetTradeStats aggregates closed trades.
func (s *statsService) GetTradeStats(userID string) (*journal.TradeStats, error) {
	trades, err := s.trades.GetAllTrades(userID)
	if err != nil {
		return nil, err
	}
	stats := journal.CalculateTradeStats(trades)
	return &stats, nil
}

// GetYearlyStats returns per-year month statistics.
func (s *statsService) GetYearlyStats(userID string) ([]journal.YearSummary, error) {
	months, err := s.months.GetAllMonths(userID)
	if err != nil {
		return nil, err
	}
	return journal.YearlyStats(months), nil
}

// GetCalendar returns realized P&L per exit day within monthKey.
func (s *statsService) GetCalendar(userID, monthKey string) ([]journal.DayPnL, error) {
	if _, ok := journal.ParseMonthKey(monthKey); !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	trades, err := s.trades.GetAllTrades(userID)
	if err != nil {
		return nil, err
	}
	return journal.DailyPnL(trades, monthKey), nil
}

// GetEquityCurve returns cumulative month P&L in calendar order.
func (s *statsService) GetEquityCurve(userID string) ([]journal.EquityPoint, error) {
	months, err := s.months.GetAllMonths(userID)
	if err != nil {
		return nil, err
	}
	return journal.EquityCurve(months), nil
}

// GetSymbolBreakdown returns closed-trade results per symbol.
func (s *statsService) GetSymbolBreakdown(userID string) ([]journal.SymbolStats, error) {
	trades, err := s.trades.GetAllTrades(userID)
	if err != nil {
		return nil, err
	}
	return journal.SymbolBreakdown(trades), nil
}
