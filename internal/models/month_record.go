package models

import (
	"tradelog/internal/journal"
)

// MonthRecord is the stored form of a journal.MonthRecord.
type MonthRecord struct {
	Base
	UserID           string              `gorm:"not null;uniqueIndex:idx_month_records_user_month" json:"-"`
	Month            string              `gorm:"size:7;not null;uniqueIndex:idx_month_records_user_month" json:"month"`
	Year             int                 `gorm:"not null" json:"year"`
	MonthName        string              `gorm:"size:16;not null" json:"month_name"`
	StartingCapital  float64             `gorm:"not null;default:0" json:"starting_capital"`
	EndingCapital    float64             `gorm:"not null;default:0" json:"ending_capital"`
	Deposits         float64             `gorm:"not null;default:0" json:"deposits"`
	Withdrawals      float64             `gorm:"not null;default:0" json:"withdrawals"`
	GrossChange      float64             `gorm:"not null;default:0" json:"gross_change"`
	NetProfitLoss    float64             `gorm:"not null;default:0" json:"net_profit_loss"`
	ReturnPercentage float64             `gorm:"not null;default:0" json:"return_percentage"`
	PnLSource        journal.PnLSource   `gorm:"column:pnl_source;size:16;not null;default:manual" json:"pnl_source"`
	Status           journal.MonthStatus `gorm:"size:16;not null;default:closed" json:"status"`
	Notes            string              `gorm:"not null;default:''" json:"notes"`
}

// ToJournal converts the row into an engine record.
func (m *MonthRecord) ToJournal() journal.MonthRecord {
	return journal.MonthRecord{
		ID:               m.ID,
		Month:            m.Month,
		Year:             m.Year,
		MonthName:        m.MonthName,
		StartingCapital:  m.StartingCapital,
		EndingCapital:    m.EndingCapital,
		Deposits:         m.Deposits,
		Withdrawals:      m.Withdrawals,
		GrossChange:      m.GrossChange,
		NetProfitLoss:    m.NetProfitLoss,
		ReturnPercentage: m.ReturnPercentage,
		PnLSource:        m.PnLSource,
		Status:           m.Status,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// NewMonthRecord builds a row for userID from an engine record. Derived
// fields are recomputed from the record's inputs.
func NewMonthRecord(userID string, rec journal.MonthRecord) *MonthRecord {
	rec.Recalculate()
	return &MonthRecord{
		Base: Base{
			ID:        rec.ID,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		},
		UserID:           userID,
		Month:            rec.Month,
		Year:             rec.Year,
		MonthName:        rec.MonthName,
		StartingCapital:  rec.StartingCapital,
		EndingCapital:    rec.EndingCapital,
		Deposits:         rec.Deposits,
		Withdrawals:      rec.Withdrawals,
		GrossChange:      rec.GrossChange,
		NetProfitLoss:    rec.NetProfitLoss,
		ReturnPercentage: rec.ReturnPercentage,
		PnLSource:        rec.PnLSource,
		Status:           rec.Status,
		Notes:            rec.Notes,
	}
}

// MonthRecordsToJournal converts a slice of rows, preserving order.
func MonthRecordsToJournal(rows []MonthRecord) []journal.MonthRecord {
	out := make([]journal.MonthRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].ToJournal()
	}
	return out
}
