package models

import (
	"time"

	"gorm.io/datatypes"

	"tradelog/internal/journal"
)

// Trade is the stored form of a journal.Trade. Exit and P&L columns are
// null while the trade is open.
type Trade struct {
	Base
	UserID           string                      `gorm:"not null;index:idx_trades_user_month;index:idx_trades_user_status" json:"-"`
	Symbol           string                      `gorm:"size:32;not null" json:"symbol"`
	TradeType        journal.TradeType           `gorm:"size:8;not null" json:"trade_type"`
	Status           journal.TradeStatus         `gorm:"size:8;not null;index:idx_trades_user_status" json:"status"`
	EntryDate        time.Time                   `gorm:"not null" json:"entry_date"`
	ExitDate         *time.Time                  `json:"exit_date"`
	EntryPrice       float64                     `gorm:"not null" json:"entry_price"`
	ExitPrice        *float64                    `json:"exit_price"`
	Quantity         float64                     `gorm:"not null" json:"quantity"`
	PnL              *float64                    `gorm:"column:pnl" json:"pnl"`
	ReturnPercentage *float64                    `json:"return_percentage"`
	IsWin            *bool                       `json:"is_win"`
	Notes            string                      `gorm:"not null;default:''" json:"notes"`
	Tags             datatypes.JSONSlice[string] `gorm:"not null" json:"tags"`
	MonthKey         string                      `gorm:"size:7;not null;index:idx_trades_user_month" json:"month_key"`
}

// ToJournal converts the row into an engine trade. Closed trades have their
// P&L derived again from prices rather than trusting the stored columns.
func (t *Trade) ToJournal() journal.Trade {
	tags := []string(t.Tags)
	if tags == nil {
		tags = []string{}
	}
	info := journal.TradeInfo{
		ID:         t.ID,
		Symbol:     t.Symbol,
		Type:       t.TradeType,
		EntryDate:  t.EntryDate,
		EntryPrice: t.EntryPrice,
		Quantity:   t.Quantity,
		Notes:      t.Notes,
		Tags:       tags,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.Status == journal.TradeStatusClosed && t.ExitDate != nil && t.ExitPrice != nil {
		return journal.CloseTrade(info, *t.ExitDate, *t.ExitPrice)
	}
	return journal.OpenTrade{TradeInfo: info}
}

// NewTrade builds a row for userID from an engine trade.
func NewTrade(userID string, trade journal.Trade) *Trade {
	info := trade.Info()
	tags := info.Tags
	if tags == nil {
		tags = []string{}
	}
	row := &Trade{
		Base: Base{
			ID:        info.ID,
			CreatedAt: info.CreatedAt,
			UpdatedAt: info.UpdatedAt,
		},
		UserID:     userID,
		Symbol:     info.Symbol,
		TradeType:  info.Type,
		Status:     trade.Status(),
		EntryDate:  info.EntryDate,
		EntryPrice: info.EntryPrice,
		Quantity:   info.Quantity,
		Notes:      info.Notes,
		Tags:       datatypes.JSONSlice[string](tags),
		MonthKey:   trade.MonthKey(),
	}
	if ct, ok := journal.AsClosed(trade); ok {
		ct = journal.CloseTrade(ct.TradeInfo, ct.ExitDate, ct.ExitPrice)
		row.ExitDate = &ct.ExitDate
		row.ExitPrice = &ct.ExitPrice
		row.PnL = &ct.PnL
		row.ReturnPercentage = &ct.ReturnPercentage
		row.IsWin = &ct.IsWin
	}
	return row
}

// TradesToJournal converts a slice of rows, preserving order.
func TradesToJournal(rows []Trade) []journal.Trade {
	out := make([]journal.Trade, len(rows))
	for i := range rows {
		out[i] = rows[i].ToJournal()
	}
	return out
}
