package journal

import "time"

// TradeRecord is the flat form of a Trade used on the wire and in backups.
// Exit and P&L fields are null for open trades.
type TradeRecord struct {
	TradeInfo
	Status           TradeStatus `json:"status"`
	ExitDate         *time.Time  `json:"exit_date"`
	ExitPrice        *float64    `json:"exit_price"`
	PnL              *float64    `json:"pnl"`
	ReturnPercentage *float64    `json:"return_percentage"`
	IsWin            *bool       `json:"is_win"`
	MonthKey         string      `json:"month_key"`
}

// NewTradeRecord flattens t.
func NewTradeRecord(t Trade) TradeRecord {
	r := TradeRecord{
		TradeInfo: t.Info(),
		Status:    t.Status(),
		MonthKey:  t.MonthKey(),
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if ct, ok := AsClosed(t); ok {
		r.ExitDate = &ct.ExitDate
		r.ExitPrice = &ct.ExitPrice
		r.PnL = &ct.PnL
		r.ReturnPercentage = &ct.ReturnPercentage
		r.IsWin = &ct.IsWin
	}
	return r
}

// NewTradeRecords flattens trades, preserving order.
func NewTradeRecords(trades []Trade) []TradeRecord {
	out := make([]TradeRecord, len(trades))
	for i, t := range trades {
		out[i] = NewTradeRecord(t)
	}
	return out
}

// Trade rebuilds the Trade. A record marked closed becomes a ClosedTrade
// with P&L derived again from its prices; stored P&L fields are ignored.
// The second result is false when a closed record lacks exit data.
func (r TradeRecord) Trade() (Trade, bool) {
	switch r.Status {
	case TradeStatusClosed:
		if r.ExitDate == nil || r.ExitPrice == nil {
			return nil, false
		}
		return CloseTrade(r.TradeInfo, *r.ExitDate, *r.ExitPrice), true
	case TradeStatusOpen:
		return OpenTrade{TradeInfo: r.TradeInfo}, true
	}
	return nil, false
}
