package journal

import (
	"time"
)

// TradeType is the direction of a position.
type TradeType string

const (
	TradeTypeLong  TradeType = "long"
	TradeTypeShort TradeType = "short"
)

// TradeStatus is derived from the concrete Trade variant.
type TradeStatus string

const (
	TradeStatusOpen   TradeStatus = "open"
	TradeStatusClosed TradeStatus = "closed"
)

// TradeInfo holds the fields shared by open and closed trades.
type TradeInfo struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Type       TradeType `json:"trade_type"`
	EntryDate  time.Time `json:"entry_date"`
	EntryPrice float64   `json:"entry_price"`
	Quantity   float64   `json:"quantity"`
	Notes      string    `json:"notes"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Trade is either an OpenTrade or a ClosedTrade. Only closed trades carry
// exit data and realized P&L.
type Trade interface {
	Info() TradeInfo
	Status() TradeStatus
	// MonthKey is the exit month for closed trades and the entry month otherwise.
	MonthKey() string
	isTrade()
}

// OpenTrade is a position that has not been exited yet.
type OpenTrade struct {
	TradeInfo
}

func (t OpenTrade) Info() TradeInfo { return t.TradeInfo }
func (t OpenTrade) Status() TradeStatus { return TradeStatusOpen }
func (t OpenTrade) MonthKey() string { return MonthKey(t.EntryDate) }
func (OpenTrade) isTrade() {}

// ClosedTrade is an exited position with realized P&L.
type ClosedTrade struct {
	TradeInfo
	ExitDate         time.Time `json:"exit_date"`
	ExitPrice        float64   `json:"exit_price"`
	PnL              float64   `json:"pnl"`
	ReturnPercentage float64   `json:"return_percentage"`
	IsWin            bool      `json:"is_win"`
}

func (t ClosedTrade) Info() TradeInfo { return t.TradeInfo }
func (t ClosedTrade) Status() TradeStatus { return TradeStatusClosed }
func (t ClosedTrade) MonthKey() string { return MonthKey(t.ExitDate) }
func (ClosedTrade) isTrade() {}

// TradePnL holds the fields derived when a trade is closed.
type TradePnL struct {
	PnL              float64 `json:"pnl"`
	ReturnPercentage float64 `json:"return_percentage"`
	IsWin            bool    `json:"is_win"`
}

// CalculateTradePnL computes realized P&L. Short trades invert the sign.
// A zero P&L is not a win.
func CalculateTradePnL(entryPrice, exitPrice, quantity float64, tradeType TradeType) TradePnL {
	direction := 1.0
	if tradeType != TradeTypeLong {
		direction = -1
	}

	pnl := (exitPrice - entryPrice) * quantity * direction

	var returnPercentage float64
	if entryPrice > 0 {
		returnPercentage = (exitPrice - entryPrice) / entryPrice * 100 * direction
	}

	return TradePnL{
		PnL:              pnl,
		ReturnPercentage: returnPercentage,
		IsWin:            pnl > 0,
	}
}

// CloseTrade builds a ClosedTrade from shared info and exit data, deriving
// the P&L fields.
func CloseTrade(info TradeInfo, exitDate time.Time, exitPrice float64) ClosedTrade {
	p := CalculateTradePnL(info.EntryPrice, exitPrice, info.Quantity, info.Type)
	return ClosedTrade{
		TradeInfo:        info,
		ExitDate:         exitDate,
		ExitPrice:        exitPrice,
		PnL:              p.PnL,
		ReturnPercentage: p.ReturnPercentage,
		IsWin:            p.IsWin,
	}
}

// AsClosed returns t as a ClosedTrade when it is closed, whether it holds the
// value or a pointer to it.
func AsClosed(t Trade) (ClosedTrade, bool) {
	switch ct := t.(type) {
	case ClosedTrade:
		return ct, true
	case *ClosedTrade:
		if ct != nil {
			return *ct, true
		}
	}
	return ClosedTrade{}, false
}

// ClosedTrades returns the closed subset of trades, preserving order.
func ClosedTrades(trades []Trade) []ClosedTrade {
	out := make([]ClosedTrade, 0, len(trades))
	for _, t := range trades {
		if ct, ok := AsClosed(t); ok {
			out = append(out, ct)
		}
	}
	return out
}

// tradePnL returns the realized P&L of t, 0 for open trades.
func tradePnL(t Trade) float64 {
	if ct, ok := AsClosed(t); ok {
		return ct.PnL
	}
	return 0
}
