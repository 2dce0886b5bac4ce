// Package journal derives profit/loss figures for monthly capital snapshots
// and individual trades, and aggregates them into display-ready statistics.
//
// Every function in this package is pure: inputs are never mutated, there is
// no shared state, and all "no data" or division-by-zero conditions resolve to
// explicit values instead of errors. Callers are expected to validate input
// before it reaches the engine (see package forms).
package journal

import (
	"strconv"
	"time"
)

// PnLSource records where a month's profit/loss figure came from.
type PnLSource string

const (
	PnLSourceManual PnLSource = "manual"
	PnLSourceTrades PnLSource = "trades"
)

// MonthStatus tracks whether a month is still being traded.
type MonthStatus string

const (
	MonthStatusActive MonthStatus = "active"
	MonthStatusClosed MonthStatus = "closed"
)

// MonthKeyLayout is the time layout of a month key ("YYYY-MM").
const MonthKeyLayout = "2006-01"

// now is replaced in tests.
var now = time.Now

// MonthRecord is one calendar month's account snapshot.
type MonthRecord struct {
	ID               string      `json:"id"`
	Month            string      `json:"month"`
	Year             int         `json:"year"`
	MonthName        string      `json:"month_name"`
	StartingCapital  float64     `json:"starting_capital"`
	EndingCapital    float64     `json:"ending_capital"`
	Deposits         float64     `json:"deposits"`
	Withdrawals      float64     `json:"withdrawals"`
	GrossChange      float64     `json:"gross_change"`
	NetProfitLoss    float64     `json:"net_profit_loss"`
	ReturnPercentage float64     `json:"return_percentage"`
	PnLSource        PnLSource   `json:"pnl_source"`
	Status           MonthStatus `json:"status"`
	Notes            string      `json:"notes"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// MonthMetrics holds the fields derived from a month's four capital inputs.
type MonthMetrics struct {
	GrossChange      float64 `json:"gross_change"`
	NetProfitLoss    float64 `json:"net_profit_loss"`
	ReturnPercentage float64 `json:"return_percentage"`
}

// CalculateMonthMetrics derives gross change, net P&L and return percentage.
// Deposits are subtracted and withdrawals added back so that capital moved in
// or out of the account is not counted as performance. The return is 0 when
// startingCapital is not positive.
func CalculateMonthMetrics(startingCapital, endingCapital, deposits, withdrawals float64) MonthMetrics {
	grossChange := endingCapital - startingCapital
	netProfitLoss := grossChange - deposits + withdrawals

	var returnPercentage float64
	if startingCapital > 0 {
		returnPercentage = netProfitLoss / startingCapital * 100
	}

	return MonthMetrics{
		GrossChange:      grossChange,
		NetProfitLoss:    netProfitLoss,
		ReturnPercentage: returnPercentage,
	}
}

// CreateMonthRecord builds a complete MonthRecord, deriving the year and month
// name from the key and stamping both timestamps with the current time.
// A malformed key leaves Year at 0 and MonthName empty.
func CreateMonthRecord(
	id, month string,
	startingCapital, endingCapital, deposits, withdrawals float64,
	notes string,
	status MonthStatus,
	source PnLSource,
) MonthRecord {
	ts := now()
	rec := MonthRecord{
		ID:              id,
		Month:           month,
		StartingCapital: startingCapital,
		EndingCapital:   endingCapital,
		Deposits:        deposits,
		Withdrawals:     withdrawals,
		PnLSource:       source,
		Status:          status,
		Notes:           notes,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	if t, ok := ParseMonthKey(month); ok {
		rec.Year = t.Year()
		rec.MonthName = t.Month().String()
	}
	rec.applyMetrics(CalculateMonthMetrics(startingCapital, endingCapital, deposits, withdrawals))
	return rec
}

// Recalculate re-derives the computed fields from the record's own inputs.
func (m *MonthRecord) Recalculate() {
	m.applyMetrics(CalculateMonthMetrics(m.StartingCapital, m.EndingCapital, m.Deposits, m.Withdrawals))
	if t, ok := ParseMonthKey(m.Month); ok {
		m.Year = t.Year()
		m.MonthName = t.Month().String()
	}
}

func (m *MonthRecord) applyMetrics(mm MonthMetrics) {
	m.GrossChange = mm.GrossChange
	m.NetProfitLoss = mm.NetProfitLoss
	m.ReturnPercentage = mm.ReturnPercentage
}

// Metrics returns the derived fields currently stored on the record.
func (m MonthRecord) Metrics() MonthMetrics {
	return MonthMetrics{
		GrossChange:      m.GrossChange,
		NetProfitLoss:    m.NetProfitLoss,
		ReturnPercentage: m.ReturnPercentage,
	}
}

// ParseMonthKey parses a "YYYY-MM" key into the first instant of that month (UTC).
func ParseMonthKey(key string) (time.Time, bool) {
	if len(key) != len(MonthKeyLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthKey formats t as a "YYYY-MM" key.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// yearOf returns the year encoded in a month key, or 0.
func yearOf(key string) int {
	if len(key) < 4 {
		return 0
	}
	y, err := strconv.Atoi(key[:4])
	if err != nil {
		return 0
	}
	return y
}
