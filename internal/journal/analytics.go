package journal

import (
	"sort"
	"strings"
)

// YearSummary is OverallStats restricted to one calendar year.
type YearSummary struct {
	Year  int          `json:"year"`
	Stats OverallStats `json:"stats"`
}

// YearlyStats groups months by year, years ascending. Months keep their input
// order inside each year.
func YearlyStats(months []MonthRecord) []YearSummary {
	byYear := make(map[int][]MonthRecord)
	for _, m := range months {
		y := m.Year
		if y == 0 {
			y = yearOf(m.Month)
		}
		byYear[y] = append(byYear[y], m)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearSummary, 0, len(years))
	for _, y := range years {
		out = append(out, YearSummary{Year: y, Stats: CalculateOverallStats(byYear[y])})
	}
	return out
}

// DayPnL is the realized P&L of trades closed on one day.
type DayPnL struct {
	Date   string  `json:"date"`
	PnL    float64 `json:"pnl"`
	Trades int     `json:"trades"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
}

// DailyPnL returns per-day realized P&L for the closed trades of one month,
// days ascending. It feeds the calendar view.
func DailyPnL(trades []Trade, monthKey string) []DayPnL {
	byDay := make(map[string]*DayPnL)
	for _, ct := range ClosedTrades(trades) {
		if ct.MonthKey() != monthKey {
			continue
		}
		day := ct.ExitDate.Format("2006-01-02")
		d, ok := byDay[day]
		if !ok {
			d = &DayPnL{Date: day}
			byDay[day] = d
		}
		d.PnL += ct.PnL
		d.Trades++
		switch {
		case ct.PnL > 0:
			d.Wins++
		case ct.PnL < 0:
			d.Losses++
		}
	}

	out := make([]DayPnL, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// EquityPoint is one month on the cumulative P&L curve.
type EquityPoint struct {
	Month         string  `json:"month"`
	NetProfitLoss float64 `json:"net_profit_loss"`
	Cumulative    float64 `json:"cumulative"`
	EndingCapital float64 `json:"ending_capital"`
}

// EquityCurve orders months by key and accumulates their net P&L.
func EquityCurve(months []MonthRecord) []EquityPoint {
	ordered := make([]MonthRecord, len(months))
	copy(ordered, months)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Month < ordered[j].Month })

	out := make([]EquityPoint, 0, len(ordered))
	var cumulative float64
	for _, m := range ordered {
		cumulative += m.NetProfitLoss
		out = append(out, EquityPoint{
			Month:         m.Month,
			NetProfitLoss: m.NetProfitLoss,
			Cumulative:    cumulative,
			EndingCapital: m.EndingCapital,
		})
	}
	return out
}

// SymbolStats is the closed-trade performance of one symbol.
type SymbolStats struct {
	Symbol   string  `json:"symbol"`
	Trades   int     `json:"trades"`
	Wins     int     `json:"wins"`
	TotalPnL float64 `json:"total_pnl"`
	WinRate  float64 `json:"win_rate"`
}

// SymbolBreakdown groups closed trades by symbol, best total P&L first.
// Symbols with equal P&L are ordered alphabetically.
func SymbolBreakdown(trades []Trade) []SymbolStats {
	bySymbol := make(map[string]*SymbolStats)
	for _, ct := range ClosedTrades(trades) {
		sym := strings.ToUpper(ct.Symbol)
		s, ok := bySymbol[sym]
		if !ok {
			s = &SymbolStats{Symbol: sym}
			bySymbol[sym] = s
		}
		s.Trades++
		s.TotalPnL += ct.PnL
		if ct.PnL > 0 {
			s.Wins++
		}
	}

	out := make([]SymbolStats, 0, len(bySymbol))
	for _, s := range bySymbol {
		s.WinRate = float64(s.Wins) / float64(s.Trades) * 100
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPnL != out[j].TotalPnL {
			return out[i].TotalPnL > out[j].TotalPnL
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
