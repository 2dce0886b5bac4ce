package journal

import "sort"

// OverallStats summarizes a collection of months.
type OverallStats struct {
	TotalProfitLoss  float64      `json:"total_profit_loss"`
	TotalProfit      float64      `json:"total_profit"`
	TotalLoss        float64      `json:"total_loss"`
	TotalMonths      int          `json:"total_months"`
	ProfitableMonths int          `json:"profitable_months"`
	LosingMonths     int          `json:"losing_months"`
	WinRate          float64      `json:"win_rate"`
	AverageReturn    float64      `json:"average_return"`
	ProfitFactor     ProfitFactor `json:"profit_factor"`
	BestMonth        *MonthRecord `json:"best_month"`
	WorstMonth       *MonthRecord `json:"worst_month"`
}

// CombinedStats is OverallStats computed with trade-derived P&L taking
// priority over manual month figures.
type CombinedStats struct {
	OverallStats
	TradeMonths   []string `json:"trade_months"`
	TradeTotalPnL float64  `json:"trade_total_pnl"`
}

// monthAccumulator folds months into OverallStats in a single pass.
type monthAccumulator struct {
	stats     OverallStats
	returnSum float64
}

func (a *monthAccumulator) add(rec MonthRecord) {
	s := &a.stats
	pnl := rec.NetProfitLoss

	s.TotalMonths++
	s.TotalProfitLoss += pnl
	a.returnSum += rec.ReturnPercentage

	switch {
	case pnl > 0:
		s.TotalProfit += pnl
		s.ProfitableMonths++
	case pnl < 0:
		s.TotalLoss += -pnl
		s.LosingMonths++
	}

	// Strict comparisons: the first record seen keeps a tie.
	if s.BestMonth == nil || pnl > s.BestMonth.NetProfitLoss {
		best := rec
		s.BestMonth = &best
	}
	if s.WorstMonth == nil || pnl < s.WorstMonth.NetProfitLoss {
		worst := rec
		s.WorstMonth = &worst
	}
}

func (a *monthAccumulator) finish() OverallStats {
	s := a.stats
	if s.TotalMonths > 0 {
		s.WinRate = float64(s.ProfitableMonths) / float64(s.TotalMonths) * 100
		s.AverageReturn = a.returnSum / float64(s.TotalMonths)
	}
	s.ProfitFactor = profitFactor(s.TotalProfit, s.TotalLoss)
	return s
}

// CalculateOverallStats aggregates months in the order given. An empty slice
// yields zero values with nil best and worst months.
func CalculateOverallStats(months []MonthRecord) OverallStats {
	var acc monthAccumulator
	for _, m := range months {
		acc.add(m)
	}
	return acc.finish()
}

// CalculateCombinedStats merges manual month records with trade P&L without
// double counting. For every month key that has trades, the month's P&L is
// the sum of its closed trades (open trades count as zero) and the manual
// figure is ignored. Months without trades use their manual P&L.
//
// Months are visited in input order, followed by trade-only months in order
// of first appearance in trades; that order decides best/worst ties.
func CalculateCombinedStats(months []MonthRecord, trades []Trade) CombinedStats {
	byMonth := make(map[string]float64)
	var tradeOrder []string
	for _, t := range trades {
		key := t.MonthKey()
		if _, ok := byMonth[key]; !ok {
			tradeOrder = append(tradeOrder, key)
		}
		byMonth[key] += tradePnL(t)
	}

	var acc monthAccumulator
	seen := make(map[string]bool, len(months)+len(tradeOrder))

	for _, m := range months {
		if seen[m.Month] {
			continue
		}
		seen[m.Month] = true

		pnl, covered := byMonth[m.Month]
		if !covered {
			acc.add(m)
			continue
		}

		rec := m
		rec.NetProfitLoss = pnl
		rec.ReturnPercentage = 0
		if m.StartingCapital > 0 {
			rec.ReturnPercentage = pnl / m.StartingCapital * 100
		}
		rec.PnLSource = PnLSourceTrades
		acc.add(rec)
	}

	for _, key := range tradeOrder {
		if seen[key] {
			continue
		}
		seen[key] = true
		acc.add(tradeMonthRecord(key, byMonth[key]))
	}

	var total float64
	for _, key := range tradeOrder {
		total += byMonth[key]
	}
	sorted := make([]string, len(tradeOrder))
	copy(sorted, tradeOrder)
	sort.Strings(sorted)

	return CombinedStats{
		OverallStats:  acc.finish(),
		TradeMonths:   sorted,
		TradeTotalPnL: total,
	}
}

// tradeMonthRecord builds a stand-in record for a month known only from trades.
func tradeMonthRecord(key string, pnl float64) MonthRecord {
	rec := MonthRecord{
		Month:         key,
		NetProfitLoss: pnl,
		PnLSource:     PnLSourceTrades,
		Status:        MonthStatusClosed,
	}
	if t, ok := ParseMonthKey(key); ok {
		rec.Year = t.Year()
		rec.MonthName = t.Month().String()
	}
	return rec
}
