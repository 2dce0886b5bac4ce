package journal

import (
	"sort"
	"time"
)

// Streaks describes consecutive win/loss runs in chronological order.
// CurrentStreak is positive for an active winning run, negative for an
// active losing run and 0 when the last trade broke even.
type Streaks struct {
	CurrentStreak     int `json:"current_streak"`
	LongestWinStreak  int `json:"longest_win_streak"`
	LongestLoseStreak int `json:"longest_lose_streak"`
}

// TradeStats summarizes closed trades.
type TradeStats struct {
	TotalTrades       int          `json:"total_trades"`
	WinningTrades     int          `json:"winning_trades"`
	LosingTrades      int          `json:"losing_trades"`
	BreakEvenTrades   int          `json:"break_even_trades"`
	TotalPnL          float64      `json:"total_pnl"`
	TotalProfit       float64      `json:"total_profit"`
	TotalLoss         float64      `json:"total_loss"`
	WinRate           float64      `json:"win_rate"`
	AvgWin            float64      `json:"avg_win"`
	AvgLoss           float64      `json:"avg_loss"`
	ProfitFactor      ProfitFactor `json:"profit_factor"`
	BestTrade         *ClosedTrade `json:"best_trade"`
	WorstTrade        *ClosedTrade `json:"worst_trade"`
	CurrentStreak     int          `json:"current_streak"`
	LongestWinStreak  int          `json:"longest_win_streak"`
	LongestLoseStreak int          `json:"longest_lose_streak"`
}

// exitTime is the chronological sort key for streaks. Trades without an exit
// date sort at the Unix epoch, ahead of every dated trade.
func exitTime(t Trade) time.Time {
	if ct, ok := AsClosed(t); ok && !ct.ExitDate.IsZero() {
		return ct.ExitDate
	}
	return time.Unix(0, 0)
}

// CalculateStreaks walks trades ordered by exit date. A break-even trade (and
// an open trade, which has no P&L) resets both running streaks.
func CalculateStreaks(trades []Trade) Streaks {
	if len(trades) == 0 {
		return Streaks{}
	}

	ordered := make([]Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return exitTime(ordered[i]).Before(exitTime(ordered[j]))
	})

	var s Streaks
	var wins, losses int
	for _, t := range ordered {
		pnl := tradePnL(t)
		switch {
		case pnl > 0:
			wins++
			losses = 0
			s.LongestWinStreak = max(s.LongestWinStreak, wins)
		case pnl < 0:
			losses++
			wins = 0
			s.LongestLoseStreak = max(s.LongestLoseStreak, losses)
		default:
			wins, losses = 0, 0
		}
	}

	switch last := tradePnL(ordered[len(ordered)-1]); {
	case last > 0:
		s.CurrentStreak = wins
	case last < 0:
		s.CurrentStreak = -losses
	}
	return s
}

// CalculateTradeStats aggregates closed trades only; open trades are ignored
// entirely. Best and worst keep the first trade seen on a tie.
func CalculateTradeStats(trades []Trade) TradeStats {
	closed := make([]Trade, 0, len(trades))
	var s TradeStats

	for _, t := range trades {
		ct, ok := AsClosed(t)
		if !ok {
			continue
		}
		closed = append(closed, ct)

		s.TotalTrades++
		s.TotalPnL += ct.PnL
		switch {
		case ct.PnL > 0:
			s.WinningTrades++
			s.TotalProfit += ct.PnL
		case ct.PnL < 0:
			s.LosingTrades++
			s.TotalLoss += -ct.PnL
		default:
			s.BreakEvenTrades++
		}

		if s.BestTrade == nil || ct.PnL > s.BestTrade.PnL {
			best := ct
			s.BestTrade = &best
		}
		if s.WorstTrade == nil || ct.PnL < s.WorstTrade.PnL {
			worst := ct
			s.WorstTrade = &worst
		}
	}

	if s.TotalTrades == 0 {
		return TradeStats{}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	if s.WinningTrades > 0 {
		s.AvgWin = s.TotalProfit / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = s.TotalLoss / float64(s.LosingTrades)
	}
	s.ProfitFactor = profitFactor(s.TotalProfit, s.TotalLoss)

	streaks := CalculateStreaks(closed)
	s.CurrentStreak = streaks.CurrentStreak
	s.LongestWinStreak = streaks.LongestWinStreak
	s.LongestLoseStreak = streaks.LongestLoseStreak
	return s
}
