package journal

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearlyStats(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		monthWithPnL("a", "2025-01", 1000, 100),
		monthWithPnL("b", "2024-12", 1000, -30),
		monthWithPnL("c", "2025-02", 1000, -10),
		monthWithPnL("d", "2024-11", 1000, 60),
	}

	years := YearlyStats(months)
	require.Len(t, years, 2)

	assert.Equal(t, 2024, years[0].Year)
	assert.Equal(t, 30.0, years[0].Stats.TotalProfitLoss)
	assert.Equal(t, 2, years[0].Stats.TotalMonths)

	assert.Equal(t, 2025, years[1].Year)
	assert.Equal(t, 90.0, years[1].Stats.TotalProfitLoss)
	assert.InDelta(t, 10.0, float64(years[1].Stats.ProfitFactor), 1e-12)
}

func TestDailyPnL(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		closedTrade("a", "X", day(2025, 5, 12), 40),
		closedTrade("b", "X", day(2025, 5, 3), -15),
		closedTrade("c", "X", day(2025, 5, 12), -10),
		closedTrade("d", "X", day(2025, 6, 1), 999),
		OpenTrade{TradeInfo: TradeInfo{ID: "o", EntryDate: day(2025, 5, 20)}},
	}

	days := DailyPnL(trades, "2025-05")
	require.Len(t, days, 2)
	assert.Equal(t, DayPnL{Date: "2025-05-03", PnL: -15, Trades: 1, Losses: 1}, days[0])
	assert.Equal(t, DayPnL{Date: "2025-05-12", PnL: 30, Trades: 2, Wins: 1, Losses: 1}, days[1])

	assert.Empty(t, DailyPnL(trades, "2024-01"))
}

func TestEquityCurve(t *testing.T) {
	t.Parallel()

	months := []MonthRecord{
		monthWithPnL("b", "2025-02", 1100, -50),
		monthWithPnL("a", "2025-01", 1000, 100),
		monthWithPnL("c", "2025-03", 1050, 25),
	}

	curve := EquityCurve(months)
	require.Len(t, curve, 3)
	assert.Equal(t, "2025-01", curve[0].Month)
	assert.Equal(t, 100.0, curve[0].Cumulative)
	assert.Equal(t, 50.0, curve[1].Cumulative)
	assert.Equal(t, 75.0, curve[2].Cumulative)
	assert.Equal(t, 1075.0, curve[2].EndingCapital)

	// input order untouched
	assert.Equal(t, "b", months[0].ID)
}

func TestSymbolBreakdown(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		closedTrade("a", "aapl", day(2025, 1, 2), 30),
		closedTrade("b", "AAPL", day(2025, 1, 3), -10),
		closedTrade("c", "MSFT", day(2025, 1, 4), 50),
		closedTrade("d", "TSLA", day(2025, 1, 5), 20),
		OpenTrade{TradeInfo: TradeInfo{ID: "o", Symbol: "NVDA"}},
	}

	got := SymbolBreakdown(trades)
	require.Len(t, got, 3)
	assert.Equal(t, "MSFT", got[0].Symbol)
	assert.Equal(t, "AAPL", got[1].Symbol)
	assert.Equal(t, 2, got[1].Trades)
	assert.Equal(t, 50.0, got[1].WinRate)
	assert.Equal(t, "TSLA", got[2].Symbol)
}

func TestProfitFactorJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(ProfitFactor(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, `"∞"`, string(b))

	b, err = json.Marshal(ProfitFactor(1.5))
	require.NoError(t, err)
	assert.Equal(t, `1.5`, string(b))

	var p ProfitFactor
	require.NoError(t, json.Unmarshal([]byte(`"∞"`), &p))
	assert.True(t, p.IsInfinite())
	require.NoError(t, json.Unmarshal([]byte(`2.25`), &p))
	assert.Equal(t, ProfitFactor(2.25), p)
	assert.Equal(t, "2.25", p.String())
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &p))
}

func TestOverallStatsJSONWithInfiniteFactor(t *testing.T) {
	t.Parallel()

	s := CalculateOverallStats([]MonthRecord{monthWithPnL("a", "2025-01", 1000, 10)})
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "∞", decoded["profit_factor"])

	empty, err := json.Marshal(CalculateOverallStats(nil))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(empty, &decoded))
	assert.Nil(t, decoded["best_month"])
	assert.Nil(t, decoded["worst_month"])
}
