package journal

import (
	"encoding/json"
	"math"
	"strconv"
)

// InfinitySymbol is how an unbounded profit factor is rendered.
const InfinitySymbol = "∞"

// ProfitFactor is gross profit divided by gross loss. It is +Inf when there
// are profits and no losses, and 0 when there is no activity at all.
type ProfitFactor float64

func profitFactor(totalProfit, totalLoss float64) ProfitFactor {
	if totalLoss > 0 {
		return ProfitFactor(totalProfit / totalLoss)
	}
	if totalProfit > 0 {
		return ProfitFactor(math.Inf(1))
	}
	return 0
}

// IsInfinite reports whether the factor is unbounded.
func (p ProfitFactor) IsInfinite() bool {
	return math.IsInf(float64(p), 1)
}

// String renders the factor with two decimals, or "∞".
func (p ProfitFactor) String() string {
	if p.IsInfinite() {
		return InfinitySymbol
	}
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

// MarshalJSON encodes +Inf as the string "∞" since JSON has no infinity.
func (p ProfitFactor) MarshalJSON() ([]byte, error) {
	if p.IsInfinite() {
		return json.Marshal(InfinitySymbol)
	}
	return json.Marshal(float64(p))
}

// UnmarshalJSON accepts either a number or the "∞" string.
func (p *ProfitFactor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == InfinitySymbol || s == "Infinity" || s == "+Inf" {
			*p = ProfitFactor(math.Inf(1))
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*p = ProfitFactor(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = ProfitFactor(f)
	return nil
}
