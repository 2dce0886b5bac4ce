package forms

import (
	"strings"
	"time"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/journal"
)

// TradeForm is the trade entry form as submitted.
type TradeForm struct {
	Symbol     string   `json:"symbol" example:"AAPL"`
	TradeType  string   `json:"trade_type" example:"long"`
	Status     string   `json:"status" example:"closed"`
	EntryDate  string   `json:"entry_date" example:"2025-07-01"`
	EntryPrice Value    `json:"entry_price" swaggertype:"string" example:"190.25"`
	Quantity   Value    `json:"quantity" swaggertype:"string" example:"10"`
	ExitDate   string   `json:"exit_date" example:"2025-07-15"`
	ExitPrice  Value    `json:"exit_price" swaggertype:"string" example:"201.10"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
}

// TradeInput is a parsed and validated trade form. Exit fields are set only
// for closed trades.
type TradeInput struct {
	Symbol     string              `json:"symbol" validate:"required,symbol"`
	Type       journal.TradeType   `json:"trade_type" validate:"required,trade_type"`
	Status     journal.TradeStatus `json:"status" validate:"required,trade_status"`
	EntryDate  time.Time           `json:"entry_date" validate:"required"`
	EntryPrice float64             `json:"entry_price" validate:"gt=0"`
	Quantity   float64             `json:"quantity" validate:"gt=0"`
	ExitDate   *time.Time          `json:"exit_date"`
	ExitPrice  *float64            `json:"exit_price" validate:"omitempty,gt=0"`
	Notes      string              `json:"notes" validate:"max=2000"`
	Tags       []string            `json:"tags" validate:"max=20,dive,max=32"`
}

// ParseTradeForm parses and validates f. A blank status means open.
// Closed trades need an exit date on or after the entry date and an exit price.
func ParseTradeForm(f TradeForm) (TradeInput, error) {
	in := TradeInput{
		Symbol: strings.ToUpper(strings.TrimSpace(f.Symbol)),
		Type:   journal.TradeType(strings.ToLower(strings.TrimSpace(f.TradeType))),
		Status: tradeStatus(f.Status),
		Notes:  strings.TrimSpace(f.Notes),
		Tags:   NormalizeTags(f.Tags),
	}

	if strings.TrimSpace(f.EntryDate) == "" {
		return TradeInput{}, invalidField("entry_date", "is required")
	}
	entry, err := ParseFlexibleTime(f.EntryDate)
	if err != nil {
		return TradeInput{}, invalidField("entry_date", err.Error())
	}
	in.EntryDate = entry

	if in.EntryPrice, err = parseNumber("entry_price", f.EntryPrice); err != nil {
		return TradeInput{}, err
	}
	if in.Quantity, err = parseNumber("quantity", f.Quantity); err != nil {
		return TradeInput{}, err
	}

	if in.Status == journal.TradeStatusClosed {
		if strings.TrimSpace(f.ExitDate) == "" || f.ExitPrice.IsBlank() {
			return TradeInput{}, apperrors.ErrInvalidTradeExit
		}
		exit, err := ParseFlexibleTime(f.ExitDate)
		if err != nil {
			return TradeInput{}, invalidField("exit_date", err.Error())
		}
		if exit.Before(entry) {
			return TradeInput{}, apperrors.ErrInvalidTradeExit
		}
		price, err := parseNumber("exit_price", f.ExitPrice)
		if err != nil {
			return TradeInput{}, err
		}
		in.ExitDate = &exit
		in.ExitPrice = &price
	}

	if err := validate(in); err != nil {
		return TradeInput{}, err
	}
	return in, nil
}

// TradeInputFromRecord checks a trade that did not come through the form,
// such as one read from a backup, against the rules ParseTradeForm applies.
// Stored P&L fields are ignored.
func TradeInputFromRecord(rec journal.TradeRecord) (TradeInput, error) {
	in := TradeInput{
		Symbol:     strings.ToUpper(strings.TrimSpace(rec.Symbol)),
		Type:       journal.TradeType(strings.ToLower(strings.TrimSpace(string(rec.Type)))),
		Status:     tradeStatus(string(rec.Status)),
		EntryDate:  rec.EntryDate,
		EntryPrice: rec.EntryPrice,
		Quantity:   rec.Quantity,
		Notes:      strings.TrimSpace(rec.Notes),
		Tags:       NormalizeTags(rec.Tags),
	}

	if in.Status == journal.TradeStatusClosed {
		if rec.ExitDate == nil || rec.ExitPrice == nil || rec.ExitDate.IsZero() || rec.ExitDate.Before(rec.EntryDate) {
			return TradeInput{}, apperrors.ErrInvalidTradeExit
		}
		exit, price := *rec.ExitDate, *rec.ExitPrice
		in.ExitDate = &exit
		in.ExitPrice = &price
	}

	if !finite(in.EntryPrice, in.Quantity) || (in.ExitPrice != nil && !finite(*in.ExitPrice)) {
		return TradeInput{}, invalidField("prices", "must be finite numbers")
	}
	if err := validate(in); err != nil {
		return TradeInput{}, err
	}
	return in, nil
}

func tradeStatus(s string) journal.TradeStatus {
	if s = strings.ToLower(strings.TrimSpace(s)); s == "" {
		return journal.TradeStatusOpen
	}
	return journal.TradeStatus(s)
}

// NormalizeTags lower-cases and trims tags, dropping blanks and duplicates
// while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Info returns the shared trade fields for in.
func (in TradeInput) Info(id string) journal.TradeInfo {
	return journal.TradeInfo{
		ID:         id,
		Symbol:     in.Symbol,
		Type:       in.Type,
		EntryDate:  in.EntryDate,
		EntryPrice: in.EntryPrice,
		Quantity:   in.Quantity,
		Notes:      in.Notes,
		Tags:       in.Tags,
	}
}

// Trade builds the journal trade for in, deriving P&L when it is closed.
func (in TradeInput) Trade(id string) journal.Trade {
	return in.TradeWithInfo(in.Info(id))
}

// TradeWithInfo is Trade with the shared fields, timestamps included, supplied
// by the caller.
func (in TradeInput) TradeWithInfo(info journal.TradeInfo) journal.Trade {
	if in.Status == journal.TradeStatusClosed && in.ExitDate != nil && in.ExitPrice != nil {
		return journal.CloseTrade(info, *in.ExitDate, *in.ExitPrice)
	}
	return journal.OpenTrade{TradeInfo: info}
}
