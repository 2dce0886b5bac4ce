package forms

import (
	"strings"

	"tradelog/internal/journal"
)

// MonthForm is the month entry form as submitted.
type MonthForm struct {
	Month           string `json:"month"`
	StartingCapital Value  `json:"starting_capital" swaggertype:"string" example:"10,000.00"`
	EndingCapital   Value  `json:"ending_capital" swaggertype:"string" example:"10,450.00"`
	Deposits        Value  `json:"deposits" swaggertype:"string" example:"0"`
	Withdrawals     Value  `json:"withdrawals" swaggertype:"string" example:"0"`
	Notes           string `json:"notes"`
	Status          string `json:"status" example:"closed"`
	PnLSource       string `json:"pnl_source" example:"manual"`
}

// MonthInput is a parsed and validated month form.
type MonthInput struct {
	Month           string              `json:"month" validate:"required,month_key"`
	StartingCapital float64             `json:"starting_capital" validate:"gte=0"`
	EndingCapital   float64             `json:"ending_capital" validate:"gte=0"`
	Deposits        float64             `json:"deposits" validate:"gte=0"`
	Withdrawals     float64             `json:"withdrawals" validate:"gte=0"`
	Notes           string              `json:"notes" validate:"max=2000"`
	Status          journal.MonthStatus `json:"status" validate:"required,month_status"`
	PnLSource       journal.PnLSource   `json:"pnl_source" validate:"required,pnl_source"`
}

// ParseMonthForm parses and validates f. A blank status means closed and a
// blank source means manual. Blank deposits and withdrawals are 0, but
// starting and ending capital must be filled in.
func ParseMonthForm(f MonthForm) (MonthInput, error) {
	if f.StartingCapital.IsBlank() {
		return MonthInput{}, invalidField("starting_capital", "is required")
	}
	if f.EndingCapital.IsBlank() {
		return MonthInput{}, invalidField("ending_capital", "is required")
	}

	in := MonthInput{
		Month:     strings.TrimSpace(f.Month),
		Notes:     strings.TrimSpace(f.Notes),
		Status:    monthStatus(f.Status),
		PnLSource: pnlSource(f.PnLSource),
	}

	var err error
	if in.StartingCapital, err = parseCurrency("starting_capital", f.StartingCapital); err != nil {
		return MonthInput{}, err
	}
	if in.EndingCapital, err = parseCurrency("ending_capital", f.EndingCapital); err != nil {
		return MonthInput{}, err
	}
	if in.Deposits, err = parseCurrency("deposits", f.Deposits); err != nil {
		return MonthInput{}, err
	}
	if in.Withdrawals, err = parseCurrency("withdrawals", f.Withdrawals); err != nil {
		return MonthInput{}, err
	}

	if err := validate(in); err != nil {
		return MonthInput{}, err
	}
	return in, nil
}

// MonthInputFromRecord checks a month that did not come through the form,
// such as one read from a backup, against the rules ParseMonthForm applies.
func MonthInputFromRecord(rec journal.MonthRecord) (MonthInput, error) {
	in := MonthInput{
		Month:           strings.TrimSpace(rec.Month),
		StartingCapital: rec.StartingCapital,
		EndingCapital:   rec.EndingCapital,
		Deposits:        rec.Deposits,
		Withdrawals:     rec.Withdrawals,
		Notes:           strings.TrimSpace(rec.Notes),
		Status:          monthStatus(string(rec.Status)),
		PnLSource:       pnlSource(string(rec.PnLSource)),
	}
	if !finite(in.StartingCapital, in.EndingCapital, in.Deposits, in.Withdrawals) {
		return MonthInput{}, invalidField("amounts", "must be finite numbers")
	}
	if err := validate(in); err != nil {
		return MonthInput{}, err
	}
	return in, nil
}

func monthStatus(s string) journal.MonthStatus {
	if s = strings.ToLower(strings.TrimSpace(s)); s == "" {
		return journal.MonthStatusClosed
	}
	return journal.MonthStatus(s)
}

func pnlSource(s string) journal.PnLSource {
	if s = strings.ToLower(strings.TrimSpace(s)); s == "" {
		return journal.PnLSourceManual
	}
	return journal.PnLSource(s)
}

// Record builds the journal record for in with derived metrics.
func (in MonthInput) Record(id string) journal.MonthRecord {
	return journal.CreateMonthRecord(
		id, in.Month,
		in.StartingCapital, in.EndingCapital, in.Deposits, in.Withdrawals,
		in.Notes, in.Status, in.PnLSource,
	)
}
