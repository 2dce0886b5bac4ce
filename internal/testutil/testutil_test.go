package testutil_test

import (
	"fmt"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/internal/errors"
	"tradelog/internal/journal"
	"tradelog/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"month_records", "trades", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	testutil.CreateTestMonth(t, first, "u1", "2025-01", 100, 110)

	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	var count int64
	if err := second.Table("month_records").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected a fresh database, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userID := testutil.NewUserID()

	month := testutil.CreateTestMonth(t, db, userID, "2025-03", 1000, 1100)
	if month.ID == "" {
		t.Fatal("month should have an ID")
	}
	if month.NetProfitLoss != 100 || month.MonthName != "March" {
		t.Errorf("unexpected month fixture: net=%v name=%s", month.NetProfitLoss, month.MonthName)
	}

	closed := testutil.CreateTestClosedTrade(t, db, userID, "AAPL", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 25)
	if closed.PnL == nil || *closed.PnL != 25 {
		t.Errorf("expected stored pnl 25, got %v", closed.PnL)
	}
	if closed.MonthKey != "2025-03" || closed.Status != journal.TradeStatusClosed {
		t.Errorf("unexpected closed trade fixture: %s %s", closed.MonthKey, closed.Status)
	}

	open := testutil.CreateTestOpenTrade(t, db, userID, "MSFT", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC))
	if open.PnL != nil || open.ExitDate != nil {
		t.Error("open trade should have no exit data")
	}
	if open.MonthKey != "2025-04" {
		t.Errorf("expected entry month key, got %s", open.MonthKey)
	}
}

func TestAssertAppError(t *testing.T) {
	appErr := testutil.AssertAppError(t, errors.WithMessage(errors.ErrNotFound, "no such month"), "NOT_FOUND")
	assert.Equal(t, "no such month", appErr.Message)
	testutil.AssertAppError(t, errors.Wrap(errors.ErrInternalServer, nil), "INTERNAL_ERROR")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertFloat(t *testing.T) {
	testutil.AssertFloat(t, "sum", 0.1+0.2, 0.3)
	testutil.AssertFloat(t, "infinite", math.Inf(1), math.Inf(1))
}

// recorder collects failures instead of failing the enclosing test.
type recorder struct {
	failed bool
	msgs   []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() {
	r.failed = true
	runtime.Goexit()
}

// run calls fn on a fresh recorder in its own goroutine so FailNow can stop it.
func run(fn func(r *recorder)) *recorder {
	r := &recorder{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(r)
	}()
	<-done
	return r
}

func TestAssertionsReportFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *recorder)
	}{
		{"nil error", func(r *recorder) { testutil.AssertAppError(r, nil, "NOT_FOUND") }},
		{"plain error", func(r *recorder) { testutil.AssertAppError(r, fmt.Errorf("boom"), "NOT_FOUND") }},
		{"wrong code", func(r *recorder) { testutil.AssertAppError(r, errors.ErrInvalidInput, "NOT_FOUND") }},
		{"unexpected error", func(r *recorder) { testutil.AssertNoError(r, fmt.Errorf("boom")) }},
		{"float off", func(r *recorder) { testutil.AssertFloat(r, "pnl", 10.001, 10) }},
		{"infinity mismatch", func(r *recorder) { testutil.AssertFloat(r, "factor", math.Inf(1), 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(tt.fn)
			require.True(t, r.failed, "expected the assertion to fail")
			assert.NotEmpty(t, r.msgs)
		})
	}
}
