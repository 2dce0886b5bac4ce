package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tradelog/internal/journal"
	"tradelog/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a unique user id (JWT subject) for a test.
func NewUserID() string {
	return fmt.Sprintf("user-%d", nextID())
}

// CreateTestMonth stores a closed manual month whose net P&L equals
// ending - starting.
func CreateTestMonth(t *testing.T, db *gorm.DB, userID, month string, starting, ending float64) *models.MonthRecord {
	t.Helper()

	rec := journal.CreateMonthRecord("", month, starting, ending, 0, 0, "",
		journal.MonthStatusClosed, journal.PnLSourceManual)
	row := models.NewMonthRecord(userID, rec)
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test month: %v", err)
	}
	return row
}

// CreateTestClosedTrade stores a long trade of one share closed on exit with
// the given P&L.
func CreateTestClosedTrade(t *testing.T, db *gorm.DB, userID, symbol string, exit time.Time, pnl float64) *models.Trade {
	t.Helper()

	info := journal.TradeInfo{
		Symbol:     symbol,
		Type:       journal.TradeTypeLong,
		EntryDate:  exit.AddDate(0, 0, -1),
		EntryPrice: 100,
		Quantity:   1,
		Tags:       []string{},
	}
	row := models.NewTrade(userID, journal.CloseTrade(info, exit, 100+pnl))
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test trade: %v", err)
	}
	return row
}

// CreateTestOpenTrade stores an open long trade entered on entry.
func CreateTestOpenTrade(t *testing.T, db *gorm.DB, userID, symbol string, entry time.Time) *models.Trade {
	t.Helper()

	row := models.NewTrade(userID, journal.OpenTrade{TradeInfo: journal.TradeInfo{
		Symbol:     symbol,
		Type:       journal.TradeTypeLong,
		EntryDate:  entry,
		EntryPrice: 50,
		Quantity:   2,
		Tags:       []string{"open"},
	}})
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test trade: %v", err)
	}
	return row
}
