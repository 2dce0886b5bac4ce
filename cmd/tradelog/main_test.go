package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/internal/journal"
	"tradelog/internal/middleware"
	"tradelog/internal/services"
)

func TestPrintOverall(t *testing.T) {
	best := journal.CreateMonthRecord("m1", "2025-03", 1000, 1200, 0, 0, "", journal.MonthStatusClosed, journal.PnLSourceManual)
	stats := journal.OverallStats{
		TotalProfitLoss:  200,
		TotalMonths:      1,
		ProfitableMonths: 1,
		WinRate:          100,
		AverageReturn:    20,
		ProfitFactor:     journal.ProfitFactor(math.Inf(1)),
		BestMonth:        &best,
	}

	var buf bytes.Buffer
	printOverall(&buf, stats)
	out := buf.String()

	assert.Contains(t, out, "Profit factor\t∞")
	assert.Contains(t, out, "Best month\t2025-03 (200.00)")
	assert.Contains(t, out, "Worst month\t-")
	assert.Contains(t, out, "Win rate\t100.00%")
}

func TestPrintYearly(t *testing.T) {
	years := []journal.YearSummary{
		{Year: 2024, Stats: journal.OverallStats{TotalMonths: 2, TotalProfitLoss: -50, ProfitFactor: 0.5}},
		{Year: 2025, Stats: journal.OverallStats{TotalMonths: 1, TotalProfitLoss: 10, WinRate: 100, ProfitFactor: journal.ProfitFactor(math.Inf(1))}},
	}

	var buf bytes.Buffer
	printYearly(&buf, years)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "2024\t2\t-50.00\t0.00%\t0.50", lines[1])
	assert.Equal(t, "2025\t1\t10.00\t100.00%\t∞", lines[2])
}

func TestRenderJSON(t *testing.T) {
	statsJSON = true
	t.Cleanup(func() { statsJSON = false })

	var buf bytes.Buffer
	stats := journal.TradeStats{TotalTrades: 1, ProfitFactor: journal.ProfitFactor(math.Inf(1))}
	require.NoError(t, render(&buf, stats, nil))

	assert.Contains(t, buf.String(), `"profit_factor": "∞"`)
	assert.Contains(t, buf.String(), `"best_trade": null`)
}

func TestBackupDocumentRoundTrip(t *testing.T) {
	month := journal.CreateMonthRecord("m1", "2025-01", 100, 110, 0, 0, "", journal.MonthStatusClosed, journal.PnLSourceManual)
	backup := &services.Backup{
		Version: services.BackupVersion,
		Months:  []journal.MonthRecord{month},
		Trades:  []journal.TradeRecord{},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBackup(&buf, backup))

	decoded, err := readBackup(&buf)
	require.NoError(t, err)
	assert.Equal(t, services.BackupVersion, decoded.Version)
	require.Len(t, decoded.Months, 1)
	assert.Equal(t, "2025-01", decoded.Months[0].Month)
	assert.InDelta(t, 10.0, decoded.Months[0].NetProfitLoss, 1e-9)

	_, err = readBackup(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestWriteBackupFile(t *testing.T) {
	backup := &services.Backup{Version: services.BackupVersion, Months: []journal.MonthRecord{}, Trades: []journal.TradeRecord{}}
	path := filepath.Join(t.TempDir(), "journal.json")

	require.NoError(t, writeBackupFile(path, backup))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := readBackup(f)
	require.NoError(t, err)
	assert.Equal(t, services.BackupVersion, decoded.Version)

	err = writeBackupFile(filepath.Join(t.TempDir(), "missing", "journal.json"), backup)
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	t.Setenv("JWT_ISSUER", "tradelog-test")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--user", "user-42", "--ttl", "1h"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		userID = ""
		tokenTTL = 0
	})

	require.NoError(t, rootCmd.Execute())

	claims, err := middleware.ParseAccessToken(strings.TrimSpace(out.String()), []byte("cli-test-secret"), "tradelog-test")
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
}
