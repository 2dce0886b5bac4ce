package integration

import (
	"math"
	"net/http"
	"testing"

	"tradelog/internal/models"
)

func TestMonthFlow_CRUDAndOverallStats(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	janID := app.createMonth(t, token, `{"month":"2025-01","starting_capital":"$10,000","ending_capital":"10,500"}`)
	app.createMonth(t, token, `{"month":"2025-02","starting_capital":10500,"ending_capital":10200,"deposits":"100"}`)
	app.createMonth(t, token, `{"month":"2024-12","starting_capital":9000,"ending_capital":10000,"withdrawals":0}`)

	// Duplicate month is rejected
	rec := app.request("POST", "/api/v1/months", `{"month":"2025-01","starting_capital":1,"ending_capital":2}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// List is most recent month first
	rec = app.request("GET", "/api/v1/months?page=1&page_size=2", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	page := parseJSON(t, rec)
	if page["total_items"].(float64) != 3 || page["total_pages"].(float64) != 2 {
		t.Errorf("unexpected paging: %v", page)
	}
	data := page["data"].([]interface{})
	if first := data[0].(map[string]interface{}); first["month"] != "2025-02" {
		t.Errorf("expected 2025-02 first, got %v", first["month"])
	}

	// Year filter
	rec = app.request("GET", "/api/v1/months?year=2024", "", token)
	if got := parseJSON(t, rec)["total_items"].(float64); got != 1 {
		t.Errorf("expected 1 month in 2024, got %v", got)
	}

	// Months: +500, -400 (net of the 100 deposit), +1000
	overall := app.getStats(t, token, "overall")
	if overall["total_profit_loss"].(float64) != 1100 {
		t.Errorf("expected total 1100, got %v", overall["total_profit_loss"])
	}
	if pf := overall["profit_factor"].(float64); pf != 3.75 {
		t.Errorf("expected profit factor 3.75, got %v", pf)
	}
	if best := overall["best_month"].(map[string]interface{}); best["month"] != "2024-12" {
		t.Errorf("expected best month 2024-12, got %v", best["month"])
	}

	// Update recomputes derived fields
	rec = app.request("PUT", "/api/v1/months/"+janID,
		`{"month":"2025-01","starting_capital":10000,"ending_capital":9000,"notes":"rough month"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	month := parseJSON(t, rec)["month"].(map[string]interface{})
	if month["net_profit_loss"].(float64) != -1000 || month["return_percentage"].(float64) != -10 {
		t.Errorf("unexpected recomputed month: %v", month)
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/months/"+janID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	overall = app.getStats(t, token, "overall")
	if overall["total_months"].(float64) != 2 {
		t.Errorf("expected 2 months after delete, got %v", overall["total_months"])
	}

	// Mutations are audited
	var audits int64
	app.DB.Model(&models.AuditLog{}).Count(&audits)
	if audits != 5 {
		t.Errorf("expected 5 audit entries, got %d", audits)
	}
}

func TestTradeFlow_CombinedStatsPreferTrades(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	app.createMonth(t, token, `{"month":"2025-01","starting_capital":10000,"ending_capital":10500}`)
	app.createMonth(t, token, `{"month":"2025-02","starting_capital":10500,"ending_capital":11000}`)

	app.createTrade(t, token, `{"symbol":"aapl","trade_type":"long","status":"closed","entry_date":"2025-02-03",
		"entry_price":100,"quantity":1,"exit_date":"2025-02-10","exit_price":130,"tags":["swing"]}`)
	openID := app.createTrade(t, token, `{"symbol":"msft","trade_type":"short","entry_date":"2025-02-12",
		"entry_price":"50","quantity":"2","tags":["Earnings"]}`)
	app.createTrade(t, token, `{"symbol":"tsla","trade_type":"long","entry_date":"2025-02-25","entry_price":200,"quantity":1}`)

	// Filters
	rec := app.request("GET", "/api/v1/trades?status=open", "", token)
	if got := parseJSON(t, rec)["total_items"].(float64); got != 2 {
		t.Errorf("expected 2 open trades, got %v", got)
	}
	rec = app.request("GET", "/api/v1/trades?tag=earnings", "", token)
	if got := parseJSON(t, rec)["total_items"].(float64); got != 1 {
		t.Errorf("expected 1 earnings trade, got %v", got)
	}

	// Close the short at a loss: (50 - 60) * 2
	rec = app.request("PUT", "/api/v1/trades/"+openID, `{"symbol":"MSFT","trade_type":"short","status":"closed",
		"entry_date":"2025-02-12","entry_price":50,"quantity":2,"exit_date":"2025-02-20","exit_price":60,"tags":["earnings"]}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	trade := parseJSON(t, rec)["trade"].(map[string]interface{})
	if trade["pnl"].(float64) != -20 || trade["is_win"] != false {
		t.Errorf("unexpected closed trade: %v", trade)
	}

	// Closing without exit data is rejected
	rec = app.request("PUT", "/api/v1/trades/"+openID,
		`{"symbol":"MSFT","trade_type":"short","status":"closed","entry_date":"2025-02-12","entry_price":50,"quantity":2}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Manual months alone: 500 + 500
	if total := app.getStats(t, token, "overall")["total_profit_loss"].(float64); total != 1000 {
		t.Errorf("expected overall 1000, got %v", total)
	}

	// February comes from its closed trades: 500 + (30 - 20)
	combined := app.getStats(t, token, "combined")
	if combined["total_profit_loss"].(float64) != 510 {
		t.Errorf("expected combined 510, got %v", combined["total_profit_loss"])
	}
	if combined["total_months"].(float64) != 2 || combined["trade_total_pnl"].(float64) != 10 {
		t.Errorf("unexpected combined stats: %v", combined)
	}

	tradeStats := app.getStats(t, token, "trades")
	if tradeStats["total_trades"].(float64) != 2 || tradeStats["win_rate"].(float64) != 50 {
		t.Errorf("unexpected trade counts: %v", tradeStats)
	}
	if pf := tradeStats["profit_factor"].(float64); math.Abs(pf-1.5) > 1e-9 {
		t.Errorf("expected profit factor 1.5, got %v", pf)
	}
	if tradeStats["current_streak"].(float64) != -1 || tradeStats["longest_win_streak"].(float64) != 1 {
		t.Errorf("unexpected streaks: %v", tradeStats)
	}
}

func TestStatsFlow_AnalyticsViews(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	app.createMonth(t, token, `{"month":"2024-11","starting_capital":1000,"ending_capital":1100}`)
	app.createMonth(t, token, `{"month":"2025-01","starting_capital":1100,"ending_capital":1050}`)
	app.createTrade(t, token, `{"symbol":"NVDA","trade_type":"long","status":"closed","entry_date":"2025-01-02",
		"entry_price":10,"quantity":10,"exit_date":"2025-01-06","exit_price":12}`)
	app.createTrade(t, token, `{"symbol":"NVDA","trade_type":"long","status":"closed","entry_date":"2025-01-03",
		"entry_price":10,"quantity":10,"exit_date":"2025-01-06","exit_price":9}`)

	rec := app.request("GET", "/api/v1/stats/calendar?month=2025-01", "", token)
	days := parseJSON(t, rec)["days"].([]interface{})
	if len(days) != 1 {
		t.Fatalf("expected 1 calendar day, got %d", len(days))
	}
	day := days[0].(map[string]interface{})
	if day["date"] != "2025-01-06" || day["pnl"].(float64) != 10 || day["trades"].(float64) != 2 {
		t.Errorf("unexpected day: %v", day)
	}

	rec = app.request("GET", "/api/v1/stats/equity", "", token)
	points := parseJSON(t, rec)["points"].([]interface{})
	if last := points[len(points)-1].(map[string]interface{}); last["cumulative"].(float64) != 50 {
		t.Errorf("expected cumulative 50, got %v", last["cumulative"])
	}

	rec = app.request("GET", "/api/v1/stats/yearly", "", token)
	if years := parseJSON(t, rec)["years"].([]interface{}); len(years) != 2 {
		t.Errorf("expected 2 years, got %d", len(years))
	}

	rec = app.request("GET", "/api/v1/stats/symbols", "", token)
	symbols := parseJSON(t, rec)["symbols"].([]interface{})
	if len(symbols) != 1 || symbols[0].(map[string]interface{})["win_rate"].(float64) != 50 {
		t.Errorf("unexpected symbols: %v", symbols)
	}

	rec = app.request("GET", "/api/v1/stats/calendar?month=January", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad month, got %d", rec.Code)
	}
}
