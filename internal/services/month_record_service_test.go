package services

import (
	"testing"

	"tradelog/internal/forms"
	"tradelog/internal/journal"
	"tradelog/internal/pagination"
	"tradelog/internal/testutil"
)

func monthInput(month string, starting, ending float64) forms.MonthInput {
	return forms.MonthInput{
		Month:           month,
		StartingCapital: starting,
		EndingCapital:   ending,
		Status:          journal.MonthStatusClosed,
		PnLSource:       journal.PnLSourceManual,
	}
}

func TestCreateMonth(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthRecordService(db)

		in := monthInput("2025-04", 5000, 5600)
		in.Deposits = 200
		rec, err := svc.CreateMonth("u1", in)
		testutil.AssertNoError(t, err)

		if rec.ID == "" {
			t.Fatal("expected an ID")
		}
		if rec.GrossChange != 600 || rec.NetProfitLoss != 400 || rec.ReturnPercentage != 8 {
			t.Errorf("unexpected metrics: %+v", rec.Metrics())
		}
		if rec.Year != 2025 || rec.MonthName != "April" {
			t.Errorf("unexpected year/name: %d %s", rec.Year, rec.MonthName)
		}
	})

	t.Run("duplicate_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthRecordService(db)

		_, err := svc.CreateMonth("u1", monthInput("2025-04", 100, 110))
		testutil.AssertNoError(t, err)

		_, err = svc.CreateMonth("u1", monthInput("2025-04", 100, 120))
		testutil.AssertAppError(t, err, "DUPLICATE_MONTH")
	})

	t.Run("same_month_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthRecordService(db)

		_, err := svc.CreateMonth("u1", monthInput("2025-04", 100, 110))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateMonth("u2", monthInput("2025-04", 100, 110))
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserMonths(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMonthRecordService(db)

	for _, key := range []string{"2024-11", "2025-01", "2024-12", "2025-02"} {
		testutil.CreateTestMonth(t, db, "u1", key, 100, 110)
	}
	testutil.CreateTestMonth(t, db, "u2", "2025-03", 100, 110)

	t.Run("newest_first", func(t *testing.T) {
		page, err := svc.GetUserMonths("u1", pagination.PageRequest{Page: 1, PageSize: 3}, MonthFilter{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 4 || page.TotalPages != 2 {
			t.Errorf("unexpected totals: %d items, %d pages", page.TotalItems, page.TotalPages)
		}
		if len(page.Data) != 3 || page.Data[0].Month != "2025-02" || page.Data[2].Month != "2024-12" {
			t.Errorf("unexpected order: %+v", page.Data)
		}
	})

	t.Run("year_filter", func(t *testing.T) {
		year := 2024
		page, err := svc.GetUserMonths("u1", pagination.PageRequest{}, MonthFilter{Year: &year})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 months in 2024, got %d", page.TotalItems)
		}
	})

	t.Run("all_in_calendar_order", func(t *testing.T) {
		all, err := svc.GetAllMonths("u1")
		testutil.AssertNoError(t, err)

		if len(all) != 4 || all[0].Month != "2024-11" || all[3].Month != "2025-02" {
			t.Errorf("unexpected months: %+v", all)
		}
	})
}

func TestUpdateMonth(t *testing.T) {
	t.Run("recomputes_metrics", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthRecordService(db)
		row := testutil.CreateTestMonth(t, db, "u1", "2025-05", 1000, 1100)

		in := monthInput("2025-05", 1000, 900)
		in.Withdrawals = 50
		in.Status = journal.MonthStatusActive
		rec, err := svc.UpdateMonth("u1", row.ID, in)
		testutil.AssertNoError(t, err)

		if rec.NetProfitLoss != -50 || rec.ReturnPercentage != -5 {
			t.Errorf("unexpected metrics: %+v", rec.Metrics())
		}
		if rec.Status != journal.MonthStatusActive {
			t.Errorf("expected active, got %s", rec.Status)
		}

		stored, err := svc.GetMonthByID("u1", row.ID)
		testutil.AssertNoError(t, err)
		if stored.NetProfitLoss != -50 || stored.Withdrawals != 50 {
			t.Errorf("update not persisted: %+v", stored)
		}
	})

	t.Run("move_to_taken_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthRecordService(db)
		testutil.CreateTestMonth(t, db, "u1", "2025-05", 1000, 1100)
		row := testutil.CreateTestMonth(t, db, "u1", "2025-06", 1100, 1200)

		_, err := svc.UpdateMonth("u1", row.ID, monthInput("2025-05", 1, 2))
		testutil.AssertAppError(t, err, "DUPLICATE_MONTH")
	})

	t.Run("other_users_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthRecordService(db)
		row := testutil.CreateTestMonth(t, db, "u1", "2025-05", 1000, 1100)

		_, err := svc.UpdateMonth("u2", row.ID, monthInput("2025-05", 1, 2))
		testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")
	})
}

func TestDeleteMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMonthRecordService(db)
	row := testutil.CreateTestMonth(t, db, "u1", "2025-05", 1000, 1100)

	testutil.AssertAppError(t, svc.DeleteMonth("u2", row.ID), "MONTH_NOT_FOUND")
	testutil.AssertNoError(t, svc.DeleteMonth("u1", row.ID))

	_, err := svc.GetMonthByID("u1", row.ID)
	testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")

	// the month key is free again
	_, err = svc.CreateMonth("u1", monthInput("2025-05", 1, 2))
	testutil.AssertNoError(t, err)
}
