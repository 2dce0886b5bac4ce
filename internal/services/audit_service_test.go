package services

import (
	"encoding/json"
	"testing"

	"tradelog/internal/models"
	"tradelog/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log("u1", "CREATE_MONTH", "month", "m1", "127.0.0.1", map[string]interface{}{"month": "2025-01", "net_profit_loss": 250.5})
	svc.Log("u1", "DELETE_TRADE", "trade", "t1", "127.0.0.1", nil)
	svc.Log("u2", "REPLACE_JOURNAL", "backup", "", "", map[string]interface{}{"months": 3})

	var entries []models.AuditLog
	if err := db.Where("user_id = ?", "u1").Order("created_at ASC").Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit logs: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID == "" || entries[0].ResourceID != "m1" || entries[0].Action != "CREATE_MONTH" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	// numbers come back as json.Number
	if entries[0].Changes["month"] != "2025-01" || entries[0].Changes["net_profit_loss"] != json.Number("250.5") {
		t.Errorf("unexpected changes: %v", entries[0].Changes)
	}
	if len(entries[1].Changes) != 0 {
		t.Errorf("expected no changes, got %v", entries[1].Changes)
	}
}
