package session

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/victorhprada/excel-automation/internal/model"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()

	sess := store.Create()
	if sess.ID == "" {
		t.Fatalf("session id is empty")
	}

	got, ok := store.Get(sess.ID)
	if !ok || got != sess {
		t.Fatalf("Get(%q) = %v, %v", sess.ID, got, ok)
	}
	if _, ok := store.Get("desconhecido"); ok {
		t.Fatalf("Get should miss for unknown id")
	}
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
}

func TestSession_Defaults(t *testing.T) {
	sess := NewStore().Create()

	if p := sess.Period(); p.TargetMonth() != "JAN.25" {
		t.Fatalf("default period = %q", p.TargetMonth())
	}
	if sess.Processed() {
		t.Fatalf("new session should not be processed")
	}
	if sess.Upload(model.SlotParceiro) != nil || sess.Table(model.SlotBase) != nil {
		t.Fatalf("new session should have no uploads or tables")
	}
}

func TestSession_ReuploadInvalidatesTable(t *testing.T) {
	sess := NewStore().Create()

	sess.SetUpload(model.SlotParceiro, &model.UploadedFile{Filename: "v1.xlsx"})
	sess.SetTable(model.SlotParceiro, &model.Table{Columns: []string{"A"}})

	if sess.Table(model.SlotParceiro) == nil {
		t.Fatalf("table should be set")
	}

	sess.SetUpload(model.SlotParceiro, &model.UploadedFile{Filename: "v2.xlsx"})
	if sess.Table(model.SlotParceiro) != nil {
		t.Fatalf("re-upload should invalidate the parsed table")
	}
	if _, ok := sess.Outcome(model.SlotParceiro); ok {
		t.Fatalf("re-upload should clear the slot outcome")
	}
}

func TestSession_RetainsBaseWorkbookUntilReupload(t *testing.T) {
	sess := NewStore().Create()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	sess.SetUpload(model.SlotBase, &model.UploadedFile{Filename: "base.xlsm"})
	sess.SetTable(model.SlotBase, &model.Table{Columns: []string{"A"}})
	sess.SetBaseWorkbook(f)

	if sess.BaseWorkbook() != f {
		t.Fatalf("BASE workbook should be retained")
	}

	sess.SetUpload(model.SlotBase, &model.UploadedFile{Filename: "base2.xlsm"})
	if sess.BaseWorkbook() != nil {
		t.Fatalf("re-upload should drop the retained workbook")
	}
}

func TestSession_FailureIsPerSlot(t *testing.T) {
	sess := NewStore().Create()

	sess.SetTable(model.SlotParceiro, &model.Table{Columns: []string{"A"}})
	sess.SetFailure(model.SlotBase, StatusUnreadable, "não foi possível ler")

	if sess.Table(model.SlotParceiro) == nil {
		t.Fatalf("PARCEIRO table should survive a BASE failure")
	}
	if sess.Table(model.SlotBase) != nil {
		t.Fatalf("failed BASE load must not leave a table")
	}

	outcome, ok := sess.Outcome(model.SlotBase)
	if !ok || outcome.Status != StatusUnreadable {
		t.Fatalf("BASE outcome = %+v, %v", outcome, ok)
	}
	if !sess.Processed() {
		t.Fatalf("session with one loaded table counts as processed")
	}
}
