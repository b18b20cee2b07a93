package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/model"
	"github.com/victorhprada/excel-automation/internal/service/excel"
	"github.com/victorhprada/excel-automation/internal/service/session"
)

// SlotResult is the outcome of loading one slot.
type SlotResult struct {
	Slot       string `json:"slot"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	RowCount   int    `json:"rowCount,omitempty"`
	SheetCount int    `json:"sheetCount,omitempty"`
}

// ProcessResponse reports both slots. The slots are independent: one
// failing does not stop the other from loading.
type ProcessResponse struct {
	Processed bool         `json:"processed"`
	Results   []SlotResult `json:"results"`
}

// Process is the explicit "start processing" trigger: parse each
// uploaded workbook into a table and make the preview available.
// POST /api/process
func (h *Handler) Process(c *gin.Context) {
	sess := h.session(c)

	results := make([]SlotResult, 0, len(model.Slots))
	for _, slot := range model.Slots {
		results = append(results, h.loadSlot(sess, slot))
	}

	c.JSON(http.StatusOK, ProcessResponse{
		Processed: sess.Processed(),
		Results:   results,
	})
}

func (h *Handler) loadSlot(sess *session.Session, slot model.Slot) SlotResult {
	result := SlotResult{Slot: string(slot)}

	upload := sess.Upload(slot)
	if upload == nil {
		result.Status = session.StatusMissing
		result.Message = fmt.Sprintf("Arquivo %s não encontrado. Faça o upload antes de processar.", slot.Label())
		sess.SetFailure(slot, result.Status, result.Message)
		return result
	}

	// Formulas only matter for BASE, which may be macro-enabled.
	loader := excel.NewLoader(slot == model.SlotBase)
	if err := loader.Open(bytes.NewReader(upload.Data)); err != nil {
		result.Status = session.StatusUnreadable
		result.Message = fmt.Sprintf("Não foi possível ler o arquivo %s (%s).", slot.Label(), upload.Filename)
		sess.SetFailure(slot, result.Status, result.Message)
		return result
	}

	table, err := loader.Table()
	if err != nil {
		result.Status = session.StatusUnreadable
		result.Message = fmt.Sprintf("Não foi possível ler o arquivo %s (%s).", slot.Label(), upload.Filename)
		sess.SetFailure(slot, result.Status, result.Message)
		_ = loader.Close()
		return result
	}

	sess.SetTable(slot, table)
	if slot == model.SlotBase {
		// Keep the workbook object so formulas survive past parsing.
		sess.SetBaseWorkbook(loader.Workbook())
	} else {
		_ = loader.Close()
	}

	result.Status = session.StatusOK
	result.RowCount = table.RowCount()
	result.SheetCount = len(table.SheetNames)
	return result
}
