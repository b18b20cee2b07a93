package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/model"
)

// TablePreview is one loaded table, rendered as-is: every row, every
// column, in source order.
type TablePreview struct {
	Slot        string     `json:"slot"`
	Label       string     `json:"label"`
	Filename    string     `json:"filename"`
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	RowCount    int        `json:"rowCount"`
	ColumnCount int        `json:"columnCount"`
	SheetNames  []string   `json:"sheetNames,omitempty"`
}

// PreviewResponse carries whatever tables are loaded. With none loaded
// the list is empty and that is not an error.
type PreviewResponse struct {
	TargetMonth string         `json:"targetMonth"`
	Processed   bool           `json:"processed"`
	Tables      []TablePreview `json:"tables"`
}

// GetPreview returns the loaded tables for display.
// GET /api/preview
func (h *Handler) GetPreview(c *gin.Context) {
	sess := h.session(c)

	resp := PreviewResponse{
		TargetMonth: sess.Period().TargetMonth(),
		Processed:   sess.Processed(),
		Tables:      []TablePreview{},
	}

	for _, slot := range model.Slots {
		table := sess.Table(slot)
		if table == nil {
			continue
		}
		preview := TablePreview{
			Slot:        string(slot),
			Label:       slot.Label(),
			Columns:     table.Columns,
			Rows:        table.Rows,
			RowCount:    table.RowCount(),
			ColumnCount: table.ColumnCount(),
		}
		if up := sess.Upload(slot); up != nil {
			preview.Filename = up.Filename
		}
		if slot == model.SlotBase {
			preview.SheetNames = table.SheetNames
		}
		resp.Tables = append(resp.Tables, preview)
	}

	c.JSON(http.StatusOK, resp)
}
