package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/model"
	"github.com/victorhprada/excel-automation/internal/service/session"
)

// SlotStatus describes one upload position.
type SlotStatus struct {
	Uploaded bool    `json:"uploaded"`
	Filename string  `json:"filename,omitempty"`
	SizeKB   float64 `json:"sizeKB,omitempty"`
	Loaded   bool    `json:"loaded"`
}

// StatusResponse is the session snapshot.
type StatusResponse struct {
	Month       string     `json:"month"`
	Year        string     `json:"year"`
	TargetMonth string     `json:"targetMonth"`
	Processed   bool       `json:"processed"`
	Parceiro    SlotStatus `json:"parceiro"`
	Base        SlotStatus `json:"base"`
}

// GetStatus returns the current session state.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	sess := h.session(c)
	period := sess.Period()

	c.JSON(http.StatusOK, StatusResponse{
		Month:       period.Month,
		Year:        period.Year,
		TargetMonth: period.TargetMonth(),
		Processed:   sess.Processed(),
		Parceiro:    slotStatus(sess, model.SlotParceiro),
		Base:        slotStatus(sess, model.SlotBase),
	})
}

func slotStatus(sess *session.Session, slot model.Slot) SlotStatus {
	status := SlotStatus{
		Loaded: sess.Table(slot) != nil,
	}
	if up := sess.Upload(slot); up != nil {
		status.Uploaded = true
		status.Filename = up.Filename
		status.SizeKB = up.SizeKB()
	}
	return status
}
