package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/model"
)

type periodOptionsResponse struct {
	Months       []string `json:"months"`
	Years        []string `json:"years"`
	DefaultMonth string   `json:"defaultMonth"`
	DefaultYear  string   `json:"defaultYear"`
}

// ListPeriodOptions returns the enumerated month and year choices.
// GET /api/periods
func (h *Handler) ListPeriodOptions(c *gin.Context) {
	c.JSON(http.StatusOK, periodOptionsResponse{
		Months:       model.Months,
		Years:        model.Years,
		DefaultMonth: model.DefaultMonth,
		DefaultYear:  model.DefaultYear,
	})
}

type selectPeriodRequest struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

type selectPeriodResponse struct {
	Month       string `json:"month"`
	Year        string `json:"year"`
	TargetMonth string `json:"targetMonth"`
}

// SelectPeriod stores the period selection in the session. Both values
// are constrained to the enumerations, so a well-behaved client has no
// failure mode here.
// POST /api/period
func (h *Handler) SelectPeriod(c *gin.Context) {
	var req selectPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if !model.ValidMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mês inválido"})
		return
	}
	if !model.ValidYear(req.Year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ano inválido"})
		return
	}

	period := model.Period{Month: req.Month, Year: req.Year}
	h.session(c).SetPeriod(period)

	c.JSON(http.StatusOK, selectPeriodResponse{
		Month:       period.Month,
		Year:        period.Year,
		TargetMonth: period.TargetMonth(),
	})
}
