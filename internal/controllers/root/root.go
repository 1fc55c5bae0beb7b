// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// AnalysisPath is the path of the analysis endpoint relative to the API
// root. {id} is the ID of the budget to analyze.
const AnalysisPath = "/v1/budgets/{id}/analysis"

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`              // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`                   // Healthz endpoint
	Version      string `json:"version" example:"https://example.com/api/version"`                   // Build information of the backend
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`                   // Prometheus metrics
	V1           string `json:"v1" example:"https://example.com/api/v1"`                             // Index of the v1 API
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`                // Budget collection
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`      // Transaction collection
	Analysis     string `json:"analysis" example:"https://example.com/api/v1/budgets/{id}/analysis"` // Template for the analysis of a budget, {id} is the budget ID
}

// NewLinks returns the links for an API served at base.
func NewLinks(base string) Links {
	return Links{
		Docs:         base + "/docs/index.html",
		Healthz:      base + "/healthz",
		Version:      base + "/version",
		Metrics:      base + "/metrics",
		V1:           base + "/v1",
		Budgets:      base + "/v1/budgets",
		Transactions: base + "/v1/transactions",
		Analysis:     base + AnalysisPath,
	}
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, linking the collections and the budget analysis
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: NewLinks(c.GetString(string(models.DBContextURL))),
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
