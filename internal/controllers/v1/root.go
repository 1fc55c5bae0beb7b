package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/gin-gonic/gin"
)

// reportService computes the analyses. It is replaced by RegisterRoutes.
var reportService = reports.NewService(0)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
// The analyses are computed by the service passed in.
func RegisterRoutes(r *gin.RouterGroup, service *reports.Service) {
	reportService = service

	RegisterRootRoutes(r)
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterAllocationRoutes(r.Group("/allocations"))
	RegisterTransactionRoutes(r.Group("/transactions"))
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of Budget collection endpoint
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations"`   // URL of Allocation collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:      url + "/v1/budgets",
			Allocations:  url + "/v1/allocations",
			Transactions: url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
