package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/analysis [options]
func OptionsBudgetAnalysis(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get budget analysis
// @Description	Returns the analysis of a budget. Spending is compared to the allocations per category, projected for the whole period and summarized.
// @Description	Without from and until, the period of the budget is analyzed.
// @Tags			Budgets
// @Produce		json
// @Success		200					{object}	AnalysisResponse
// @Failure		400					{object}	AnalysisResponse
// @Failure		404					{object}	AnalysisResponse
// @Failure		500					{object}	AnalysisResponse
// @Param			id					path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			from				query		string	false	"First day of the period, YYYY-MM-DD. Defaults to the start of the budget"
// @Param			until				query		string	false	"Last day of the period, YYYY-MM-DD. Defaults to the end of the budget"
// @Param			month				query		string	false	"Analyze this calendar month, YYYY-MM. Can not be combined with from or until"
// @Param			includeCancelled	query		bool	false	"Count cancelled transactions, too"
// @Param			excludePending		query		bool	false	"Do not count pending transactions"
// @Param			today				query		string	false	"Reference day for elapsed and remaining days, YYYY-MM-DD. Defaults to the current day"
// @Router			/v1/budgets/{id}/analysis [get]
func GetBudgetAnalysis(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	var filter AnalysisQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	query, err := filter.query()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	report, err := reportService.Analyze(c.Request.Context(), models.DB, uri.ID.UUID, query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	data := newAnalysis(c, report)
	c.JSON(http.StatusOK, AnalysisResponse{Data: &data})
}
