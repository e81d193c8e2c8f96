package api

import (
	"net/http"

	"kartly-api/internal/handler/httperr"
	"kartly-api/internal/handler/middleware"
	"kartly-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	pointsQueries queries.PointsQueries
}

func NewPointsHandler(pointsQueries queries.PointsQueries) *PointsHandler {
	return &PointsHandler{pointsQueries: pointsQueries}
}

// @Summary Get my points
// @Description Get the current user's points balance and tier
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.PointsView
// @Failure 401 {object} map[string]string
// @Router /points/me [get]
func (h *PointsHandler) GetMyPoints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	view, err := h.pointsQueries.GetMyPoints(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List my points transactions
// @Description List the current user's points ledger, newest first
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PointsTransactionView
// @Failure 401 {object} map[string]string
// @Router /points/transactions [get]
func (h *PointsHandler) ListMyTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	transactions, err := h.pointsQueries.ListMyTransactions(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if transactions == nil {
		transactions = []*queries.PointsTransactionView{}
	}
	c.JSON(http.StatusOK, transactions)
}
