package api

import (
	"errors"
	"net/http"

	reqdto "kartly-api/internal/handler/dto/request"
	"kartly-api/internal/handler/httperr"
	"kartly-api/internal/handler/middleware"
	"kartly-api/internal/usecase/commands"
	"kartly-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminOrderHandler struct {
	adminCommands commands.AdminOrderCommands
	orderQueries  queries.OrderQueries
}

func NewAdminOrderHandler(adminCommands commands.AdminOrderCommands, orderQueries queries.OrderQueries) *AdminOrderHandler {
	return &AdminOrderHandler{
		adminCommands: adminCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary List all orders
// @Description Back-office list of every order, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.OrderView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/orders [get]
func (h *AdminOrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orderQueries.ListAllOrders(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if orders == nil {
		orders = []*queries.OrderView{}
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Update order status
// @Description Apply a review transition to an order
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status update"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (h *AdminOrderHandler) UpdateOrderStatus(c *gin.Context) {
	reviewer, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.UpdateOrderStatus(c.Request.Context(), reviewer, orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrStatusTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid status transition",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order status",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
