package api

import (
	"errors"
	"net/http"

	"kartly-api/internal/domain/catalog"
	"kartly-api/internal/domain/loyalty"
	"kartly-api/internal/domain/order"
	reqdto "kartly-api/internal/handler/dto/request"
	resdto "kartly-api/internal/handler/dto/response"
	"kartly-api/internal/handler/httperr"
	"kartly-api/internal/handler/middleware"
	"kartly-api/internal/usecase/commands"
	"kartly-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Submit order
// @Description Submit an order with optional points redemption
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitOrderRequest true "Order request"
// @Success 200 {object} resdto.SubmitOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	var req reqdto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.SubmitOrder(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmitOrderResult(result))
}

// respondSubmitError maps the settlement flow's failures to the storefront's
// field-specific messages.
func (h *OrderHandler) respondSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrInvalidCustomerName):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer name",
		})
	case errors.Is(err, order.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email address",
		})
	case errors.Is(err, order.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid phone number. Must be 10 digits.",
		})
	case errors.Is(err, order.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address. Must be between 10 and 500 characters.",
		})
	case errors.Is(err, catalog.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid products list",
		})
	case errors.Is(err, catalog.ErrEmptyProductID), errors.Is(err, catalog.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product data",
		})
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product data",
		})
	case errors.Is(err, order.ErrNegativeTotal):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid total amount",
		})
	case errors.Is(err, loyalty.ErrNegativePoints):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Points cannot be negative",
		})
	case errors.Is(err, loyalty.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Insufficient points available",
		})
	case errors.Is(err, loyalty.ErrBelowMinimumRedemption):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Minimum 100 points required for redemption",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	case errors.Is(err, commands.ErrDatabaseOperationFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create order", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get user orders
// @Description List the current user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.OrderListItem
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	orders, err := h.orderQueries.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if orders == nil {
		orders = []*queries.OrderListItem{}
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Get order
// @Description Get one of the current user's orders by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetOrder(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
