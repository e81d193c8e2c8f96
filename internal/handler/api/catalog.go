package api

import (
	"errors"
	"net/http"

	"kartly-api/internal/handler/httperr"
	"kartly-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List products
// @Description List the product catalog
// @Tags products
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogQueries.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if products == nil {
		products = []*queries.ProductView{}
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Description Get a product by its slug ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogQueries.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, product)
}
