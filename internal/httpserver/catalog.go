package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	catalogsvc "storefront/internal/service/catalog"
)

type productPayload struct {
	domain.Product
	Price string `json:"price"`
}

func toProductPayload(p domain.Product) productPayload {
	return productPayload{Product: p, Price: domain.FormatCents(p.PriceCents)}
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]productPayload, 0, len(products))
	for _, p := range products {
		out = append(out, toProductPayload(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.CatalogSvc.GetProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductPayload(*p))
}

func (h *handlers) saveProduct(c *gin.Context) {
	var in catalogsvc.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	p, err := h.deps.CatalogSvc.SaveProduct(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrValidation) {
			writeError(c, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductPayload(*p))
}

func (h *handlers) updateProduct(c *gin.Context) {
	var in catalogsvc.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	in.ID = c.Param("productID")
	p, err := h.deps.CatalogSvc.SaveProduct(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrValidation) {
			writeError(c, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductPayload(*p))
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.CatalogSvc.DeleteProduct(c.Request.Context(), c.Param("productID")); err != nil {
		respondError(c, err)
		return
	}
	okResponse(c)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CatalogSvc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *handlers) createCategory(c *gin.Context) {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	category, err := h.deps.CatalogSvc.CreateCategory(c.Request.Context(), in.Name)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrValidation) {
			writeError(c, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}
