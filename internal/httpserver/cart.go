package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var in addItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	qty, err := h.deps.CartSvc.AddItem(c.Request.Context(), c.Param("userID"), in.ProductID, in.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quantity": qty})
}

type updateLineRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *handlers) updateCartLine(c *gin.Context) {
	var in updateLineRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	err := h.deps.CartSvc.UpdateQuantity(c.Request.Context(), c.Param("userID"), c.Param("lineID"), in.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	okResponse(c)
}

func (h *handlers) removeCartLine(c *gin.Context) {
	err := h.deps.CartSvc.RemoveItem(c.Request.Context(), c.Param("userID"), c.Param("lineID"))
	if err != nil {
		respondError(c, err)
		return
	}
	okResponse(c)
}

type cartResponse struct {
	Lines         []domain.CartViewLine `json:"lines"`
	SubtotalCents int64                 `json:"subtotalCents"`
	Subtotal      string                `json:"subtotal"`
}

func (h *handlers) getCart(c *gin.Context) {
	view, err := h.deps.CartSvc.Get(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	lines := view.Lines
	if lines == nil {
		lines = []domain.CartViewLine{}
	}
	c.JSON(http.StatusOK, cartResponse{
		Lines:         lines,
		SubtotalCents: view.SubtotalCents,
		Subtotal:      domain.FormatCents(view.SubtotalCents),
	})
}
