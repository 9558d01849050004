package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

func (h *handlers) placeOrder(c *gin.Context) {
	orderID, err := h.deps.CheckoutSvc.PlaceOrder(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
}

type orderPayload struct {
	domain.Order
	Total string `json:"total"`
}

func toOrderPayload(o domain.Order) orderPayload {
	return orderPayload{Order: o, Total: domain.FormatCents(o.TotalCents)}
}

func (h *handlers) orderDetail(c *gin.Context) {
	o, err := h.deps.OrderSvc.Detail(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderPayload(*o))
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.OrderSvc.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]orderPayload, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderPayload(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var in statusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	err := h.deps.OrderSvc.UpdateStatus(c.Request.Context(), c.Param("orderID"), in.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	okResponse(c)
}

func (h *handlers) deleteOrder(c *gin.Context) {
	if err := h.deps.OrderSvc.Delete(c.Request.Context(), c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}
	okResponse(c)
}
