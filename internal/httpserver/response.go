package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func okResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// respondError maps domain errors onto the wire taxonomy. The checkout
// consistency failures are all 409: they mean the cart moved under the
// caller and a retry against the fresh cart is the right move. Anything
// unmapped is reported as a generic storage failure with no detail leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrInvalidProduct):
		writeError(c, http.StatusUnprocessableEntity, "invalid_product", "product does not exist")
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeError(c, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
	case errors.Is(err, domain.ErrNotOwner):
		writeError(c, http.StatusForbidden, "not_owner", "cart line does not belong to this user")
	case errors.Is(err, domain.ErrEmptyCart):
		writeError(c, http.StatusConflict, "empty_cart", "your cart is empty; it may have already been checked out")
	case errors.Is(err, domain.ErrStaleCartItem):
		writeError(c, http.StatusConflict, "stale_cart_item", "an item in your cart is no longer available; please review your cart and try again")
	case errors.Is(err, domain.ErrCartChanged):
		writeError(c, http.StatusConflict, "cart_changed", "your cart changed while placing the order; please review it and try again")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(c, http.StatusBadRequest, "invalid_status", "status must be one of pending, paid, shipped, delivered, cancelled")
	default:
		writeError(c, http.StatusInternalServerError, "storage_failure", "error processing your request, please try again")
	}
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}
