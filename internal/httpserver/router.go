package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	cartsvc "storefront/internal/service/cart"
	catalogsvc "storefront/internal/service/catalog"
	checkoutsvc "storefront/internal/service/checkout"
	ordersvc "storefront/internal/service/order"
)

// Deps carries the services the router needs.
type Deps struct {
	CatalogSvc  *catalogsvc.Service
	CartSvc     *cartsvc.Service
	CheckoutSvc *checkoutsvc.Service
	OrderSvc    *ordersvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:productID", h.getProduct)
		api.GET("/categories", h.listCategories)

		admin := api.Group("/admin")
		{
			admin.POST("/products", h.saveProduct)
			admin.PUT("/products/:productID", h.updateProduct)
			admin.DELETE("/products/:productID", h.deleteProduct)
			admin.POST("/categories", h.createCategory)
		}

		users := api.Group("/users/:userID")
		{
			users.GET("/cart", h.getCart)
			users.POST("/cart/items", h.addCartItem)
			users.PUT("/cart/items/:lineID", h.updateCartLine)
			users.DELETE("/cart/items/:lineID", h.removeCartLine)
			users.POST("/orders", h.placeOrder)
			users.GET("/orders", h.listOrders)
		}

		api.GET("/orders/:orderID", h.orderDetail)
		api.PUT("/orders/:orderID/status", h.updateOrderStatus)
		api.DELETE("/orders/:orderID", h.deleteOrder)
	}

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the client.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Set("requestID", id)
		c.Next()
	}
}
