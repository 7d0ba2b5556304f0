package routers

import (
	"Storefront/handlers"
	"Storefront/middleware"
	"Storefront/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Services struct {
	Account *service.AccountService
	Catalog *service.CatalogService
	Carts   *service.CartService
	Orders  *service.OrderService
	Tokens  middleware.TokenValidator
	Logger  zerolog.Logger
}

func SetupRouters(s Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.LoggerMiddleware(s.Logger), middleware.RecoverMiddleware())
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization, X-Request-ID")
		c.Next()
	})
	_ = router.SetTrustedProxies(nil)

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.Use(middleware.AuthMiddleware(s.Tokens))

	api := router.Group("/api/v1")
	{
		api.POST("/signup", func(context *gin.Context) {
			handlers.SignupHandler(context, s.Account)
		})
		api.POST("/login", func(context *gin.Context) {
			handlers.LoginHandler(context, s.Account)
		})
		api.GET("/products", func(context *gin.Context) {
			handlers.GetProductListHandler(context, s.Catalog)
		})
		api.GET("/products/:productID", func(context *gin.Context) {
			handlers.GetProductDataHandler(context, s.Catalog)
		})
		api.GET("/users/:userID/products", func(context *gin.Context) {
			handlers.GetSellerProductsHandler(context, s.Catalog)
		})
	}

	loginRequired := router.Group("/api/v1")
	loginRequired.Use(middleware.CheckLoginMiddleware())
	{
		loginRequired.GET("/login", func(context *gin.Context) {
			handlers.ProfileHandler(context, s.Account)
		})
		loginRequired.POST("/products", func(context *gin.Context) {
			handlers.CreateProductHandler(context, s.Catalog)
		})
		loginRequired.GET("/carts", func(context *gin.Context) {
			handlers.GetCartHandler(context, s.Carts)
		})
		loginRequired.POST("/carts", func(context *gin.Context) {
			handlers.AddToCartHandler(context, s.Carts)
		})
		loginRequired.PATCH("/carts/:productID", func(context *gin.Context) {
			handlers.UpdateCartItemQuantityHandler(context, s.Carts)
		})
		// checkout
		loginRequired.POST("/orders", func(context *gin.Context) {
			handlers.SendOrderHandler(context, s.Carts)
		})
		loginRequired.GET("/orders", func(context *gin.Context) {
			handlers.GetOrderListHandler(context, s.Orders)
		})
		loginRequired.GET("/orders/:orderID", func(context *gin.Context) {
			handlers.GetOrderDataHandler(context, s.Orders)
		})
	}

	adminRequired := router.Group("/api/v1/admin")
	adminRequired.Use(middleware.CheckLoginMiddleware(), middleware.CheckAdminPermissionMiddleware())
	{
		adminRequired.GET("/users", func(context *gin.Context) {
			handlers.GetUserListHandler(context, s.Account)
		})
		adminRequired.PATCH("/orders/:orderID", func(context *gin.Context) {
			handlers.UpdateOrderStatusHandler(context, s.Orders)
		})
	}

	return router
}
