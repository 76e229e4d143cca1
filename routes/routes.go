package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/diyahomestylist/poppyandteal/config"
	"github.com/diyahomestylist/poppyandteal/controllers"
	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/services"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Contact *controllers.ContactController
	Admin   *controllers.AdminController
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, sessions *services.SessionStore, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", ctrl.Product.GetAllCategories)
	router.GET("/products", ctrl.Product.GetAllProducts)
	router.GET("/products/featured", ctrl.Product.GetFeaturedProducts)
	router.GET("/products/search", ctrl.Product.SearchProducts)
	router.GET("/products/:id", ctrl.Product.GetProductByID)
	router.GET("/products/:id/whatsapp", ctrl.Product.GetProductWhatsApp)
	router.GET("/whatsapp", ctrl.Contact.WhatsApp)
	router.POST("/contact", ctrl.Contact.Submit)
	router.POST("/auth/forgot-password", ctrl.Auth.ForgotPassword)
	router.POST("/auth/reset-password", ctrl.Auth.ResetPassword)

	profile := router.Group("/")
	profile.Use(middleware.ProfileMiddleware(cfg))
	{
		profile.POST("/auth/register", ctrl.Auth.Register)
		profile.POST("/auth/login", ctrl.Auth.Login)
		profile.POST("/auth/logout", ctrl.Auth.Logout)

		profile.GET("/cart", ctrl.Cart.GetCart)
		profile.DELETE("/cart", ctrl.Cart.ClearCart)
		profile.GET("/cart/events", ctrl.Cart.Events)
		profile.POST("/cart/items", ctrl.Cart.AddItem)
		profile.PATCH("/cart/items/:id", ctrl.Cart.UpdateItem)
		profile.DELETE("/cart/items/:id", ctrl.Cart.RemoveItem)
		profile.POST("/cart/checkout", ctrl.Cart.Checkout)
	}

	auth := profile.Group("/")
	auth.Use(middleware.AuthMiddleware(sessions))
	{
		auth.GET("/auth/me", ctrl.Auth.GetProfile)
		auth.PUT("/auth/me", ctrl.Auth.UpdateProfile)
		auth.GET("/orders", ctrl.Order.GetOrders)
		auth.GET("/orders/:id", ctrl.Order.GetOrderByID)
	}

	admin := auth.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", ctrl.Admin.GetDashboard)

		admin.GET("/users", ctrl.Admin.GetAllUsers)
		admin.PUT("/users/:id", ctrl.Admin.UpdateUser)
		admin.PATCH("/users/:id/toggle-status", ctrl.Admin.ToggleUserStatus)

		admin.POST("/products", ctrl.Admin.CreateProduct)
		admin.PUT("/products/:id", ctrl.Admin.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Admin.DeleteProduct)

		admin.GET("/orders", ctrl.Admin.GetAllOrders)
		admin.PUT("/orders/:id/status", ctrl.Admin.UpdateOrderStatus)

		admin.GET("/contacts", ctrl.Admin.GetContacts)
		admin.PUT("/contacts/:id/status", ctrl.Admin.UpdateContactStatus)
	}
}
