package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/http/controller"
	"github.com/iyhunko/product-catalog/internal/http/middleware"
)

// Controllers groups the handlers mounted by InitRouter.
type Controllers struct {
	General *controller.Controller
	Product *controller.ProductController
	View    *controller.ViewController
	Remote  *controller.RemoteController
}

func InitRouter(server *gin.Engine, ctrs Controllers) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.Logger())

	server.GET("/ping", ctrs.General.Ping)

	// Product endpoints
	products := server.Group("/products")
	{
		products.GET("", ctrs.Product.ListProducts)
		products.GET("/visible", ctrs.Product.ListVisibleProducts)
		products.POST("", ctrs.Product.CreateProduct)
		products.DELETE("", ctrs.Product.DeleteAllProducts)
		products.DELETE("/:id", ctrs.Product.DeleteProduct)
		products.POST("/:id/edit", ctrs.Product.StartEdit)
	}

	draft := server.Group("/draft")
	{
		draft.GET("", ctrs.Product.GetDraft)
		draft.PUT("", ctrs.Product.UpdateDraft)
		draft.DELETE("", ctrs.Product.CancelEdit)
		draft.POST("/submit", ctrs.Product.SubmitDraft)
	}

	view := server.Group("/view")
	{
		view.GET("", ctrs.View.GetView)
		view.PUT("/search", ctrs.View.SetSearchTerm)
		view.PUT("/sort", ctrs.View.SetSortMode)
	}

	remote := server.Group("/remote")
	{
		remote.GET("", ctrs.Remote.GetRemote)
		remote.POST("/reload", ctrs.Remote.Reload)
	}

	return server
}
