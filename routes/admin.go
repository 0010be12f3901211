package routes

import (
	"github.com/gin-gonic/gin"

	catalogcontroller "github.com/Daniel-Dotteam/trade-in-front/controllers/catalog"
	orderControllers "github.com/Daniel-Dotteam/trade-in-front/controllers/order"
	"github.com/Daniel-Dotteam/trade-in-front/middleware"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, st *store.Store) {
	catalog := st.Catalog()
	orders := st.Orders()

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Collection Management ───────────
		collectionAdmin := adminGroup.Group("/collections")
		{
			collectionAdmin.GET("", catalogcontroller.GetCollections(catalog))
			collectionAdmin.POST("", catalogcontroller.CreateCollection(catalog))
			collectionAdmin.PUT("/:id", catalogcontroller.UpdateCollection(catalog))
			collectionAdmin.DELETE("/:id", catalogcontroller.DeleteCollection(catalog))
		}

		// ─────────── Product Type Management ───────────
		productTypeAdmin := adminGroup.Group("/product-types")
		{
			productTypeAdmin.GET("", catalogcontroller.GetProductTypes(catalog))
			productTypeAdmin.POST("", catalogcontroller.CreateProductType(catalog))
			productTypeAdmin.PUT("/:id", catalogcontroller.UpdateProductType(catalog))
			productTypeAdmin.DELETE("/:id", catalogcontroller.DeleteProductType(catalog))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", catalogcontroller.GetProducts(catalog))
			productAdmin.POST("", catalogcontroller.CreateProduct(catalog))
			productAdmin.PUT("/:id", catalogcontroller.UpdateProduct(catalog))
			productAdmin.DELETE("/:id", catalogcontroller.DeleteProduct(catalog))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(orders))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(orders))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:id", orderControllers.GetOrderByIDHandler(orders))
			orderAdmin.PUT("/:id", orderControllers.UpdateOrderHandler(orders))
			orderAdmin.PATCH("/:id/status", orderControllers.UpdateOrderStatusHandler(orders))
			orderAdmin.DELETE("/:id", orderControllers.DeleteOrderHandler(orders))
		}
	}
}
