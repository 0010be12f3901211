package routes

import (
	"github.com/gin-gonic/gin"

	catalogcontroller "github.com/Daniel-Dotteam/trade-in-front/controllers/catalog"
	orderControllers "github.com/Daniel-Dotteam/trade-in-front/controllers/order"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

// SetupAPIRoutes registers the public "/api/*" endpoints the storefront
// widget consumes: cascading catalog reads plus order submission.
func SetupAPIRoutes(r *gin.Engine, st *store.Store) {
	catalog := st.Catalog()
	orders := st.Orders()

	api := r.Group("/api")
	{
		collections := api.Group("/collections")
		{
			collections.GET("", catalogcontroller.GetCollections(catalog))
			collections.GET("/:id", catalogcontroller.GetCollectionByID(catalog))
			collections.GET("/:id/products", catalogcontroller.GetCollectionProducts(catalog))
		}

		productTypes := api.Group("/product-types")
		{
			productTypes.GET("", catalogcontroller.GetProductTypes(catalog))
			productTypes.GET("/:id", catalogcontroller.GetProductTypeByID(catalog))
			productTypes.GET("/collection/:collectionId", catalogcontroller.GetProductTypesByCollection(catalog))
		}

		products := api.Group("/products")
		{
			products.GET("", catalogcontroller.GetProducts(catalog))
			products.GET("/:id", catalogcontroller.GetProductByID(catalog))
			products.GET("/type/:productTypeId", catalogcontroller.GetProductsByProductType(catalog))
		}

		// Widget submit
		api.POST("/orders", orderControllers.CreateOrderHandler(orders))
	}
}
