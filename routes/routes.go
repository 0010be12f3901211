package routes

import (
	"github.com/gin-gonic/gin"

	storefrontcontroller "github.com/Daniel-Dotteam/trade-in-front/controllers/storefront"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

// SetupRoutes is the single entry-point that wires up the storefront page,
// the public API, and the admin route groups.
func SetupRoutes(r *gin.Engine, st *store.Store) {
	// Storefront widget page
	r.GET("/", storefrontcontroller.GetTradeInPage())

	// Public read-only catalog API + order submission (used by the widget)
	SetupAPIRoutes(r, st)

	// Admin CRUD (API-key-protected)
	SetupAdminRoutes(r, st)
}
