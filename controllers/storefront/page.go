package storefrontcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTradeInPage renders the trade-in widget page. The cascading selection
// logic itself lives in static/trade-in.js.
func GetTradeInPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "trade-in.html", gin.H{
			"title": "Trade-In",
		})
	}
}
