package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Daniel-Dotteam/trade-in-front/models"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

// ExportOrdersToExcel streams all orders as an .xlsx download for back-office
// bookkeeping.
func ExportOrdersToExcel(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.Orders()
		if err != nil {
			respondError(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Reference", "CustomerName", "CustomerPhone",
			"SaleProduct", "SalePrice", "TradeProduct", "TradePrice",
			"Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Reference)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerPhone)
			addProductCells(row, o.SaleProduct)
			addProductCells(row, o.TradeProduct)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func addProductCells(row *xlsx.Row, p *models.Product) {
	if p == nil {
		// product was deleted after the order was placed
		row.AddCell().SetValue("")
		row.AddCell().SetValue("")
		return
	}
	row.AddCell().SetValue(p.Name)
	row.AddCell().SetValue(p.Price)
}
