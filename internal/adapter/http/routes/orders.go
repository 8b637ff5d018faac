package routes

import (
	"marmoraria_tech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathQuotes = "/quotes/drafts"
)

func addOrderRoutes(rg *gin.RouterGroup, orders *handlers.OrderHandler, payments *handlers.PaymentHandler) {
	group := rg.Group(PathOrders)
	if orders != nil {
		group.GET("", orders.ListOrders)
		group.GET("/:id", orders.GetOrder)
		group.DELETE("/:id", orders.DeleteOrder)
		group.PATCH("/:id/status", orders.UpdateOrderStatus)
		group.GET("/:id/print", orders.PrintOrder)
		group.GET("/:id/print.pdf", orders.PrintOrderPDF)
	}
	if payments != nil {
		group.POST("/:id/payments", payments.CreatePayment)
		group.GET("/:id/payments", payments.ListPayments)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteDraftHandler) {
	if h == nil {
		return
	}
	drafts := rg.Group(PathQuotes)
	{
		drafts.POST("", h.StartDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.PATCH("/:id", h.UpdateDraft)
		drafts.DELETE("/:id", h.DiscardDraft)
		drafts.PUT("/:id/customer", h.SelectCustomer)
		drafts.DELETE("/:id/customer", h.ClearCustomer)
		drafts.POST("/:id/items", h.AddItem)
		drafts.DELETE("/:id/items/:item_id", h.RemoveItem)
		drafts.POST("/:id/save", h.SaveDraft)
	}
}
