package routes

import (
	"marmoraria_tech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathMaterials = "/materials"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	if h == nil {
		return
	}
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

func addMaterialRoutes(rg *gin.RouterGroup, h *handlers.MaterialHandler) {
	if h == nil {
		return
	}
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", h.ListMaterials)
		materials.POST("", h.CreateMaterial)
		materials.GET("/:id", h.GetMaterial)
		materials.PATCH("/:id", h.UpdateMaterial)
		materials.DELETE("/:id", h.DeleteMaterial)
	}
}
