package request

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
