package response

import "marmoraria_tech/internal/usecase"

type DashboardResponse struct {
	Customers    int             `json:"customers"`
	Materials    int             `json:"materials"`
	Orders       int             `json:"orders"`
	ByStatus     map[string]int  `json:"by_status"`
	TotalQuoted  string          `json:"total_quoted"`
	OpenValue    string          `json:"open_value"`
	RecentOrders []OrderResponse `json:"recent_orders"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for k, v := range s.ByStatus {
		byStatus[string(k)] = v
	}
	return DashboardResponse{
		Customers:    s.Customers,
		Materials:    s.Materials,
		Orders:       s.Orders,
		ByStatus:     byStatus,
		TotalQuoted:  money(s.TotalQuoted),
		OpenValue:    money(s.OpenValue),
		RecentOrders: FromOrders(s.RecentOrders),
	}
}
