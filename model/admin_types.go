package model

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// DashboardStats is the "stats" block of GET /admin/dashboard.
type DashboardStats struct {
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
	TotalUsers      int     `json:"total_users"`
	TotalOrders     int     `json:"total_orders"`
	ActiveOrders    int     `json:"active_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
}

type RecentOrder struct {
	ID          int     `json:"id"`
	UserName    string  `json:"user_name"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Dashboard struct {
	Stats         DashboardStats  `json:"stats"`
	RecentOrders  []RecentOrder   `json:"recent_orders"`
	Categories    []CategoryCount `json:"categories"`
	MonthlyOrders map[string]int  `json:"monthly_orders"`
}
