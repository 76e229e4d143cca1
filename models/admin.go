package models

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalOrders   int                      `json:"total_orders"`
	TotalRevenue  decimal.Decimal          `json:"total_revenue"`
	TotalProducts int                      `json:"total_products"`
	TotalUsers    int                      `json:"total_users"`
	RecentOrders  []map[string]interface{} `json:"recent_orders"`
	TopProducts   []map[string]interface{} `json:"top_products"`
}

type PageParams struct {
	Skip   int    `form:"skip"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}
