package handler

import (
	"time"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats số liệu tổng quan cho trang quản trị
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.DB

	type Stats struct {
		Products  int64 `json:"products"`
		Variants  int64 `json:"variants"`
		Customers int64 `json:"customers"`
		Orders    int64 `json:"orders"`

		PendingOrders   int64 `json:"pendingOrders"`
		ConfirmedOrders int64 `json:"confirmedOrders"`
		OutOfStock      int64 `json:"outOfStock"`

		TodayRevenue  float64 `json:"todayRevenue"`
		TodayOrders   int64   `json:"todayOrders"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %
	}

	var stats Stats
	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	db.Model(&model.Product{}).Where("status = ?", constants.PRODUCT_ACTIVE).Count(&stats.Products)
	db.Model(&model.Variant{}).Count(&stats.Variants)
	db.Model(&model.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", constants.ROLE_CUSTOMER).
		Count(&stats.Customers)
	db.Model(&model.Order{}).Count(&stats.Orders)
	db.Model(&model.Order{}).Where("status = ?", constants.ORDER_PENDING).Count(&stats.PendingOrders)
	db.Model(&model.Order{}).Where("status = ?", constants.ORDER_CONFIRMED).Count(&stats.ConfirmedOrders)
	db.Model(&model.Variant{}).Where("status = ?", constants.VARIANT_OUT_OF_STOCK).Count(&stats.OutOfStock)

	// Doanh thu hôm nay: chỉ tính đơn đã hoàn thành
	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = 'COMPLETED'
          AND completed_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Model(&model.Order{}).
		Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).
		Count(&stats.TodayOrders)

	// === Hôm qua ===
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = 'COMPLETED'
          AND completed_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Model(&model.Order{}).
		Where("created_at BETWEEN ? AND ?", yesterdayStart, yesterdayEnd).
		Count(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	// Top 5 sản phẩm bán chạy trong tháng
	type TopProduct struct {
		ProductName string  `json:"productName"`
		Sold        int64   `json:"sold"`
		Revenue     float64 `json:"revenue"`
	}
	var topProducts []TopProduct

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	db.Raw(`
        SELECT
            oi.product_name_snapshot AS product_name,
            SUM(oi.quantity) AS sold,
            SUM(oi.line_total) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.status IN ('CONFIRMED', 'COMPLETED')
          AND o.created_at >= ?
        GROUP BY oi.product_name_snapshot
        ORDER BY revenue DESC
        LIMIT 5
    `, monthStart).Scan(&topProducts)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"stats":       stats,
		"topProducts": topProducts,
	})
}
