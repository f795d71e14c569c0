package repositories

import (
	"limpamais-api/models"

	"gorm.io/gorm"
)

// DashboardRepository computes the summary counters and the bounded recency
// windows the dashboard is assembled from.
type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) TotalProducts() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Product{}).Count(&count).Error
	return count, err
}

// LowStockCount compares each product's stock against its own threshold.
func (r *DashboardRepository) LowStockCount() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Product{}).
		Where("current_stock <= min_stock").
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) ActiveOrders() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Order{}).
		Where("status <> ?", models.OrderCompleted).
		Count(&count).Error
	return count, err
}

// RecentSales returns at most limit sales, newest first by sale date.
func (r *DashboardRepository) RecentSales(limit int) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.DB.Preload("Product").Order("date DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

// RecentDeliveries returns at most limit ledger entries, newest first.
func (r *DashboardRepository) RecentDeliveries(limit int) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.DB.Preload("Product").Order("date DESC").Limit(limit).Find(&deliveries).Error
	return deliveries, err
}
