package services

import (
	"context"

	"luxpackers-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates the landing-page numbers
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents the landing page summary
type DashboardData struct {
	TotalCustomers    int64 `json:"total_customers"`
	TotalBookings     int64 `json:"total_bookings"`
	TotalPackages     int64 `json:"total_packages"`
	TotalApplications int64 `json:"total_applications"`

	AmountCollected   float64 `json:"amount_collected"`
	AmountOutstanding float64 `json:"amount_outstanding"`

	CompletedSales int64 `json:"completed_sales"`
	PendingSales   int64 `json:"pending_sales"`

	RecentSales []models.Sale `json:"recent_sales"`
}

// GetDashboard returns the dashboard summary
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	s.db.WithContext(ctx).Model(&models.Customer{}).Count(&data.TotalCustomers)
	s.db.WithContext(ctx).Model(&models.Booking{}).Count(&data.TotalBookings)
	s.db.WithContext(ctx).Model(&models.Package{}).Count(&data.TotalPackages)
	s.db.WithContext(ctx).Model(&models.InternshipApplication{}).Count(&data.TotalApplications)

	s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&data.AmountCollected)
	s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(SUM(amount_remaining), 0)").
		Scan(&data.AmountOutstanding)

	s.db.WithContext(ctx).Model(&models.Sale{}).Where("status = ?", "completed").Count(&data.CompletedSales)
	s.db.WithContext(ctx).Model(&models.Sale{}).Where("status = ?", "pending").Count(&data.PendingSales)

	if err := s.db.WithContext(ctx).Model(&models.Sale{}).
		Order("date DESC").
		Limit(5).
		Find(&data.RecentSales).Error; err != nil {
		return nil, err
	}

	return data, nil
}
