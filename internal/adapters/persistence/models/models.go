package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth Tables
// ============================================================

// EmployeeAccess represents the employees_access table.
// Read-only at runtime; rows are written by the seeder only.
type EmployeeAccess struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:'agent'" json:"role"`
}

func (EmployeeAccess) TableName() string {
	return "employees_access"
}

// SessionState represents the session_state table.
// A single row holding the serialized session of the signed-in operator.
type SessionState struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Payload   string    `gorm:"type:text" json:"payload"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SessionState) TableName() string {
	return "session_state"
}

// ============================================================
// Managed Entity Tables
// ============================================================

// Customer represents the customers table
type Customer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`
}

func (Customer) TableName() string {
	return "customers"
}

// Booking represents the bookings table.
// Note the legacy primary key column name booking_id.
type Booking struct {
	BookingID       uint    `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	CustomerID      uint    `gorm:"index" json:"customer_id"`
	PackageCode     string  `gorm:"size:50" json:"package_code"`
	BookingDate     string  `gorm:"size:10" json:"booking_date"`
	AmountPaid      float64 `json:"amount_paid"`
	AmountRemaining float64 `json:"amount_remaining"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Country represents the countries table
type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Country) TableName() string {
	return "countries"
}

// Package represents the packages table
type Package struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CountryID   uint   `gorm:"index" json:"country_id"`
	PackageCode string `gorm:"size:50" json:"package_code"`
	SubRoute    string `gorm:"size:100" json:"sub_route"`
}

func (Package) TableName() string {
	return "packages"
}

// Flight represents the flights table.
// Times are stored as HH:MM strings; arr_day_offset marks arrivals on a
// later calendar day than the departure.
type Flight struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BookingID    uint   `gorm:"index" json:"booking_id"`
	FlightDate   string `gorm:"size:10" json:"flight_date"`
	FlightNo     string `gorm:"size:20" json:"flight_no"`
	Origin       string `gorm:"size:10" json:"origin"`
	Destination  string `gorm:"size:10" json:"destination"`
	DepTime      string `gorm:"size:8" json:"dep_time"`
	ArrTime      string `gorm:"size:8" json:"arr_time"`
	ArrDayOffset int    `json:"arr_day_offset"`
}

func (Flight) TableName() string {
	return "flights"
}

// Accommodation represents the accommodations table
type Accommodation struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	BookingID      uint   `gorm:"index" json:"booking_id"`
	StartDate      string `gorm:"size:10" json:"start_date"`
	EndDate        string `gorm:"size:10" json:"end_date"`
	HotelName      string `gorm:"size:150" json:"hotel_name"`
	Address        string `gorm:"size:255" json:"address"`
	RoomType       string `gorm:"size:50" json:"room_type"`
	Nights         int    `json:"nights"`
	ConfirmationNo string `gorm:"size:50" json:"confirmation_no"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

// Sale represents the sales table
type Sale struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PackageID uint    `gorm:"index" json:"package_id"`
	Customer  string  `gorm:"size:100" json:"customer"`
	Date      string  `gorm:"size:10" json:"date"`
	Amount    float64 `json:"amount"`
	Status    string  `gorm:"size:20;default:'pending'" json:"status"`
}

func (Sale) TableName() string {
	return "sales"
}

// InternshipApplication represents the internship_applications table.
// Applications are submitted from the public site; the console only
// reviews them.
type InternshipApplication struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	FullName             string    `gorm:"size:100" json:"full_name"`
	Email                string    `gorm:"size:100" json:"email"`
	Phone                string    `gorm:"size:30" json:"phone"`
	Age                  int       `json:"age"`
	CityState            string    `gorm:"size:100" json:"city_state"`
	InstagramHandle      string    `gorm:"size:100" json:"instagram_handle"`
	PortfolioLink        string    `gorm:"size:255" json:"portfolio_link"`
	SampleFileURL        string    `gorm:"size:255" json:"sample_file_url"`
	CreatedContent       string    `gorm:"size:20" json:"created_content"`
	ConfidentSkills      string    `gorm:"type:text" json:"confident_skills"`
	Reason               string    `gorm:"type:text" json:"reason"`
	ReelIdea             string    `gorm:"type:text" json:"reel_idea"`
	TravelContentOpinion string    `gorm:"type:text" json:"travel_content_opinion"`
	CameraComfort        string    `gorm:"size:20" json:"camera_comfort"`
	Obligations          string    `gorm:"type:text" json:"obligations"`
	OutdoorTravelComfort string    `gorm:"size:20" json:"outdoor_travel_comfort"`
	CommunicationMode    string    `gorm:"size:50" json:"communication_mode"`
	ReferralSource       string    `gorm:"size:100" json:"referral_source"`
	ReferralOther        string    `gorm:"size:100" json:"referral_other"`
	Questions            string    `gorm:"type:text" json:"questions"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (InternshipApplication) TableName() string {
	return "internship_applications"
}

// AutoMigrate migrates all tables owned by this application
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&EmployeeAccess{},
		&SessionState{},
		&Customer{},
		&Booking{},
		&Country{},
		&Package{},
		&Flight{},
		&Accommodation{},
		&Sale{},
		&InternshipApplication{},
	)
}
