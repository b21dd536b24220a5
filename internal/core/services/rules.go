package services

import "luxpackers-admin/internal/adapters/persistence/models"

// Required-field policy per entity. Each rule names the first missing
// field so the error can point at it; policies mirror the console forms.

// CustomerRequired requires name, email and phone
func CustomerRequired(c *models.Customer) string {
	switch {
	case c.Name == "":
		return "name"
	case c.Email == "":
		return "email"
	case c.Phone == "":
		return "phone"
	}
	return ""
}

// BookingRequired requires package code and booking date
func BookingRequired(b *models.Booking) string {
	switch {
	case b.PackageCode == "":
		return "package_code"
	case b.BookingDate == "":
		return "booking_date"
	}
	return ""
}

// CountryRequired requires the country name
func CountryRequired(c *models.Country) string {
	if c.Name == "" {
		return "name"
	}
	return ""
}

// PackageRequired requires the package code
func PackageRequired(p *models.Package) string {
	if p.PackageCode == "" {
		return "package_code"
	}
	return ""
}

// FlightRequired requires date, flight number, route and times
func FlightRequired(f *models.Flight) string {
	switch {
	case f.FlightDate == "":
		return "flight_date"
	case f.FlightNo == "":
		return "flight_no"
	case f.Origin == "":
		return "origin"
	case f.Destination == "":
		return "destination"
	case f.DepTime == "":
		return "dep_time"
	case f.ArrTime == "":
		return "arr_time"
	}
	return ""
}

// AccommodationRequired requires the stay dates and the hotel name
func AccommodationRequired(a *models.Accommodation) string {
	switch {
	case a.StartDate == "":
		return "start_date"
	case a.EndDate == "":
		return "end_date"
	case a.HotelName == "":
		return "hotel_name"
	}
	return ""
}

// SaleRequired requires customer, date and amount
func SaleRequired(s *models.Sale) string {
	switch {
	case s.Customer == "":
		return "customer"
	case s.Date == "":
		return "date"
	case s.Amount == 0:
		return "amount"
	}
	return ""
}
