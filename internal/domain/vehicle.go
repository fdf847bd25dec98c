package domain

import "time"

// VehicleType categorizes vehicles for service compatibility
type VehicleType string

const (
	TypeCar        VehicleType = "car"
	TypeMotorcycle VehicleType = "motorcycle"
	TypeTruck      VehicleType = "truck"
	TypeVan        VehicleType = "van"
	TypeSUV        VehicleType = "suv"
)

// VehicleSize selects the pricing/duration configuration of a service
type VehicleSize string

const (
	SizeSmall      VehicleSize = "small"
	SizeMedium     VehicleSize = "medium"
	SizeLarge      VehicleSize = "large"
	SizeExtraLarge VehicleSize = "extra_large"
)

// VehicleSizes lists all sizes in ascending order
var VehicleSizes = []VehicleSize{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}

// VehicleTypes lists all supported vehicle types
var VehicleTypes = []VehicleType{TypeCar, TypeMotorcycle, TypeTruck, TypeVan, TypeSUV}

// Vehicle represents a client's vehicle
type Vehicle struct {
	ID       int64
	ClientID int64
	Plate    string
	Brand    string
	Model    string
	Year     int
	Color    string
	Type     VehicleType
	Size     VehicleSize

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidVehicleType reports whether t is a known vehicle type.
func ValidVehicleType(t VehicleType) bool {
	for _, known := range VehicleTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ValidVehicleSize reports whether s is a known vehicle size.
func ValidVehicleSize(s VehicleSize) bool {
	for _, known := range VehicleSizes {
		if s == known {
			return true
		}
	}
	return false
}
