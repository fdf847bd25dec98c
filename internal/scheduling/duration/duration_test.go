package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

func washService() *domain.Service {
	return &domain.Service{
		ID:          1,
		Name:        "Complete Wash",
		VehicleType: domain.TypeCar,
		Configurations: map[domain.VehicleSize]domain.ServiceConfiguration{
			domain.SizeSmall:  {Available: true, DurationHours: 1, DurationMinutes: 0, Price: 80},
			domain.SizeMedium: {Available: true, DurationHours: 1, DurationMinutes: 30, Price: 100},
			domain.SizeLarge:  {Available: false, DurationHours: 2, DurationMinutes: 0, Price: 130},
		},
	}
}

func waxService() *domain.Service {
	return &domain.Service{
		ID:                2,
		Name:              "Wax Protection",
		VehicleType:       domain.TypeCar,
		DryingTimeMinutes: 120,
		Configurations: map[domain.VehicleSize]domain.ServiceConfiguration{
			domain.SizeMedium: {Available: true, DurationHours: 0, DurationMinutes: 45, Price: 150},
		},
	}
}

func ceramicService() *domain.Service {
	return &domain.Service{
		ID:                3,
		Name:              "Ceramic Coating",
		VehicleType:       domain.TypeCar,
		DryingTimeMinutes: 480,
		Configurations: map[domain.VehicleSize]domain.ServiceConfiguration{
			domain.SizeMedium: {Available: true, DurationHours: 3, DurationMinutes: 0, Price: 900},
		},
	}
}

func TestCalculateServiceDuration(t *testing.T) {
	services := []*domain.Service{washService(), waxService(), ceramicService()}

	tests := []struct {
		name       string
		serviceIDs []int64
		size       domain.VehicleSize
		want       Result
	}{
		{
			name:       "single service no drying",
			serviceIDs: []int64{1},
			size:       domain.SizeMedium,
			want:       Result{WorkDuration: 90, DryingDuration: 0, TotalDuration: 90, TotalPrice: 100},
		},
		{
			name:       "work durations sum",
			serviceIDs: []int64{1, 2},
			size:       domain.SizeMedium,
			want:       Result{WorkDuration: 135, DryingDuration: 120, TotalDuration: 255, TotalPrice: 250},
		},
		{
			name:       "drying is max not sum",
			serviceIDs: []int64{2, 3},
			size:       domain.SizeMedium,
			want:       Result{WorkDuration: 225, DryingDuration: 480, TotalDuration: 705, TotalPrice: 1050},
		},
		{
			name:       "missing size configuration contributes zero work",
			serviceIDs: []int64{1, 2},
			size:       domain.SizeSmall,
			want:       Result{WorkDuration: 60, DryingDuration: 120, TotalDuration: 180, TotalPrice: 80},
		},
		{
			name:       "unavailable configuration contributes zero work",
			serviceIDs: []int64{1},
			size:       domain.SizeLarge,
			want:       Result{},
		},
		{
			name:       "unknown service id silently omitted",
			serviceIDs: []int64{1, 999},
			size:       domain.SizeMedium,
			want:       Result{WorkDuration: 90, DryingDuration: 0, TotalDuration: 90, TotalPrice: 100},
		},
		{
			name:       "empty selection",
			serviceIDs: nil,
			size:       domain.SizeMedium,
			want:       Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateServiceDuration(tt.serviceIDs, tt.size, services)
			assert.Equal(t, tt.want, got)
		})
	}
}
