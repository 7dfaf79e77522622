package catalog

import (
	"errors"
	"fmt"
	"time"
)

// Verbosity selects one of the fixed laptop response projections.
// The levels are totally ordered by field-set inclusion:
// minimum is a subset of regular, regular a subset of extended.
type Verbosity string

const (
	VerbosityMinimum  Verbosity = "minimum"
	VerbosityRegular  Verbosity = "regular"
	VerbosityExtended Verbosity = "extended"
)

// ErrUnknownVerbosity is returned for any value outside the three levels.
var ErrUnknownVerbosity = errors.New("unknown verbosity")

// ParseVerbosity validates a raw verbosity query value.
func ParseVerbosity(raw string) (Verbosity, error) {
	switch Verbosity(raw) {
	case VerbosityMinimum, VerbosityRegular, VerbosityExtended:
		return Verbosity(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerbosity, raw)
}

// verbosityFields is the static projection table: level to ordered field names.
// No runtime introspection, adding a field is a code change here.
var verbosityFields = map[Verbosity][]string{
	VerbosityMinimum: {
		"id", "brand", "model", "price",
	},
	VerbosityRegular: {
		"id", "brand", "model", "price",
		"processor", "ram_gb", "storage_gb", "screen_size", "operating_system", "in_stock",
	},
	VerbosityExtended: {
		"id", "brand", "model", "price",
		"processor", "ram_gb", "storage_gb", "screen_size", "operating_system", "in_stock",
		"graphics_card", "battery_whr", "weight_kg", "dimensions_cm", "ports",
		"warranty_months", "release_date", "last_updated", "description", "features",
		"reviews_count", "average_rating",
	},
}

// VerbosityFieldNames returns the ordered field names of a projection level.
func VerbosityFieldNames(v Verbosity) []string {
	fields := verbosityFields[v]
	res := make([]string, len(fields))
	copy(res, fields)
	return res
}

// Laptop is the canonical maximal laptop record.
type Laptop struct {
	ID              string     `json:"id"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model"`
	Price           float64    `json:"price"`
	Processor       string     `json:"processor"`
	RAMGB           int        `json:"ram_gb"`
	StorageGB       int        `json:"storage_gb"`
	ScreenSize      float64    `json:"screen_size"`
	OperatingSystem string     `json:"operating_system"`
	InStock         bool       `json:"in_stock"`
	GraphicsCard    string     `json:"graphics_card"`
	BatteryWHr      int        `json:"battery_whr"`
	WeightKG        float64    `json:"weight_kg"`
	DimensionsCM    [3]float64 `json:"dimensions_cm"`
	Ports           []string   `json:"ports"`
	WarrantyMonths  int        `json:"warranty_months"`
	ReleaseDate     time.Time  `json:"release_date"`
	LastUpdated     time.Time  `json:"last_updated"`
	Description     string     `json:"description"`
	Features        []string   `json:"features"`
	ReviewsCount    int        `json:"reviews_count"`
	AverageRating   float64    `json:"average_rating"`
}

// Project returns a fresh record holding exactly the fields of the requested
// verbosity level. The canonical record is never mutated.
func (l *Laptop) Project(v Verbosity) (map[string]any, error) {
	fields, ok := verbosityFields[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVerbosity, v)
	}

	full := l.asMap()
	res := make(map[string]any, len(fields))
	for _, name := range fields {
		res[name] = full[name]
	}
	return res, nil
}

func (l *Laptop) asMap() map[string]any {
	return map[string]any{
		"id":               l.ID,
		"brand":            l.Brand,
		"model":            l.Model,
		"price":            l.Price,
		"processor":        l.Processor,
		"ram_gb":           l.RAMGB,
		"storage_gb":       l.StorageGB,
		"screen_size":      l.ScreenSize,
		"operating_system": l.OperatingSystem,
		"in_stock":         l.InStock,
		"graphics_card":    l.GraphicsCard,
		"battery_whr":      l.BatteryWHr,
		"weight_kg":        l.WeightKG,
		"dimensions_cm":    l.DimensionsCM,
		"ports":            l.Ports,
		"warranty_months":  l.WarrantyMonths,
		"release_date":     l.ReleaseDate,
		"last_updated":     l.LastUpdated,
		"description":      l.Description,
		"features":         l.Features,
		"reviews_count":    l.ReviewsCount,
		"average_rating":   l.AverageRating,
	}
}

// SampleLaptops is the static laptop dataset.
var SampleLaptops = []Laptop{
	{
		ID:              "LP123456",
		Brand:           "TechBook",
		Model:           "Pro X15",
		Price:           1299.99,
		Processor:       "Intel Core i7 12700H",
		RAMGB:           16,
		StorageGB:       512,
		ScreenSize:      15.6,
		OperatingSystem: "Windows 11 Pro",
		InStock:         true,
		GraphicsCard:    "NVIDIA RTX 3060 6GB",
		BatteryWHr:      80,
		WeightKG:        2.1,
		DimensionsCM:    [3]float64{35.8, 24.2, 1.9},
		Ports:           []string{"USB-C", "USB-A", "HDMI", "Audio Jack"},
		WarrantyMonths:  24,
		ReleaseDate:     time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		LastUpdated:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description:     "Professional grade laptop for demanding users",
		Features:        []string{"Backlit Keyboard", "Fingerprint Reader", "Thunderbolt 4"},
		ReviewsCount:    128,
		AverageRating:   4.5,
	},
	{
		ID:              "LP789101",
		Brand:           "FutureComp",
		Model:           "Vision Z14",
		Price:           1599.99,
		Processor:       "AMD Ryzen 9 6900HX",
		RAMGB:           32,
		StorageGB:       1024,
		ScreenSize:      14.0,
		OperatingSystem: "Windows 11 Home",
		InStock:         true,
		GraphicsCard:    "AMD Radeon 680M",
		BatteryWHr:      76,
		WeightKG:        1.8,
		DimensionsCM:    [3]float64{32.1, 22.0, 1.7},
		Ports:           []string{"USB-C", "HDMI", "Audio Jack"},
		WarrantyMonths:  36,
		ReleaseDate:     time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC),
		LastUpdated:     time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Description:     "Ultra-lightweight laptop with powerful performance",
		Features:        []string{"Face Recognition", "Wi-Fi 6E", "OLED Display"},
		ReviewsCount:    89,
		AverageRating:   4.7,
	},
	{
		ID:              "LP567812",
		Brand:           "ProCompute",
		Model:           "Elite G17",
		Price:           1899.99,
		Processor:       "Intel Core i9 12900H",
		RAMGB:           64,
		StorageGB:       2048,
		ScreenSize:      17.3,
		OperatingSystem: "Windows 11 Pro",
		InStock:         false,
		GraphicsCard:    "NVIDIA RTX 4080 12GB",
		BatteryWHr:      99,
		WeightKG:        3.2,
		DimensionsCM:    [3]float64{39.6, 26.5, 2.1},
		Ports:           []string{"USB-C", "USB-A", "HDMI", "Ethernet"},
		WarrantyMonths:  12,
		ReleaseDate:     time.Date(2022, 11, 20, 0, 0, 0, 0, time.UTC),
		LastUpdated:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Description:     "High-performance gaming and workstation laptop",
		Features:        []string{"4K Display", "RGB Keyboard", "Thunderbolt 4"},
		ReviewsCount:    345,
		AverageRating:   4.6,
	},
	{
		ID:              "LP345678",
		Brand:           "MegaWorks",
		Model:           "SwiftEdge S13",
		Price:           899.99,
		Processor:       "Intel Core i5 12450H",
		RAMGB:           8,
		StorageGB:       256,
		ScreenSize:      13.3,
		OperatingSystem: "Windows 11 Home",
		InStock:         true,
		GraphicsCard:    "Intel Iris Xe",
		BatteryWHr:      58,
		WeightKG:        1.2,
		DimensionsCM:    [3]float64{30.5, 21.2, 1.5},
		Ports:           []string{"USB-C", "HDMI", "MicroSD"},
		WarrantyMonths:  12,
		ReleaseDate:     time.Date(2023, 3, 25, 0, 0, 0, 0, time.UTC),
		LastUpdated:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description:     "Compact laptop ideal for students and professionals",
		Features:        []string{"Touchscreen", "Lightweight Design", "Fast Charging"},
		ReviewsCount:    256,
		AverageRating:   4.3,
	},
}

// FindLaptop looks up a sample laptop by id.
func FindLaptop(laptops []Laptop, id string) (*Laptop, bool) {
	for i := range laptops {
		if laptops[i].ID == id {
			return &laptops[i], true
		}
	}
	return nil, false
}
