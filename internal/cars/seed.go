package cars

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// SeedListings returns the demo inventory split between two dealers.
func SeedListings(dealerOne, dealerTwo uuid.UUID) []Car {
	return []Car{
		{
			ID:          uuid.New(),
			Title:       "2023 BMW 5 Series",
			Description: "Luxurious sedan with cutting-edge technology and powerful performance.",
			Price:       65000,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1520038410233-7141be7e6f97?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     true,
			Type:         enums.CarTypeSedan,
			Manufacturer: "BMW",
			Model:        "5 Series",
			Year:         2023,
			Mileage:      5000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypePetrol,
			Color:        "Black",
			VIN:          "WBAJB9C50JB083652",
			DealerID:     dealerOne,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.May, 1),
			UpdatedAt:    seedDate(2023, time.May, 1),
		},
		{
			ID:          uuid.New(),
			Title:       "2022 Mercedes-Benz E-Class",
			Description: "Elegant design with premium interior and advanced safety features.",
			Price:       62000,
			Images: []string{
				"https://images.unsplash.com/photo-1617469767053-6a25e516b97e?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     true,
			Type:         enums.CarTypeSedan,
			Manufacturer: "Mercedes-Benz",
			Model:        "E-Class",
			Year:         2022,
			Mileage:      8000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypePetrol,
			Color:        "Silver",
			VIN:          "W1KZF8DB9NA123456",
			DealerID:     dealerTwo,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.April, 15),
			UpdatedAt:    seedDate(2023, time.April, 15),
		},
		{
			ID:          uuid.New(),
			Title:       "2023 Audi Q7",
			Description: "Spacious SUV with premium features and quattro all-wheel drive.",
			Price:       75000,
			Images: []string{
				"https://images.unsplash.com/photo-1606152421802-db97b9c7a11b?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1542362567-b07e54358753?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     true,
			Type:         enums.CarTypeSUV,
			Manufacturer: "Audi",
			Model:        "Q7",
			Year:         2023,
			Mileage:      3000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypeDiesel,
			Color:        "White",
			VIN:          "WAUZZZ4M7ND123456",
			DealerID:     dealerOne,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.June, 1),
			UpdatedAt:    seedDate(2023, time.June, 1),
		},
		{
			ID:          uuid.New(),
			Title:       "2022 Tesla Model 3",
			Description: "All-electric sedan with impressive range and autopilot features.",
			Price:       52000,
			Images: []string{
				"https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1551826152-d7248d8b8a40?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     true,
			Type:         enums.CarTypeSedan,
			Manufacturer: "Tesla",
			Model:        "Model 3",
			Year:         2022,
			Mileage:      10000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypeElectric,
			Color:        "Blue",
			VIN:          "5YJ3E1EA6NF123456",
			DealerID:     dealerTwo,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.March, 10),
			UpdatedAt:    seedDate(2023, time.March, 10),
		},
		{
			ID:          uuid.New(),
			Title:       "2023 Porsche 911",
			Description: "Iconic sports car with exhilarating performance and timeless design.",
			Price:       120000,
			Images: []string{
				"https://images.unsplash.com/photo-1584636778269-75cc5c82d2fb?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     true,
			Type:         enums.CarTypeSports,
			Manufacturer: "Porsche",
			Model:        "911",
			Year:         2023,
			Mileage:      1500,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypePetrol,
			Color:        "Red",
			VIN:          "WP0AB2A95JS123456",
			DealerID:     dealerOne,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.June, 15),
			UpdatedAt:    seedDate(2023, time.June, 15),
		},
		{
			ID:          uuid.New(),
			Title:       "2022 Range Rover Sport",
			Description: "Luxury SUV with off-road capability and sophisticated design.",
			Price:       92000,
			Images: []string{
				"https://images.unsplash.com/photo-1543854589-fca4035ef168?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1526726538690-5cbf956ae2fd?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     false,
			Type:         enums.CarTypeSUV,
			Manufacturer: "Land Rover",
			Model:        "Range Rover Sport",
			Year:         2022,
			Mileage:      12000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypeDiesel,
			Color:        "Black",
			VIN:          "SALWA2BK3NA123456",
			DealerID:     dealerTwo,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.February, 20),
			UpdatedAt:    seedDate(2023, time.February, 20),
		},
		{
			ID:          uuid.New(),
			Title:       "2022 Lexus ES",
			Description: "Refined luxury sedan with exceptional comfort and reliability.",
			Price:       48000,
			Images: []string{
				"https://images.unsplash.com/photo-1583267746897-2cf415887172?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1549399542-7e3f8b79c341?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     false,
			Type:         enums.CarTypeSedan,
			Manufacturer: "Lexus",
			Model:        "ES",
			Year:         2022,
			Mileage:      15000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypeHybrid,
			Color:        "Silver",
			VIN:          "JTHBK1GG9N2123456",
			DealerID:     dealerOne,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.January, 15),
			UpdatedAt:    seedDate(2023, time.January, 15),
		},
		{
			ID:          uuid.New(),
			Title:       "2023 Toyota RAV4",
			Description: "Popular crossover SUV with versatile features and excellent efficiency.",
			Price:       35000,
			Images: []string{
				"https://images.unsplash.com/photo-1581540222194-0def2dda95b8?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&w=1200&q=80",
			},
			Featured:     false,
			Type:         enums.CarTypeSUV,
			Manufacturer: "Toyota",
			Model:        "RAV4",
			Year:         2023,
			Mileage:      8000,
			Transmission: enums.TransmissionAutomatic,
			FuelType:     enums.FuelTypeHybrid,
			Color:        "Green",
			VIN:          "JTMWGFVX0N5123456",
			DealerID:     dealerTwo,
			Status:       enums.CarStatusAvailable,
			CreatedAt:    seedDate(2023, time.April, 5),
			UpdatedAt:    seedDate(2023, time.April, 5),
		},
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
