package testhelpers

import (
	"time"

	"github.com/dcode-github/property_dashboard/models"
)

func SampleProperties() []models.Property {
	return []models.Property{
		{
			ID:      "1",
			Name:    "Studio Blois",
			Address: "13 rue des Papegaults, Blois",
			AccessCodes: models.AccessCodes{
				Wifi: models.WifiCredentials{Name: "FREEBOX-AE4AC6", Password: "secret"},
				Door: "210",
			},
			HouseRules:   []string{"Max 4 personnes", "Respecter le calme"},
			Amenities:    []string{"TV", "Cuisine"},
			CheckInTime:  "15:00",
			CheckOutTime: "11:00",
			MaxGuests:    4,
			Photos:       []string{"https://images.example.com/blois.jpg"},
		},
		{
			ID:      "2",
			Name:    "Villa Sunset",
			Address: "123 Avenue de la Plage, Biarritz",
			AccessCodes: models.AccessCodes{
				Wifi: models.WifiCredentials{Name: "SunsetVilla_5G", Password: "welcome2024!"},
				Door: "4080#",
			},
			HouseRules:   []string{"Pas de fête"},
			Amenities:    []string{"Piscine"},
			CheckInTime:  "15:00",
			CheckOutTime: "11:00",
			MaxGuests:    6,
			Photos:       []string{"https://images.example.com/villa.jpg"},
		},
	}
}

func SampleConversations() []models.Conversation {
	day := func(d int) time.Time { return time.Date(2026, time.July, d, 0, 0, 0, 0, time.UTC) }
	return []models.Conversation{
		{
			ID:            "c1",
			PropertyID:    "1",
			GuestName:     "Alice Martin",
			CheckIn:       day(1),
			CheckOut:      day(5),
			EmergencyTags: []models.EmergencyTag{models.TagTechnicalProblem, models.TagEmergency, models.TagTechnicalProblem},
			Messages: []models.Message{
				{Text: "Bonjour, le chauffage ne marche pas", Timestamp: time.Date(2026, time.July, 2, 9, 30, 0, 0, time.UTC)},
				{Text: "Toujours rien", Timestamp: time.Date(2026, time.July, 2, 18, 45, 10, 0, time.UTC)},
			},
		},
		{
			ID:         "c2",
			PropertyID: "1",
			GuestName:  "Bruno Petit",
			CheckIn:    day(10),
			CheckOut:   day(12),
		},
		{
			ID:            "c3",
			PropertyID:    "2",
			GuestName:     "Chloé Durand",
			CheckIn:       day(20),
			CheckOut:      day(27),
			EmergencyTags: []models.EmergencyTag{models.TagStockProblem},
			Messages: []models.Message{
				{Text: "Plus de café", Timestamp: time.Date(2026, time.July, 21, 8, 0, 0, 0, time.UTC)},
			},
		},
	}
}
