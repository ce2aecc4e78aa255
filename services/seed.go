package services

import (
	"context"
	"fmt"

	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/utils"
)

var seedProperties = []models.Property{
	{
		Name:    "Studio Blois",
		Address: "13 rue des Papegaults, Blois",
		AccessCodes: models.AccessCodes{
			Wifi: models.WifiCredentials{Name: "FREEBOX-AE4AC6", Password: "barbani@%-solvi38-irrogatura-cannetum?&"},
			Door: "210",
		},
		HouseRules:   []string{"Max 4 personnes", "Pas de visiteurs supplémentaires", "Respecter le calme"},
		Amenities:    []string{"TV", "Cuisine", "Chauffage"},
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		MaxGuests:    4,
		Photos:       []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267"},
	},
	{
		Name:    "Villa Sunset",
		Address: "123 Avenue de la Plage, Biarritz",
		AccessCodes: models.AccessCodes{
			Wifi: models.WifiCredentials{Name: "SunsetVilla_5G", Password: "welcome2024!"},
			Door: "4080#",
		},
		HouseRules:   []string{"Pas de fête", "Pas de fumée", "Calme entre 22h et 8h"},
		Amenities:    []string{"Piscine", "Accès plage", "Parking gratuit"},
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		MaxGuests:    6,
		Photos:       []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6"},
	},
}

// Seed inserts the sample properties when the store holds none.
func Seed(ctx context.Context, svc DataService) error {
	existing, err := svc.GetProperties(ctx)
	if err != nil {
		return fmt.Errorf("checking existing properties: %w", err)
	}
	if len(existing) > 0 {
		utils.Logger.Debugf("Skipping seed, %d properties already present", len(existing))
		return nil
	}

	for _, p := range seedProperties {
		created, err := svc.CreateProperty(ctx, p.Clone())
		if err != nil {
			return fmt.Errorf("seeding %s: %w", p.Name, err)
		}
		utils.Logger.Infof("Seeded property %s (%s)", created.Name, created.ID)
	}
	return nil
}
