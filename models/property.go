package models

type WifiCredentials struct {
	Name     string `bson:"name" json:"name"`
	Password string `bson:"password" json:"password"`
}

type AccessCodes struct {
	Wifi WifiCredentials `bson:"wifi" json:"wifi"`
	Door string          `bson:"door" json:"door"`
}

type Property struct {
	ID           string      `bson:"_id,omitempty" json:"id"`
	Name         string      `bson:"name" json:"name" validate:"required,max=120"`
	Address      string      `bson:"address" json:"address" validate:"required"`
	AccessCodes  AccessCodes `bson:"accessCodes" json:"accessCodes"`
	HouseRules   []string    `bson:"houseRules" json:"houseRules"`
	Amenities    []string    `bson:"amenities" json:"amenities"`
	CheckInTime  string      `bson:"checkInTime" json:"checkInTime" validate:"omitempty,datetime=15:04"`
	CheckOutTime string      `bson:"checkOutTime" json:"checkOutTime" validate:"omitempty,datetime=15:04"`
	MaxGuests    int         `bson:"maxGuests" json:"maxGuests" validate:"gte=1"`
	Photos       []string    `bson:"photos" json:"photos" validate:"dive,url"`
}

// Clone returns a deep copy so form drafts never alias list state.
func (p Property) Clone() Property {
	c := p
	c.HouseRules = append([]string(nil), p.HouseRules...)
	c.Amenities = append([]string(nil), p.Amenities...)
	c.Photos = append([]string(nil), p.Photos...)
	return c
}

// CoverPhoto is the first photo URL, or "" when the property has none.
func (p Property) CoverPhoto() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}
