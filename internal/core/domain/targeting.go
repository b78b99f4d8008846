package domain

// CampaignTargeting describes who should see a promoted post. CityKey is the
// platform's opaque location key, filled lazily by the geo resolver.
type CampaignTargeting struct {
	City    string
	State   string
	Radius  int // miles
	AgeMin  int
	AgeMax  int
	CityKey string
}
