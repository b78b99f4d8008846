package meta

import (
	"github.com/goccy/go-json"

	"adpilot/internal/core/domain"
)

type cityTarget struct {
	Key          string `json:"key"`
	Name         string `json:"name,omitempty"`
	Region       string `json:"region,omitempty"`
	Radius       int    `json:"radius,omitempty"`
	DistanceUnit string `json:"distance_unit,omitempty"`
}

type geoLocations struct {
	Cities        []cityTarget `json:"cities"`
	LocationTypes []string     `json:"location_types"`
}

// targetingSpec is the Graph API ad set targeting object.
type targetingSpec struct {
	GeoLocations       geoLocations `json:"geo_locations"`
	AgeMin             int          `json:"age_min"`
	AgeMax             int          `json:"age_max"`
	PublisherPlatforms []string     `json:"publisher_platforms,omitempty"`
	FacebookPositions  []string     `json:"facebook_positions,omitempty"`
	InstagramPositions []string     `json:"instagram_positions,omitempty"`
}

func buildTargeting(t domain.CampaignTargeting, platform domain.Platform) targetingSpec {
	spec := targetingSpec{
		GeoLocations: geoLocations{
			Cities: []cityTarget{{
				Key:          t.CityKey,
				Name:         t.City,
				Region:       t.State,
				Radius:       t.Radius,
				DistanceUnit: "mile",
			}},
			LocationTypes: []string{"home", "recent"},
		},
		AgeMin: t.AgeMin,
		AgeMax: t.AgeMax,
	}
	switch platform {
	case domain.PlatformFacebook:
		spec.PublisherPlatforms = []string{"facebook"}
		spec.FacebookPositions = []string{"feed"}
	case domain.PlatformInstagram:
		spec.PublisherPlatforms = []string{"instagram"}
		spec.InstagramPositions = []string{"stream"}
	}
	return spec
}

func encodeTargeting(t domain.CampaignTargeting, platform domain.Platform) (string, error) {
	raw, err := json.Marshal(buildTargeting(t, platform))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
