// Package catalog holds the static tour and location reference data. The data
// is compiled in and validated once at startup; nothing mutates it afterwards.
package catalog

import (
	"fmt"

	"github.com/Jackcomputers-app/flyhightide/model"
)

var Tours = []model.Tour{
	// Southport, NC
	{
		Id:            "southport-beach-lover",
		Name:          "Beach Lover",
		Duration:      "20 minutes",
		Price:         89,
		MinPassengers: 2,
		MaxPassengers: 3,
		MaxWeight:     500,
		Type:          model.TourTypeHelicopter,
		Description:   "Scenic coastal flight along beautiful beaches with stunning ocean views",
		Location:      "southport",
		Features:      []string{"Coastal beaches", "Ocean views", "Perfect for first-timers"},
		Image:         "https://flyhightide.com/_astro/high-tide-aviation-team-southport.Xj9jwjZu.jpg",
	},
	{
		Id:            "southport-oak-island",
		Name:          "Oak Island",
		Duration:      "30 minutes",
		Price:         125,
		MinPassengers: 2,
		MaxPassengers: 3,
		MaxWeight:     500,
		Type:          model.TourTypeHelicopter,
		Description:   "Explore Oak Island's pristine shores and historic sites from above",
		Location:      "southport",
		Features:      []string{"Oak Island beaches", "Historic sites", "Pristine coastline"},
		Image:         "https://flyhightide.com/_astro/HTA-map-southport.DWpsbb3K.jpg",
	},
	{
		Id:            "southport-lighthouse",
		Name:          "Lighthouse Tour",
		Duration:      "35 minutes",
		Price:         145,
		MinPassengers: 1,
		MaxPassengers: 3,
		MaxWeight:     650,
		Type:          model.TourTypeAirplane,
		Description:   "Historic lighthouse tour with stunning aerial views of Cape Fear",
		Location:      "southport",
		Features:      []string{"Historic lighthouses", "Cape Fear views", "Aerial photography"},
		Image:         "https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=800&h=400&fit=crop",
	},
	{
		Id:            "southport-bald-head",
		Name:          "Bald Head Island",
		Duration:      "45 minutes",
		Price:         165,
		MinPassengers: 2,
		MaxPassengers: 3,
		MaxWeight:     500,
		Type:          model.TourTypeHelicopter,
		Description:   "Premium tour of Bald Head Island's natural beauty and wildlife",
		Location:      "southport",
		Features:      []string{"Bald Head Island", "Natural beauty", "Wildlife viewing"},
		Image:         "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800&h=400&fit=crop",
	},
	{
		Id:            "southport-cape-fear",
		Name:          "Cape Fear Passport",
		Duration:      "60 minutes",
		Price:         225,
		MinPassengers: 1,
		MaxPassengers: 3,
		MaxWeight:     650,
		Type:          model.TourTypeAirplane,
		Description:   "Complete Cape Fear region aerial adventure covering all highlights",
		Location:      "southport",
		Features:      []string{"Complete Cape Fear region", "All major highlights", "Extended flight"},
		Image:         "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=800&h=400&fit=crop",
	},
	// St Simons Island, GA
	{
		Id:            "st-simons-lighthouse",
		Name:          "Lighthouse Tour",
		Duration:      "25 minutes",
		Price:         95,
		MinPassengers: 1,
		MaxPassengers: 3,
		MaxWeight:     650,
		Type:          model.TourTypeAirplane,
		Description:   "Historic St Simons lighthouse aerial tour with coastal views",
		Location:      "st-simons",
		Features:      []string{"Historic lighthouse", "Coastal views", "St Simons Island"},
		Image:         "https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=800&h=400&fit=crop",
	},
	{
		Id:            "st-simons-jekyll",
		Name:          "Jekyll Island",
		Duration:      "40 minutes",
		Price:         155,
		MinPassengers: 1,
		MaxPassengers: 3,
		MaxWeight:     650,
		Type:          model.TourTypeAirplane,
		Description:   "Scenic flight over Jekyll Island's natural wonders and beaches",
		Location:      "st-simons",
		Features:      []string{"Jekyll Island", "Natural wonders", "Pristine beaches"},
		Image:         "https://flyhightide.com/_astro/high-tide-helicopter-with-pilot-ready-to-takeoff.FFBadvWW.jpg",
	},
	{
		Id:            "st-simons-golden-isles",
		Name:          "Golden Isles Passport",
		Duration:      "55 minutes",
		Price:         195,
		MinPassengers: 1,
		MaxPassengers: 3,
		MaxWeight:     650,
		Type:          model.TourTypeAirplane,
		Description:   "Complete Golden Isles aerial experience covering all major islands",
		Location:      "st-simons",
		Features:      []string{"Complete Golden Isles", "All major islands", "Comprehensive tour"},
		Image:         "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800&h=400&fit=crop",
	},
}

var Locations = []model.Location{
	{
		Id:          "southport",
		Name:        "Southport, NC",
		Description: "Helicopter + Airplane Tours Available",
		Note:        "Helicopter tours only available at this location",
		Image:       "https://flyhightide.com/_astro/high-tide-aviation-team-southport.Xj9jwjZu.jpg",
	},
	{
		Id:          "st-simons",
		Name:        "St Simons Island, GA",
		Description: "Airplane Tours Only",
		Note:        "Scenic airplane tours of Golden Isles",
		Image:       "https://flyhightide.com/_astro/st-simons-island-ga-tour-map-high-tide-aviation-aerial-tours.B9FcXsEV.jpg",
	},
}

func init() {
	for i := range Locations {
		Locations[i].Tours = ToursByLocation(Locations[i].Id)
	}
}

// TourById returns the tour with the given id, or false when unknown.
func TourById(id string) (model.Tour, bool) {
	for _, tour := range Tours {
		if tour.Id == id {
			return tour, true
		}
	}
	return model.Tour{}, false
}

// LocationById returns the location with the given id, or false when unknown.
func LocationById(id string) (model.Location, bool) {
	for _, location := range Locations {
		if location.Id == id {
			return location, true
		}
	}
	return model.Location{}, false
}

// ToursByLocation returns all tours departing from the given location id.
func ToursByLocation(locationId string) []model.Tour {
	selected := []model.Tour{}
	for _, tour := range Tours {
		if tour.Location == locationId {
			selected = append(selected, tour)
		}
	}
	return selected
}

// Validate checks the integrity of the compiled-in data. Called once from main;
// a failure here is a programming error, not a runtime condition.
func Validate() error {
	seen := make(map[string]bool, len(Tours))
	for _, tour := range Tours {
		if tour.Id == "" {
			return fmt.Errorf("tour %q has empty id", tour.Name)
		}
		if seen[tour.Id] {
			return fmt.Errorf("duplicate tour id %v", tour.Id)
		}
		seen[tour.Id] = true

		if tour.Price <= 0 {
			return fmt.Errorf("tour %v has non-positive price %v", tour.Id, tour.Price)
		}
		if tour.MinPassengers < 1 || tour.MinPassengers > tour.MaxPassengers {
			return fmt.Errorf("tour %v has invalid passenger bounds [%v, %v]",
				tour.Id, tour.MinPassengers, tour.MaxPassengers)
		}
		if tour.MaxWeight <= 0 {
			return fmt.Errorf("tour %v has non-positive max weight %v", tour.Id, tour.MaxWeight)
		}
		if tour.Type != model.TourTypeHelicopter && tour.Type != model.TourTypeAirplane {
			return fmt.Errorf("tour %v has unknown type %v", tour.Id, tour.Type)
		}
		if _, ok := LocationById(tour.Location); !ok {
			return fmt.Errorf("tour %v references unknown location %v", tour.Id, tour.Location)
		}
	}
	return nil
}
