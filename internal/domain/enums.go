package domain

type Category string

const (
	CategoryHotel      Category = "hotel"
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryAttraction Category = "attraction"
	CategoryShop       Category = "shop"
	CategoryOnsen      Category = "onsen"
)

// ValidCategories is the canonical set of accepted experience categories.
var ValidCategories = map[string]bool{
	"hotel": true, "restaurant": true, "cafe": true,
	"attraction": true, "shop": true, "onsen": true,
}

type TransportMode string

const (
	ModeWalking TransportMode = "walking"
	ModeCycling TransportMode = "cycling"
	ModeTransit TransportMode = "transit"
	ModeDriving TransportMode = "driving"
)

// ValidTransportModes is the canonical set of accepted transport mode strings.
var ValidTransportModes = map[string]bool{
	"walking": true, "cycling": true, "transit": true, "driving": true,
}

type CollaboratorRole string

const (
	RoleOwner  CollaboratorRole = "owner"
	RoleEditor CollaboratorRole = "editor"
	RoleViewer CollaboratorRole = "viewer"
)
