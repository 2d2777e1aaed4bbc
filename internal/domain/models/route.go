package models

// Route is a directed city pair stored under its display name
// ("Bulawayo to Harare"). Schedule is the advertised departure time.
type Route struct {
	Name     string  `json:"route"`
	Fare     float64 `json:"fare"`
	Schedule string  `json:"schedule"`
}

// RouteInfo is the fare lookup result for one departure/destination pair.
type RouteInfo struct {
	Fare     float64 `json:"fare"`
	Schedule string  `json:"schedule"`
}

// BusStop describes boarding points within one city as display text.
type BusStop struct {
	City  string `json:"city"`
	Stops string `json:"stops"`
}

// SystemConfig is the startup snapshot the client loads once per session.
// Cities are derived from route names, sorted and de-duplicated.
type SystemConfig struct {
	Cities       []string           `json:"cities"`
	Routes       map[string]float64 `json:"routes"`
	Schedules    map[string]string  `json:"schedules"`
	Stops        map[string]string  `json:"stops"`
	TotalSeats   int                `json:"total_seats"`
	CompanyName  string             `json:"company_name"`
	ContactPhone string             `json:"contact_phone"`
	ContactEmail string             `json:"contact_email"`
}
