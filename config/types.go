package config

// RouterConfig identifies one OpenTripPlanner router endpoint.
type RouterConfig struct {
	Scheme   string `yaml:"scheme" validate:"omitempty,oneof=http https"`
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"gte=0"`
	Router   string `yaml:"router"`
	Version  int    `yaml:"version" validate:"omitempty,oneof=1 2"`
	TimeZone string `yaml:"timezone"`
}

// QueryDefaults seeds new plan requests; zero values fall back to the
// library defaults.
type QueryDefaults struct {
	Mode            string  `yaml:"mode"`
	MaxWalkDistance float64 `yaml:"maxWalkDistance" validate:"gte=0"`
	WalkReluctance  float64 `yaml:"walkReluctance" validate:"gte=0"`
	WaitReluctance  float64 `yaml:"waitReluctance" validate:"gte=0"`
	TransferPenalty int     `yaml:"transferPenalty" validate:"gte=0"`
	MinTransferTime int     `yaml:"minTransferTime" validate:"gte=0"`
	MaxItineraries  int     `yaml:"maxItineraries" validate:"omitempty,gte=1"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Router   RouterConfig  `yaml:"router" validate:"required"`
	Defaults QueryDefaults `yaml:"defaults"`
}
