package config

// ManagerConfig is the root configuration shared by all processes.
type ManagerConfig struct {
	Test               bool               `toml:"test" yaml:"test" json:"test"`
	SauronConfig       SauronConfig       `toml:"sauron_config" yaml:"sauron_config" json:"sauron_config"`
	AircraftProperties AircraftProperties `toml:"aircraft_properties" yaml:"aircraft_properties" json:"aircraft_properties"`
	Coordinates        Coordinates        `toml:"coordinates" yaml:"coordinates" json:"coordinates"`
	CommConfig         CommConfig         `toml:"commconfig" yaml:"commconfig" json:"commconfig"`
}

// SauronConfig configures the vision model. FOV is the camera field of
// view in degrees and Resolution its size in pixels, both horizontal
// first.
type SauronConfig struct {
	ModelPath            string     `toml:"model_path" yaml:"model_path" json:"model_path"`
	InputSize            int32      `toml:"input_size" yaml:"input_size" json:"input_size"`
	DatasetName          string     `toml:"dataset_name" yaml:"dataset_name" json:"dataset_name"`
	FOV                  [2]float64 `toml:"fov" yaml:"fov" json:"fov"`
	Resolution           [2]int32   `toml:"resolution" yaml:"resolution" json:"resolution"`
	UntaggedImageFolder  string     `toml:"untagged_image_folder" yaml:"untagged_image_folder" json:"untagged_image_folder"`
	DetectionImageFolder string     `toml:"detection_image_folder" yaml:"detection_image_folder" json:"detection_image_folder"`
	MappingImageFolder   string     `toml:"mapping_image_folder" yaml:"mapping_image_folder" json:"mapping_image_folder"`
}

// AircraftProperties holds the physical properties of the aircraft. The
// turn radius is in meters and the velocity in meters/second.
type AircraftProperties struct {
	TurnRadius float64 `toml:"turn_radius" yaml:"turn_radius" json:"turn_radius"`
	Velocity   float64 `toml:"velocity" yaml:"velocity" json:"velocity"`
}

// Coordinates holds the coordinate sets used in competition.
type Coordinates struct {
	Waypoints        []Point `toml:"waypoints" yaml:"waypoints" json:"waypoints"`
	MappingArea      []Point `toml:"mapping_area" yaml:"mapping_area" json:"mapping_area"`
	TargetArea       []Point `toml:"target_area" yaml:"target_area" json:"target_area"`
	FlyingThreshold  float64 `toml:"flying_threshold" yaml:"flying_threshold" json:"flying_threshold"`
	MappingThreshold float64 `toml:"mapping_threshold" yaml:"mapping_threshold" json:"mapping_threshold"`
}

// Point is a point in 2D space.
type Point struct {
	X float64 `toml:"x" yaml:"x" json:"x"`
	Y float64 `toml:"y" yaml:"y" json:"y"`
}

// CommConfig holds the communication settings between processes.
// Port names read source_destination: DadGNCPort carries dad to gnc traffic.
type CommConfig struct {
	DadGNCPort       int32  `toml:"dad_gnc_port" yaml:"dad_gnc_port" json:"dad_gnc_port"`
	GNCDadPort       int32  `toml:"gnc_dad_port" yaml:"gnc_dad_port" json:"gnc_dad_port"`
	DadSauronPort    int32  `toml:"dad_sauron_port" yaml:"dad_sauron_port" json:"dad_sauron_port"`
	SauronDadPort    int32  `toml:"sauron_dad_port" yaml:"sauron_dad_port" json:"sauron_dad_port"`
	GroundstationIP  string `toml:"groundstation_ip" yaml:"groundstation_ip" json:"groundstation_ip"`
	FlightcomputerIP string `toml:"flightcomputer_ip" yaml:"flightcomputer_ip" json:"flightcomputer_ip"`
}

// normalize replaces nil areas with empty ones so an area always
// serializes as a (possibly empty) array instead of being omitted.
func (c *ManagerConfig) normalize() {
	if c.Coordinates.Waypoints == nil {
		c.Coordinates.Waypoints = []Point{}
	}
	if c.Coordinates.MappingArea == nil {
		c.Coordinates.MappingArea = []Point{}
	}
	if c.Coordinates.TargetArea == nil {
		c.Coordinates.TargetArea = []Point{}
	}
}
