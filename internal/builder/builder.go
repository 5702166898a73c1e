package builder

import (
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/logging"
	"github.com/feonix-uav/configuranator/internal/prompt"
)

// Builder collects a ManagerConfig from an operator.
type Builder struct {
	p *prompt.Prompter
}

// New creates a Builder that asks its questions through p.
func New(p *prompt.Prompter) *Builder {
	return &Builder{p: p}
}

// Run collects a configuration and saves it to the file name the
// operator chose. It returns that file name.
func (b *Builder) Run() (string, error) {
	fileName, cfg, err := b.Build()
	if err != nil {
		return "", err
	}
	if err := config.GenerateConfig(fileName, cfg); err != nil {
		return "", err
	}
	return fileName, nil
}

// Build asks every question and returns the chosen file name and the
// assembled configuration. Nothing is written.
func (b *Builder) Build() (string, *config.ManagerConfig, error) {
	fileName, err := prompt.AskValid(b.p,
		"Enter the configuration file name (e.g., test_config.toml): ",
		prompt.String, config.ValidateFileName)
	if err != nil {
		return "", nil, err
	}

	test, err := prompt.Ask(b.p, "Is this a test configuration? (true/false): ", prompt.Bool)
	if err != nil {
		return "", nil, err
	}

	aircraft, err := b.aircraftProperties()
	if err != nil {
		return "", nil, err
	}

	coords, err := b.coordinates()
	if err != nil {
		return "", nil, err
	}

	comm, err := b.commConfig()
	if err != nil {
		return "", nil, err
	}

	sauron, err := b.sauronConfig()
	if err != nil {
		return "", nil, err
	}

	cfg := &config.ManagerConfig{
		Test:               test,
		SauronConfig:       sauron,
		AircraftProperties: aircraft,
		Coordinates:        coords,
		CommConfig:         comm,
	}

	logging.Debug("configuration collected", "file", fileName, "test", test,
		"waypoints", len(coords.Waypoints), "mapping_area", len(coords.MappingArea), "target_area", len(coords.TargetArea))
	return fileName, cfg, nil
}

func (b *Builder) aircraftProperties() (config.AircraftProperties, error) {
	turnRadius, err := prompt.Ask(b.p, "Enter the turn radius (meters): ", prompt.Float64)
	if err != nil {
		return config.AircraftProperties{}, err
	}
	velocity, err := prompt.Ask(b.p, "Enter the velocity (meters/second): ", prompt.Float64)
	if err != nil {
		return config.AircraftProperties{}, err
	}
	return config.AircraftProperties{TurnRadius: turnRadius, Velocity: velocity}, nil
}

func (b *Builder) coordinates() (config.Coordinates, error) {
	var c config.Coordinates
	var err error

	if c.Waypoints, err = prompt.AskArea(b.p, "WAYPOINTS"); err != nil {
		return c, err
	}
	if c.MappingArea, err = prompt.AskArea(b.p, "MAPPING"); err != nil {
		return c, err
	}
	if c.TargetArea, err = prompt.AskArea(b.p, "TARGET"); err != nil {
		return c, err
	}
	if c.FlyingThreshold, err = prompt.Ask(b.p, "Enter flying altitude threshold: ", prompt.Float64); err != nil {
		return c, err
	}
	if c.MappingThreshold, err = prompt.Ask(b.p, "Enter mapping altitude threshold: ", prompt.Float64); err != nil {
		return c, err
	}
	return c, nil
}

func (b *Builder) commConfig() (config.CommConfig, error) {
	var c config.CommConfig

	ports := []struct {
		label string
		dst   *int32
	}{
		{"Enter the Dad to GNC port number: ", &c.DadGNCPort},
		{"Enter the GNC to Dad port number: ", &c.GNCDadPort},
		{"Enter the Dad to Sauron port number: ", &c.DadSauronPort},
		{"Enter the Sauron to Dad port number: ", &c.SauronDadPort},
	}
	for _, port := range ports {
		v, err := prompt.Ask(b.p, port.label, prompt.Int32)
		if err != nil {
			return c, err
		}
		*port.dst = v
	}

	groundstation, err := prompt.Ask(b.p, "Enter the ground station IP: ", prompt.IP)
	if err != nil {
		return c, err
	}
	flightcomputer, err := prompt.Ask(b.p, "Enter the flight computer IP: ", prompt.IP)
	if err != nil {
		return c, err
	}
	c.GroundstationIP = groundstation.String()
	c.FlightcomputerIP = flightcomputer.String()

	return c, nil
}

func (b *Builder) sauronConfig() (config.SauronConfig, error) {
	defaults := config.DefaultSauronConfig()
	var s config.SauronConfig
	var err error

	if s.ModelPath, err = prompt.Ask(b.p, "Enter file path to sauron model: ", prompt.String); err != nil {
		return s, err
	}
	if s.InputSize, err = prompt.Ask(b.p, "Enter model image input size: ", prompt.Int32); err != nil {
		return s, err
	}

	folders := []struct {
		label string
		def   string
		dst   *string
	}{
		{"Enter the folder path for images before bounds check", defaults.UntaggedImageFolder, &s.UntaggedImageFolder},
		{"Enter the folder path for Sauron detection images", defaults.DetectionImageFolder, &s.DetectionImageFolder},
		{"Enter the folder path for Sauron mapping images", defaults.MappingImageFolder, &s.MappingImageFolder},
	}
	for _, f := range folders {
		if *f.dst, err = b.folder(f.label, f.def); err != nil {
			return s, err
		}
	}

	if s.FOV, err = prompt.AskTuple(b.p, "Enter the FOV of the camera in the format f64, f64: ", prompt.Float64); err != nil {
		return s, err
	}
	if s.Resolution, err = prompt.AskTuple(b.p, "Enter the resolution of the camera in the format i32, i32: ", prompt.Int32); err != nil {
		return s, err
	}
	if s.DatasetName, err = prompt.AskValid(b.p, "Enter name of dataset to be used (i.e: COCO): ", prompt.String, config.ValidateDatasetName); err != nil {
		return s, err
	}

	return s, nil
}

// folder asks for a directory path; a blank answer selects def.
func (b *Builder) folder(label, def string) (string, error) {
	path, err := prompt.Ask(b.p, label+" [Leave empty for default - "+def+"]: ", prompt.String)
	if err != nil {
		return "", err
	}
	if path == "" {
		logging.Debug("using default folder", "path", def)
		return def, nil
	}
	return path, nil
}
