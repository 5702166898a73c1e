package testutil

import (
	"embed"
	"strings"

	"github.com/feonix-uav/configuranator/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// ValidConfig returns the value encoded by fixtures/valid_config.toml.
func ValidConfig() *config.ManagerConfig {
	return &config.ManagerConfig{
		Test:         false,
		SauronConfig: config.DefaultSauronConfig(),
		AircraftProperties: config.AircraftProperties{
			TurnRadius: 25.0,
			Velocity:   18.5,
		},
		Coordinates: config.Coordinates{
			Waypoints: []config.Point{
				{X: 38.1446, Y: -76.4279},
				{X: 38.1451, Y: -76.4262},
			},
			MappingArea: []config.Point{
				{X: 38.1440, Y: -76.4300},
				{X: 38.1460, Y: -76.4300},
				{X: 38.1460, Y: -76.4250},
			},
			TargetArea:       []config.Point{},
			FlyingThreshold:  30.0,
			MappingThreshold: 60.0,
		},
		CommConfig: config.CommConfig{
			DadGNCPort:       5000,
			GNCDadPort:       5001,
			DadSauronPort:    5002,
			SauronDadPort:    5003,
			GroundstationIP:  "192.168.1.10",
			FlightcomputerIP: "192.168.1.20",
		},
	}
}

// ScenarioConfig returns the configuration produced by the scripted
// operator session in ScenarioInput.
func ScenarioConfig() *config.ManagerConfig {
	return &config.ManagerConfig{
		Test: true,
		SauronConfig: config.SauronConfig{
			ModelPath:            "./sauron/data/yolov8n.onnx",
			InputSize:            640,
			DatasetName:          "COCO",
			FOV:                  [2]float64{93.0, 81.0},
			Resolution:           [2]int32{4096, 2160},
			UntaggedImageFolder:  config.DefaultUntaggedImageFolder,
			DetectionImageFolder: config.DefaultDetectionImageFolder,
			MappingImageFolder:   config.DefaultMappingImageFolder,
		},
		AircraftProperties: config.AircraftProperties{
			TurnRadius: 12.5,
			Velocity:   20.0,
		},
		Coordinates: config.Coordinates{
			Waypoints:        []config.Point{},
			MappingArea:      []config.Point{},
			TargetArea:       []config.Point{{X: 1, Y: 2}},
			FlyingThreshold:  10,
			MappingThreshold: 5,
		},
		CommConfig: config.CommConfig{
			DadGNCPort:       5000,
			GNCDadPort:       5001,
			DadSauronPort:    5002,
			SauronDadPort:    5003,
			GroundstationIP:  "192.168.1.10",
			FlightcomputerIP: "10.0.0.2",
		},
	}
}

// ScenarioInput returns a complete operator session, one answer per line,
// that writes ScenarioConfig to fileName.
func ScenarioInput(fileName string) string {
	lines := []string{
		fileName,
		"true",
		"12.5",
		"20.0",
		// waypoints and mapping area: no points
		"no",
		"no",
		// target area: one point
		"yes", "1", "2", "no",
		"10",
		"5",
		"5000", "5001", "5002", "5003",
		"192.168.1.10",
		"10.0.0.2",
		"./sauron/data/yolov8n.onnx",
		"640",
		// image folders: accept defaults
		"", "", "",
		"93.0, 81.0",
		"4096, 2160",
		"COCO",
	}
	return strings.Join(lines, "\n") + "\n"
}
