package tui

import (
	"fmt"
	"strings"

	"github.com/feonix-uav/configuranator/internal/config"
)

// Summary renders the headline values of cfg, one per line.
func Summary(cfg *config.ManagerConfig) string {
	s := cfg.SauronConfig
	c := cfg.Coordinates
	comm := cfg.CommConfig

	rows := []struct {
		label string
		value string
	}{
		{"Test", fmt.Sprintf("%t", cfg.Test)},
		{"Model", fmt.Sprintf("%s (%s, %d px)", s.ModelPath, s.DatasetName, s.InputSize)},
		{"Camera", fmt.Sprintf("FOV %gx%g, %dx%d", s.FOV[0], s.FOV[1], s.Resolution[0], s.Resolution[1])},
		{"Aircraft", fmt.Sprintf("turn radius %g m, velocity %g m/s", cfg.AircraftProperties.TurnRadius, cfg.AircraftProperties.Velocity)},
		{"Areas", fmt.Sprintf("%d waypoints, %d mapping, %d target", len(c.Waypoints), len(c.MappingArea), len(c.TargetArea))},
		{"Thresholds", fmt.Sprintf("flying %g, mapping %g", c.FlyingThreshold, c.MappingThreshold)},
		{"Ports", fmt.Sprintf("dad>gnc %d, gnc>dad %d, dad>sauron %d, sauron>dad %d",
			comm.DadGNCPort, comm.GNCDadPort, comm.DadSauronPort, comm.SauronDadPort)},
		{"Network", fmt.Sprintf("ground station %s, flight computer %s", comm.GroundstationIP, comm.FlightcomputerIP)},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", r.label)))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	return b.String()
}
