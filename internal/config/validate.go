package config

import (
	"fmt"
	"math"
	"net/netip"
	"slices"
	"strings"

	"github.com/feonix-uav/configuranator/internal/codec"
)

// ValidateFileName checks that a configuration file name carries the
// extension of the canonical document format.
func ValidateFileName(name string) error {
	ext := codec.NewTOMLCodec().Extension()
	if !strings.HasSuffix(name, ext) {
		return fmt.Errorf("the file name must end with '%s'", ext)
	}
	return nil
}

// ValidateDatasetName checks that name is an accepted dataset. The match
// is exact and case-sensitive.
func ValidateDatasetName(name string) error {
	accepted := AcceptedDatasets()
	if !slices.Contains(accepted, name) {
		return fmt.Errorf("unsupported dataset %q (must be one of: %s)", name, strings.Join(accepted, ", "))
	}
	return nil
}

// ValidateIP checks that s is an IPv4 or IPv6 address. Scoped IPv6
// addresses such as "fe80::1%eth0" are rejected.
func ValidateIP(s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return fmt.Errorf("invalid IP address %q", s)
	}
	if addr.Zone() != "" {
		return fmt.Errorf("invalid IP address %q: zones are not supported", s)
	}
	return nil
}

func validatePort(name string, port int32) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("%s must be between 0 and 65535 (got %d)", name, port)
	}
	return nil
}

func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number (got %v)", name, v)
	}
	return nil
}

// Validate checks field-level rules that the document structure alone
// does not guarantee. It does not check fields against each other.
func (c *ManagerConfig) Validate() error {
	if err := c.SauronConfig.Validate(); err != nil {
		return fmt.Errorf("sauron_config: %w", err)
	}
	if err := c.AircraftProperties.Validate(); err != nil {
		return fmt.Errorf("aircraft_properties: %w", err)
	}
	if err := c.Coordinates.Validate(); err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	if err := c.CommConfig.Validate(); err != nil {
		return fmt.Errorf("commconfig: %w", err)
	}
	return nil
}

// Validate checks that the SauronConfig is valid.
func (s *SauronConfig) Validate() error {
	if s.ModelPath == "" {
		return fmt.Errorf("model_path is required")
	}
	if err := ValidateDatasetName(s.DatasetName); err != nil {
		return err
	}
	for i, v := range s.FOV {
		if err := validateFinite(fmt.Sprintf("fov[%d]", i), v); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that the AircraftProperties are valid.
func (a *AircraftProperties) Validate() error {
	if err := validateFinite("turn_radius", a.TurnRadius); err != nil {
		return err
	}
	return validateFinite("velocity", a.Velocity)
}

// Validate checks that every point and threshold is finite.
func (c *Coordinates) Validate() error {
	areas := []struct {
		name   string
		points []Point
	}{
		{"waypoints", c.Waypoints},
		{"mapping_area", c.MappingArea},
		{"target_area", c.TargetArea},
	}
	for _, area := range areas {
		for i, p := range area.points {
			if err := validateFinite(fmt.Sprintf("%s[%d].x", area.name, i), p.X); err != nil {
				return err
			}
			if err := validateFinite(fmt.Sprintf("%s[%d].y", area.name, i), p.Y); err != nil {
				return err
			}
		}
	}
	if err := validateFinite("flying_threshold", c.FlyingThreshold); err != nil {
		return err
	}
	return validateFinite("mapping_threshold", c.MappingThreshold)
}

// Validate checks that ports are in range and both IPs parse.
func (c *CommConfig) Validate() error {
	ports := []struct {
		name string
		port int32
	}{
		{"dad_gnc_port", c.DadGNCPort},
		{"gnc_dad_port", c.GNCDadPort},
		{"dad_sauron_port", c.DadSauronPort},
		{"sauron_dad_port", c.SauronDadPort},
	}
	for _, p := range ports {
		if err := validatePort(p.name, p.port); err != nil {
			return err
		}
	}
	if err := ValidateIP(c.GroundstationIP); err != nil {
		return fmt.Errorf("groundstation_ip: %w", err)
	}
	if err := ValidateIP(c.FlightcomputerIP); err != nil {
		return fmt.Errorf("flightcomputer_ip: %w", err)
	}
	return nil
}
