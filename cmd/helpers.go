package cmd

import (
	"io"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/errors"
)

// writeConfig encodes cfg to w with c.
func writeConfig(w io.Writer, cfg *config.ManagerConfig, c codec.Codec) error {
	if err := c.Encode(w, cfg); err != nil {
		return errors.EncodeError(err)
	}
	return nil
}
