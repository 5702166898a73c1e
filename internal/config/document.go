package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/errors"
	"github.com/feonix-uav/configuranator/internal/logging"
)

// Load reads and decodes the configuration document at path. The codec
// is chosen from the file extension.
func Load(path string) (*ManagerConfig, error) {
	c := codec.ForPath(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError("read", path, err)
	}
	defer f.Close()

	var cfg ManagerConfig
	if err := c.Decode(f, &cfg); err != nil {
		return nil, errors.DecodeError(path, err)
	}
	cfg.normalize()

	logging.Debug("loaded configuration", "path", path, "format", c.Format())
	return &cfg, nil
}

// Save encodes cfg with the codec for path and writes it atomically,
// replacing any existing file.
func Save(path string, cfg *ManagerConfig) error {
	return SaveAs(path, cfg, codec.ForPath(path))
}

// SaveAs encodes cfg with c and writes it atomically to path. Nothing is
// written if encoding fails.
func SaveAs(path string, cfg *ManagerConfig, c codec.Codec) error {
	out := *cfg
	out.normalize()

	var buf bytes.Buffer
	if err := c.Encode(&buf, &out); err != nil {
		return errors.EncodeError(err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return errors.IOError("write", path, err)
	}

	logging.Debug("saved configuration", "path", path, "format", c.Format(), "bytes", buf.Len())
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and
// renames it into place, so readers see either the old or the new file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		closeTemp(tmp)
		removeTemp(tmpName)
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		closeTemp(tmp)
		removeTemp(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		removeTemp(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		removeTemp(tmpName)
		return err
	}
	return nil
}

func closeTemp(f *os.File) {
	if err := f.Close(); err != nil {
		logging.Warn("failed to close temporary file", "path", f.Name(), "error", err)
	}
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.Warn("failed to remove temporary file", "path", path, "error", err)
	}
}

// ReadConfig loads a configuration document for another process.
func ReadConfig(path string) (*ManagerConfig, error) {
	return Load(path)
}

// GenerateConfig saves cfg to path and reports success to the operator.
func GenerateConfig(path string, cfg *ManagerConfig) error {
	if err := Save(path, cfg); err != nil {
		return err
	}
	logging.UserSuccess("Configuration file generation: SUCCESS")
	return nil
}
