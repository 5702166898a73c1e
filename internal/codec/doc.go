// Package codec encodes and decodes configuration documents.
//
// A Codec turns a Go value into a textual document and back. Three
// formats are provided:
//
//   - TOML: the canonical on-disk format (".toml"), via BurntSushi/toml
//   - YAML: export format (".yaml"), via gopkg.in/yaml.v3
//   - JSON: export format (".json"), via encoding/json
//
// # Required Keys
//
// Every field of the target struct must be present in the document
// (slices of structs are checked element by element). Missing keys are
// reported as *MissingKeyError naming the dotted key path. Keys the
// target does not declare are ignored, with one warning listing them:
//
//	level=WARN msg="ignoring unknown keys" format=toml keys="extra, section.area.0.z"
//
//	c := codec.ForPath("flight.toml")
//	var cfg config.ManagerConfig
//	if err := c.Decode(r, &cfg); err != nil {
//	    var missing *codec.MissingKeyError
//	    if errors.As(err, &missing) {
//	        // missing.Key == "commconfig.groundstation_ip"
//	    }
//	}
package codec
