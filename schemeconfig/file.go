package schemeconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the TOML-loadable on-disk override of a named scheme: any
// zero-valued field falls back to the named scheme's preset.
type FileConfig struct {
	SchemeID  string `toml:"scheme_id"`
	NumLeaves uint32 `toml:"num_leaves,omitempty"`
	MaxTries  int    `toml:"max_tries,omitempty"`
}

// ConfigOption customizes a Scheme loaded from disk, mirroring the
// teacher's functional-options ConfigOption pattern for its node config.
type ConfigOption func(*Scheme)

// WithNumLeaves overrides the number of leaves (and hence signable
// epochs) of the loaded scheme.
func WithNumLeaves(n uint32) ConfigOption {
	return func(s *Scheme) { s.NumLeaves = n }
}

// WithMaxTries overrides the rejection-sampling attempt budget of a
// target-sum scheme.
func WithMaxTries(n int) ConfigOption {
	return func(s *Scheme) { s.MaxTries = n }
}

// LoadFile reads a TOML scheme-override file from path, resolves its
// scheme_id against the built-in presets, and applies opts on top.
func LoadFile(path string, opts ...ConfigOption) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("schemeconfig: reading %s: %w", path, err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Scheme{}, fmt.Errorf("schemeconfig: parsing %s: %w", path, err)
	}

	scheme, err := GetSchemeByIDWithDefault(fc.SchemeID)
	if err != nil {
		return Scheme{}, err
	}
	if fc.NumLeaves != 0 {
		scheme.NumLeaves = fc.NumLeaves
	}
	if fc.MaxTries != 0 {
		scheme.MaxTries = fc.MaxTries
	}
	for _, opt := range opts {
		opt(&scheme)
	}
	return scheme, nil
}

// WriteFile serializes scheme's identifying fields as a TOML override file
// at path, so a later LoadFile call reproduces the same configuration.
func WriteFile(path string, scheme Scheme) error {
	fc := FileConfig{SchemeID: scheme.ID, NumLeaves: scheme.NumLeaves, MaxTries: scheme.MaxTries}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("schemeconfig: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("schemeconfig: encoding %s: %w", path, err)
	}
	return nil
}
