package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/oliverbestmann/vmm"
)

var ErrUnknownStep = errors.New("config: unknown transform step")

// Config holds the settings of a benchmark run.
type Config struct {
	Points  int    `json:"points"`
	Workers int    `json:"workers"`
	Profile string `json:"profile"`

	// Steps of the transform chain, applied in order onto the identity.
	Chain []Step `json:"chain"`
}

// Step describes one transform in the chain.
type Step struct {
	// One of translate, scale, rotate or rotate_xyz.
	Op string `json:"op"`

	// Offset, scale factors, rotation axis or per axis angles, depending on Op.
	Vec [3]float64 `json:"vec"`

	// Rotation angle in degrees, used by rotate.
	Degrees float64 `json:"degrees"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Points  int
	Workers int
	Profile string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies the flags and fills empty fields with defaults.
// Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Points > 0 {
		c.Points = flags.Points
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Profile != "" {
		c.Profile = flags.Profile
	}

	if c.Points <= 0 {
		c.Points = 1_000_000
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	if len(c.Chain) == 0 {
		c.Chain = []Step{
			{Op: "translate", Vec: [3]float64{1, 2, 3}},
			{Op: "rotate", Vec: [3]float64{1, 1, 0}, Degrees: 30},
			{Op: "scale", Vec: [3]float64{2, 2, 2}},
		}
	}
}

// Transform composes the steps of the chain into a single matrix.
func (c *Config) Transform() (vmm.Mat4d, error) {
	tr := vmm.Identity4[float64]()

	for idx, step := range c.Chain {
		vec := vmm.VectorFrom[float64](step.Vec)

		switch step.Op {
		case "translate":
			tr = vmm.Translate3D(tr, vec)

		case "scale":
			tr = vmm.Scale3D(tr, vec)

		case "rotate":
			tr = vmm.Rotate3D(tr, vmm.DegToRad(step.Degrees), vec)

		case "rotate_xyz":
			tr = vmm.RotateXYZ(tr, vmm.DegToRad(1), vec)

		default:
			return tr, fmt.Errorf("%w: %q at index %d", ErrUnknownStep, step.Op, idx)
		}
	}

	return tr, nil
}
