package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	poseinterp "github.com/tphakala/go-pose-interpolator"
	"github.com/tphakala/go-pose-interpolator/internal/trajectory"
)

// Scenario describes one transition to simulate.
type Scenario struct {
	Speed       float64 `yaml:"speed"`
	MinDuration float64 `yaml:"min_duration"`
	Reverse     bool    `yaml:"reverse"`
	Easing      string  `yaml:"easing"`
	Order       string  `yaml:"order"`

	FrameRate float64 `yaml:"frame_rate"`
	MaxFrames int     `yaml:"max_frames"`

	// ReverseAt flips the play direction this many seconds after the first
	// frame. Zero or absent means no flip.
	ReverseAt float64 `yaml:"reverse_at"`

	Pair PairConfig `yaml:"pair"`
}

// PairConfig is the YAML form of poseinterp.Pair.
type PairConfig struct {
	Interactive bool       `yaml:"interactive"`
	Start       PoseConfig `yaml:"start"`
	End         PoseConfig `yaml:"end"`
}

// PoseConfig is the YAML form of poseinterp.Pose.
type PoseConfig struct {
	Position []float64 `yaml:"position"`
	Rotation []float64 `yaml:"rotation"`
}

var errInvalidScenario = errors.New("invalid scenario")

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses YAML scenario data, filling sampling defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if s.FrameRate == 0 {
		s.FrameRate = trajectory.DefaultFrameRate
	}
	if s.MaxFrames == 0 {
		s.MaxFrames = trajectory.DefaultMaxFrames
	}
	return &s, nil
}

// DemoScenario returns the scenario used by -demo.
func DemoScenario() *Scenario {
	return &Scenario{
		Speed:       demoSpeed,
		MinDuration: demoMinDuration,
		Easing:      "in-out-quad",
		FrameRate:   demoFrameRate,
		MaxFrames:   trajectory.DefaultMaxFrames,
		ReverseAt:   demoReverseAt,
		Pair: PairConfig{
			Start: PoseConfig{Position: []float64{0, 0, 0}, Rotation: []float64{0, 0, 0}},
			End:   PoseConfig{Position: []float64{demoDistance, 0, 0}, Rotation: []float64{0, demoYaw, 0}},
		},
	}
}

// Config converts the scenario into interpolator configuration.
func (s *Scenario) Config() (*poseinterp.Config, error) {
	order, err := poseinterp.ParseRotationOrder(s.Order)
	if err != nil {
		return nil, err
	}

	fn, err := poseinterp.EasingByName(s.Easing)
	if err != nil {
		return nil, err
	}

	config := &poseinterp.Config{
		Speed:       s.Speed,
		MinDuration: s.MinDuration,
		Reverse:     s.Reverse,
		Easing:      fn,
		Order:       order,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// PosePair converts the scenario's pair.
func (s *Scenario) PosePair() (poseinterp.Pair, error) {
	start, err := s.Pair.Start.pose("start")
	if err != nil {
		return poseinterp.Pair{}, err
	}
	end, err := s.Pair.End.pose("end")
	if err != nil {
		return poseinterp.Pair{}, err
	}
	return poseinterp.Pair{Start: start, End: end, Interactive: s.Pair.Interactive}, nil
}

// Options converts the scenario's sampling settings. onFrame runs before
// every frame; see trajectory.Options.
func (s *Scenario) Options(onFrame func(frame int, now float64)) trajectory.Options {
	return trajectory.Options{
		FrameRate:        s.FrameRate,
		MaxFrames:        s.MaxFrames,
		StopWhenFinished: true,
		OnFrame:          onFrame,
	}
}

func (p PoseConfig) pose(name string) (poseinterp.Pose, error) {
	pos, err := vec3(p.Position)
	if err != nil {
		return poseinterp.Pose{}, fmt.Errorf("%w: %s position: %w", errInvalidScenario, name, err)
	}
	rot, err := vec3(p.Rotation)
	if err != nil {
		return poseinterp.Pose{}, fmt.Errorf("%w: %s rotation: %w", errInvalidScenario, name, err)
	}
	return poseinterp.Pose{Position: pos, Rotation: rot}, nil
}

// vec3 converts a YAML sequence. A missing vector means the origin.
func vec3(v []float64) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return mgl64.Vec3{}, nil
	case vectorComponents:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl64.Vec3{}, fmt.Errorf("want %d components, got %d", vectorComponents, len(v))
	}
}
