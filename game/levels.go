package game

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

//go:embed levels.yaml
var defaultRoster []byte

// ClearRule decides when a level is won.
type ClearRule string

const (
	ClearAll  ClearRule = "all"  // every enemy dead
	ClearBig  ClearRule = "big"  // every big enemy and boss dead
	ClearBoss ClearRule = "boss" // every boss dead
)

// ClassSpec is the template an enemy of a class is spawned from.
type ClassSpec struct {
	Size        float32    `yaml:"size"`
	Speed       float32    `yaml:"speed"`
	Health      float32    `yaml:"health"`
	Color       string     `yaml:"color"`
	Label       string     `yaml:"label"`
	Gold        int        `yaml:"gold"`
	Ammo        int        `yaml:"ammo"`
	Wander      [2]float32 `yaml:"wander"`
	BlastDamage float32    `yaml:"blast_damage"`
	BlastLethal bool       `yaml:"blast_lethal"`

	color platform.Color
}

// WanderMax returns the per-axis steering limit.
func (c *ClassSpec) WanderMax() geom.Vec2 {
	return geom.V(c.Wander[0], c.Wander[1])
}

type LevelSpec struct {
	Name  string    `yaml:"name"`
	Clear ClearRule `yaml:"clear"`
	Small int       `yaml:"small"`
	Big   int       `yaml:"big"`
	Boss  bool      `yaml:"boss"`
}

type rosterFile struct {
	Classes map[string]*ClassSpec `yaml:"classes"`
	Levels  []LevelSpec           `yaml:"levels"`
}

// Roster holds the class templates and the ordered level list.
type Roster struct {
	Classes [3]*ClassSpec // indexed by Class
	Levels  []LevelSpec
}

// Class returns the template for c.
func (r *Roster) Class(c Class) *ClassSpec {
	return r.Classes[c]
}

var colorNames = map[string]platform.Color{
	"lime":     platform.Lime,
	"green":    platform.Green,
	"orange":   platform.Orange,
	"maroon":   platform.Maroon,
	"red":      platform.Red,
	"pink":     platform.Pink,
	"purple":   platform.Purple,
	"skyblue":  platform.SkyBlue,
	"darkblue": platform.DarkBlue,
	"yellow":   platform.Yellow,
	"gold":     platform.Gold,
	"white":    platform.White,
	"gray":     platform.Gray,
}

// LoadRoster reads rosters from a YAML file. An empty path loads the
// built-in rosters.
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return ParseRoster(defaultRoster)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels %s: %w", path, err)
	}
	r, err := ParseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", path, err)
	}
	return r, nil
}

// DefaultRoster returns the built-in rosters.
func DefaultRoster() *Roster {
	r, err := ParseRoster(defaultRoster)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRoster decodes and validates roster YAML.
func ParseRoster(data []byte) (*Roster, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}

	r := &Roster{Levels: f.Levels}
	var errs []error
	for _, class := range []Class{ClassSmall, ClassBig, ClassBoss} {
		spec, ok := f.Classes[class.String()]
		if !ok || spec == nil {
			errs = append(errs, fmt.Errorf("class %s is missing", class))
			continue
		}
		if spec.Size <= 0 || spec.Health <= 0 {
			errs = append(errs, fmt.Errorf("class %s: size and health must be positive", class))
		}
		color, ok := colorNames[spec.Color]
		if !ok {
			errs = append(errs, fmt.Errorf("class %s: unknown color %q", class, spec.Color))
		}
		spec.color = color
		r.Classes[class] = spec
	}

	if len(r.Levels) == 0 {
		errs = append(errs, errors.New("no levels defined"))
	}
	for i, lvl := range r.Levels {
		switch lvl.Clear {
		case ClearAll, ClearBig, ClearBoss:
		default:
			errs = append(errs, fmt.Errorf("level %d: unknown clear rule %q", i+1, lvl.Clear))
		}
		if lvl.Small < 0 || lvl.Big < 0 {
			errs = append(errs, fmt.Errorf("level %d: enemy counts must not be negative", i+1))
		}
		if lvl.Clear == ClearBoss && !lvl.Boss {
			errs = append(errs, fmt.Errorf("level %d: boss clear rule without a boss", i+1))
		}
		if lvl.Clear == ClearBig && lvl.Big == 0 && !lvl.Boss {
			errs = append(errs, fmt.Errorf("level %d: big clear rule without big enemies", i+1))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}
