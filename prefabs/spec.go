package prefabs

import (
	"fmt"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Stat names in menu order.
const (
	StatHealth = "health"
	StatEnergy = "energy"
	StatAttack = "attack"
	StatMagic  = "magic"
	StatSpeed  = "speed"
)

var StatNames = []string{StatHealth, StatEnergy, StatAttack, StatMagic, StatSpeed}

// Stats maps stat names to values.
type Stats map[string]float64

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

type PlayerSpec struct {
	Stats             Stats     `yaml:"stats"`
	MaxStats          Stats     `yaml:"max_stats"`
	UpgradeCost       Stats     `yaml:"upgrade_cost"`
	Exp               int       `yaml:"exp"`
	AttackCooldownMS  int       `yaml:"attack_cooldown_ms"`
	SwitchCooldownMS  int       `yaml:"switch_cooldown_ms"`
	InvulnerabilityMS int       `yaml:"invulnerability_ms"`
	EnergyRecovery    float64   `yaml:"energy_recovery"`
	Hitbox            InsetSpec `yaml:"hitbox"`
}

// InsetSpec shrinks (negative) or grows a visual rect into a hitbox.
type InsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p PlayerSpec) AttackCooldown() time.Duration {
	return time.Duration(p.AttackCooldownMS) * time.Millisecond
}

func (p PlayerSpec) SwitchCooldown() time.Duration {
	return time.Duration(p.SwitchCooldownMS) * time.Millisecond
}

func (p PlayerSpec) Invulnerability() time.Duration {
	return time.Duration(p.InvulnerabilityMS) * time.Millisecond
}

type WeaponSpec struct {
	Name       string `yaml:"name"`
	CooldownMS int    `yaml:"cooldown_ms"`
	Damage     int    `yaml:"damage"`
}

func (w WeaponSpec) Cooldown() time.Duration {
	return time.Duration(w.CooldownMS) * time.Millisecond
}

type MagicSpec struct {
	Name     string `yaml:"name"`
	Strength int    `yaml:"strength"`
	Cost     int    `yaml:"cost"`
}

type MonsterSpec struct {
	Health           int     `yaml:"health"`
	Exp              int     `yaml:"exp"`
	Damage           int     `yaml:"damage"`
	AttackType       string  `yaml:"attack_type"`
	Speed            float64 `yaml:"speed"`
	Resistance       float64 `yaml:"resistance"`
	AttackRadius     float64 `yaml:"attack_radius"`
	NoticeRadius     float64 `yaml:"notice_radius"`
	AttackCooldownMS int     `yaml:"attack_cooldown_ms"`
	InvincibilityMS  int     `yaml:"invincibility_ms"`
}

func (m MonsterSpec) AttackCooldown() time.Duration {
	return time.Duration(m.AttackCooldownMS) * time.Millisecond
}

func (m MonsterSpec) Invincibility() time.Duration {
	return time.Duration(m.InvincibilityMS) * time.Millisecond
}

type weaponsFile struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

type magicFile struct {
	Magic []MagicSpec `yaml:"magic"`
}

type monstersFile struct {
	Default  string                 `yaml:"default"`
	Monsters map[string]MonsterSpec `yaml:"monsters"`
}

// Catalog bundles every data table the level needs.
type Catalog struct {
	Player         PlayerSpec
	Weapons        []WeaponSpec
	Magic          []MagicSpec
	Monsters       map[string]MonsterSpec
	DefaultMonster string
	EnemyScript    []byte
}

// Files lists the prefab files a catalog is built from.
var Files = []string{"player.yaml", "weapons.yaml", "magic.yaml", "monsters.yaml"}

// EnemyScriptName is the tengo script deciding enemy status.
const EnemyScriptName = "enemy_status.tengo"

// LoadCatalog reads and validates all data tables.
func LoadCatalog() (*Catalog, error) {
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	weapons, err := LoadSpec[weaponsFile]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	magic, err := LoadSpec[magicFile]("magic.yaml")
	if err != nil {
		return nil, err
	}
	monsters, err := LoadSpec[monstersFile]("monsters.yaml")
	if err != nil {
		return nil, err
	}
	script, err := LoadScript(EnemyScriptName)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", EnemyScriptName, err)
	}

	c := &Catalog{
		Player:         player,
		Weapons:        weapons.Weapons,
		Magic:          magic.Magic,
		Monsters:       monsters.Monsters,
		DefaultMonster: monsters.Default,
		EnemyScript:    script,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the cross-file invariants the level relies on.
func (c *Catalog) Validate() error {
	if len(c.Weapons) == 0 {
		return fmt.Errorf("prefabs: no weapons defined")
	}
	if len(c.Magic) == 0 {
		return fmt.Errorf("prefabs: no magic defined")
	}
	if _, ok := c.Monsters[c.DefaultMonster]; !ok {
		return fmt.Errorf("prefabs: default monster %q not defined", c.DefaultMonster)
	}
	for _, name := range StatNames {
		if _, ok := c.Player.Stats[name]; !ok {
			return fmt.Errorf("prefabs: player stat %q missing", name)
		}
		if c.Player.MaxStats[name] < c.Player.Stats[name] {
			return fmt.Errorf("prefabs: player max %s below base value", name)
		}
	}
	return nil
}

// MonsterNames returns the defined monster names, sorted.
func (c *Catalog) MonsterNames() []string {
	names := make([]string, 0, len(c.Monsters))
	for name := range c.Monsters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
