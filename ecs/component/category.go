package component

// Category tags what an entity is. It is a closed set; behaviour is selected
// by switching on it or by interface assertion, never by string compare.
type Category uint8

const (
	Boundary Category = iota + 1
	Grass
	Object
	Player
	Enemy
	Weapon
	Magic
	Particle
)

var categoryNames = map[Category]string{
	Boundary: "boundary",
	Grass:    "grass",
	Object:   "object",
	Player:   "player",
	Enemy:    "enemy",
	Weapon:   "weapon",
	Magic:    "magic",
	Particle: "particle",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// IsAttack reports whether the category deals damage.
func (c Category) IsAttack() bool {
	return c == Weapon || c == Magic
}
