package ai

// Status is an enemy's behaviour for the current frame.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusMove   Status = "move"
	StatusAttack Status = "attack"
)

func (s Status) Valid() bool {
	switch s {
	case StatusIdle, StatusMove, StatusAttack:
		return true
	}
	return false
}

// Perception is what an enemy knows when choosing its status.
type Perception struct {
	Distance     float64
	AttackRadius float64
	NoticeRadius float64
	CanAttack    bool
	Current      Status
}

// Brain picks an enemy status from its perception.
type Brain interface {
	Decide(p Perception) Status
}

// BrainFunc adapts a function to Brain.
type BrainFunc func(p Perception) Status

func (f BrainFunc) Decide(p Perception) Status {
	return f(p)
}
