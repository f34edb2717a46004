package ecs

import "strings"

// Group names one of the world's role collections.
type Group uint8

const (
	// GroupVisible holds render candidates.
	GroupVisible Group = iota
	// GroupObstacle holds entities that block movement.
	GroupObstacle
	// GroupAttackable holds valid damage targets.
	GroupAttackable
	// GroupAttack holds active damage sources.
	GroupAttack

	groupCount
)

var groupNames = [groupCount]string{"visible", "obstacle", "attackable", "attack"}

func (g Group) String() string {
	if g >= groupCount {
		return "unknown"
	}
	return groupNames[g]
}

// GroupSet is a bitmask of groups.
type GroupSet uint8

// Groups builds a set from individual groups.
func Groups(gs ...Group) GroupSet {
	var s GroupSet
	for _, g := range gs {
		s |= 1 << g
	}
	return s
}

func (s GroupSet) Has(g Group) bool {
	return s&(1<<g) != 0
}

func (s GroupSet) String() string {
	parts := make([]string, 0, groupCount)
	for g := Group(0); g < groupCount; g++ {
		if s.Has(g) {
			parts = append(parts, g.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
