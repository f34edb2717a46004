package ai

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

// ScriptBrain runs a tengo script to pick the enemy status. The script reads
// distance, attack_radius, notice_radius, can_attack and the current status,
// and assigns the new one to status.
//
// A single compiled script is shared by every enemy; it is not safe for
// concurrent use, which matches the single-threaded frame loop.
type ScriptBrain struct {
	compiled *tengo.Compiled
	log      *zap.Logger
	failed   bool
}

// NewScriptBrain compiles src and dry-runs it once so broken scripts fail at
// startup rather than mid-game.
func NewScriptBrain(src []byte, log *zap.Logger) (*ScriptBrain, error) {
	if log == nil {
		log = zap.NewNop()
	}
	script := tengo.NewScript(src)
	for name, value := range map[string]any{
		"distance":      0.0,
		"attack_radius": 0.0,
		"notice_radius": 0.0,
		"can_attack":    false,
		"status":        string(StatusIdle),
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("ai: declare %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile script: %w", err)
	}

	b := &ScriptBrain{compiled: compiled, log: log}
	if _, err := b.run(Perception{Current: StatusIdle}); err != nil {
		return nil, fmt.Errorf("ai: dry run: %w", err)
	}
	return b, nil
}

// Decide implements Brain. Script failures are logged once and fall back to idle.
func (b *ScriptBrain) Decide(p Perception) Status {
	status, err := b.run(p)
	if err != nil {
		if !b.failed {
			b.log.Warn("enemy script failed, falling back to idle", zap.Error(err))
			b.failed = true
		}
		return StatusIdle
	}
	return status
}

func (b *ScriptBrain) run(p Perception) (Status, error) {
	current := p.Current
	if current == "" {
		current = StatusIdle
	}
	inputs := []struct {
		name  string
		value any
	}{
		{"distance", p.Distance},
		{"attack_radius", p.AttackRadius},
		{"notice_radius", p.NoticeRadius},
		{"can_attack", p.CanAttack},
		{"status", string(current)},
	}
	for _, in := range inputs {
		if err := b.compiled.Set(in.name, in.value); err != nil {
			return "", fmt.Errorf("set %s: %w", in.name, err)
		}
	}
	if err := b.compiled.Run(); err != nil {
		return "", err
	}
	status := Status(b.compiled.Get("status").String())
	if !status.Valid() {
		return "", fmt.Errorf("script returned unknown status %q", status)
	}
	return status, nil
}
