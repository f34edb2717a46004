package level

import (
	"time"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/ui"
)

// State is the level's run state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Level owns one play session: the world, its systems and the player. It is
// also the world-services implementation handed to actors.
type Level struct {
	world      *ecs.World
	clock      ecs.Clock
	scheduler  *ecs.Scheduler
	compositor *system.Compositor
	particles  *entity.ParticleFactory
	magic      *entity.MagicPlayer
	modal      *ui.GameOverModal
	gfx        Graphics
	log        *zap.Logger
	tileSize   float64

	player        *entity.Player
	playerID      ecs.Entity
	currentAttack ecs.Entity

	state     State
	gameOvers int
}

// Update advances the simulation one frame while running. Paused and
// game-over levels do not simulate; the clock stands still with them.
func (l *Level) Update() {
	if l.state != StateRunning {
		return
	}
	l.clock.Tick()
	l.scheduler.Update(l.world)
	if l.player.Health() <= 0 {
		l.enterGameOver()
	}
}

func (l *Level) enterGameOver() {
	if l.state == StateGameOver {
		return
	}
	l.gameOvers++
	l.setState(StateGameOver)
	l.world.Events().Push(ecs.Event{
		Kind:   ecs.EventGameOver,
		Entity: l.playerID,
		Pos:    l.player.Center(),
		Amount: l.player.Health(),
	})
}

func (l *Level) setState(s State) {
	if s == l.state {
		return
	}
	l.log.Info("level state", zap.Stringer("from", l.state), zap.Stringer("to", s))
	l.world.Events().Push(ecs.Event{Kind: ecs.EventStateChange, Detail: s.String()})
	l.state = s
}

// ToggleMenu switches between running and paused. It does nothing once the
// game is over.
func (l *Level) ToggleMenu() {
	switch l.state {
	case StateRunning:
		l.setState(StatePaused)
	case StatePaused:
		l.setState(StateRunning)
	}
}

// Draw renders the world with the camera on the player.
func (l *Level) Draw(dst system.Canvas) {
	l.compositor.Draw(dst, l.world, l.player.Bounds())
}

// HandleGameOverClick applies a click on the game-over modal. Quit moves the
// level to StateQuit; restart is left to the caller, which builds a new level.
func (l *Level) HandleGameOverClick(x, y int) ui.Choice {
	if l.state != StateGameOver {
		return ui.ChoiceNone
	}
	choice := l.modal.Choose(x, y)
	if choice != ui.ChoiceNone {
		l.log.Info("game over choice", zap.Stringer("choice", choice))
	}
	if choice == ui.ChoiceQuit {
		l.setState(StateQuit)
	}
	return choice
}

// CreateAttack spawns the player's weapon, replacing any live one.
func (l *Level) CreateAttack() {
	l.DestroyAttack()
	w := entity.NewWeapon(l.player, l.playerID, l.gfx)
	l.currentAttack = l.world.Spawn(w, ecs.Groups(ecs.GroupVisible, ecs.GroupAttack))
}

// DestroyAttack removes the player's weapon if one is live.
func (l *Level) DestroyAttack() {
	if l.currentAttack.Valid() {
		l.world.Kill(l.currentAttack)
	}
	l.currentAttack = 0
}

// CreateMagic casts a spell for the player. Unknown styles do nothing.
func (l *Level) CreateMagic(style string, strength, cost int) {
	switch style {
	case entity.MagicHeal:
		for _, fx := range l.magic.Heal(l.player, strength, cost) {
			l.world.Spawn(fx, ecs.Groups(ecs.GroupVisible))
		}
	case entity.MagicFlame:
		for _, fx := range l.magic.Flame(l.player, l.playerID, cost) {
			l.world.Spawn(fx, ecs.Groups(ecs.GroupVisible, ecs.GroupAttack))
		}
	default:
		l.log.Debug("unknown magic style", zap.String("style", style))
		return
	}
	l.world.Events().Push(ecs.Event{Kind: ecs.EventMagicCast, Entity: l.playerID, Detail: style, Amount: cost})
}

// DamagePlayer is the only path from combat to player health. Damage lands
// only while the player is vulnerable.
func (l *Level) DamagePlayer(amount int, attackType string) {
	if !l.player.Hurt(amount, l.clock.Now()) {
		return
	}
	pos := l.player.Center()
	l.world.Spawn(l.particles.Particle(attackType, pos), ecs.Groups(ecs.GroupVisible))
	l.world.Events().Push(ecs.Event{Kind: ecs.EventPlayerHurt, Entity: l.playerID, Pos: pos, Amount: amount, Detail: attackType})
}

func (l *Level) TriggerDeathParticles(pos cp.Vector, particleType string) {
	l.world.Spawn(l.particles.Particle(particleType, pos), ecs.Groups(ecs.GroupVisible))
	l.world.Events().Push(ecs.Event{Kind: ecs.EventEnemyDied, Pos: pos, Detail: particleType})
}

func (l *Level) AddExp(amount int) {
	l.player.AddExp(amount)
	l.world.Events().Push(ecs.Event{Kind: ecs.EventExpGained, Entity: l.playerID, Amount: amount})
}

// DrainEvents returns the gameplay events since the last call.
func (l *Level) DrainEvents() []ecs.Event {
	return l.world.Events().Drain()
}

func (l *Level) playerSnapshot() (ecs.PlayerSnapshot, bool) {
	if l.player == nil || !l.world.IsAlive(l.playerID) {
		return ecs.PlayerSnapshot{}, false
	}
	return l.player.Snapshot(l.playerID), true
}

func (l *Level) State() State              { return l.state }
func (l *Level) Player() *entity.Player    { return l.player }
func (l *Level) PlayerID() ecs.Entity      { return l.playerID }
func (l *Level) World() *ecs.World         { return l.world }
func (l *Level) Now() time.Duration        { return l.clock.Now() }
func (l *Level) CurrentAttack() ecs.Entity { return l.currentAttack }
func (l *Level) GameOverCount() int        { return l.gameOvers }
func (l *Level) Modal() *ui.GameOverModal  { return l.modal }

var _ entity.Services = (*Level)(nil)
