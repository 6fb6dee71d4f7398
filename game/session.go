package game

import (
	"fmt"
	"io"
	"log"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/graphwar/arena"
	"github.com/lixenwraith/graphwar/audio"
	"github.com/lixenwraith/graphwar/config"
	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/curve"
	"github.com/lixenwraith/graphwar/expr"
	"github.com/lixenwraith/graphwar/vmath"
)

// Shot is one fired curve and its collision outcome
type Shot struct {
	Expr   *expr.Expression
	Origin vmath.Point
	Domain curve.Domain
	// Result event indices for enemies refer to Round().Enemies
	Result curve.Result
	// Cue is the mixed sound of the shot, nil when audio is disabled
	Cue beep.Streamer
}

// Session holds the caller-side state between shots: the current round,
// which enemies are still alive, and the equation being edited
type Session struct {
	cfg    *config.Config
	rng    *vmath.FastRand
	logger *log.Logger

	round *arena.Round
	alive []bool

	equation string
	compiled *expr.Expression
	shot     *Shot

	kills         int
	roundsCleared int
}

// NewSession places the first round; a nil logger discards output
func NewSession(cfg *config.Config, seed uint64, logger *log.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		cfg:    cfg,
		rng:    vmath.NewFastRand(seed),
		logger: logger,
	}
	if err := s.nextRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// nextRound places a fresh round, retrying with new draws on exhaustion
func (s *Session) nextRound() error {
	rules := s.cfg.Rules()

	var err error
	for attempt := 0; attempt <= constant.RoundRetries; attempt++ {
		var r *arena.Round
		r, err = arena.PlaceRound(s.rng, rules)
		if err == nil {
			s.setRound(r)
			s.logger.Printf("[GAME] Round %s placed: %d enemies, %d obstacles",
				r.ID, len(r.Enemies), len(r.Obstacles))
			return nil
		}
		s.logger.Printf("[GAME] Round placement attempt %d failed: %v", attempt+1, err)
	}
	return fmt.Errorf("place round: %w", err)
}

func (s *Session) setRound(r *arena.Round) {
	s.round = r
	s.alive = make([]bool, len(r.Enemies))
	for i := range s.alive {
		s.alive[i] = true
	}
	s.shot = nil
}

// SetEquation replaces the equation text and discards the compiled form and the last shot
func (s *Session) SetEquation(text string) {
	s.equation = text
	s.compiled = nil
	s.shot = nil
}

// Commit compiles the current equation text
func (s *Session) Commit() error {
	e, err := expr.Compile(s.equation)
	if err != nil {
		s.logger.Printf("[GAME] Compile %q failed: %v", s.equation, err)
		return err
	}
	s.compiled = e
	return nil
}

// Fire samples the committed equation from the player and resolves collisions
// against alive enemies and every obstacle. The shot is cached until the
// equation changes or the round ends.
func (s *Session) Fire() (*Shot, error) {
	if s.compiled == nil {
		if err := s.Commit(); err != nil {
			return nil, err
		}
	}

	origin := s.round.Player.Center
	domain := s.cfg.Domain()
	if s.cfg.Curve.FollowOrigin {
		domain = domain.Follow(origin)
	}
	points := curve.Sample(s.compiled, origin, domain, s.cfg.Curve.Resolution)

	// Dead enemies are left out; targets maps detection indices back to the round
	targets := make([]int, 0, len(s.alive))
	enemies := make([]curve.Circle, 0, len(s.alive))
	for i, e := range s.round.Enemies {
		if s.alive[i] {
			targets = append(targets, i)
			enemies = append(enemies, e.Circle())
		}
	}

	res := curve.Detect(points, enemies, arena.Circles(s.round.Obstacles))
	for i := range res.Events {
		if res.Events[i].Kind == curve.KindEnemy {
			res.Events[i].Index = targets[res.Events[i].Index]
		}
	}

	s.shot = &Shot{
		Expr:   s.compiled,
		Origin: origin,
		Domain: domain,
		Result: res,
		Cue:    audio.ShotCue(res, s.cfg.Audio, constant.FrameDuration),
	}
	s.logger.Printf("[GAME] Fired %s: %d points, %d visible events, blocked=%t",
		s.compiled, len(res.Points), len(res.Visible()), res.Blocked)
	return s.shot, nil
}

// Advance removes enemies the last shot has reached by frame and returns their
// round indices. Clearing the last enemy places a new round; the indices
// returned then refer to the round that just ended.
func (s *Session) Advance(frame int) ([]int, error) {
	if s.shot == nil {
		return nil, nil
	}

	var killed []int
	for _, ev := range s.shot.Result.Reached(frame) {
		if ev.Kind != curve.KindEnemy || !s.alive[ev.Index] {
			continue
		}
		s.alive[ev.Index] = false
		killed = append(killed, ev.Index)
	}
	s.kills += len(killed)
	if len(killed) > 0 {
		s.logger.Printf("[GAME] Frame %d: killed %v", frame, killed)
	}

	for _, a := range s.alive {
		if a {
			return killed, nil
		}
	}

	s.roundsCleared++
	s.logger.Printf("[GAME] Round %s cleared", s.round.ID)
	if err := s.nextRound(); err != nil {
		return killed, err
	}
	return killed, nil
}

// Round returns the current round
func (s *Session) Round() *arena.Round { return s.round }

// Alive returns the round indices of enemies still standing
func (s *Session) Alive() []int {
	out := make([]int, 0, len(s.alive))
	for i, a := range s.alive {
		if a {
			out = append(out, i)
		}
	}
	return out
}

// Equation returns the current equation text
func (s *Session) Equation() string { return s.equation }

// Shot returns the cached shot, nil before firing or after an edit
func (s *Session) Shot() *Shot { return s.shot }

// Kills returns enemies destroyed across all rounds
func (s *Session) Kills() int { return s.kills }

// RoundsCleared returns how many rounds have been fully cleared
func (s *Session) RoundsCleared() int { return s.roundsCleared }
