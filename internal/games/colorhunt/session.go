package colorhunt

// Status is the session's position in its lifecycle.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// DefaultDuration is the countdown length in seconds.
const DefaultDuration = 60

// ClampPolicy decides how a wrong guess lowers the score near zero.
type ClampPolicy int

const (
	// ClampFloor subtracts the penalty and floors the result at zero.
	ClampFloor ClampPolicy = iota
	// ClampThreshold subtracts the penalty only when the score covers it;
	// otherwise the score is left unchanged.
	ClampThreshold
)

// String returns the config name of the policy.
func (p ClampPolicy) String() string {
	if p == ClampThreshold {
		return "threshold"
	}
	return "floor"
}

// ScoringRules holds the points awarded and taken per guess.
type ScoringRules struct {
	CorrectPoints int
	WrongPenalty  int
	Clamp         ClampPolicy
}

// DefaultScoring returns +1 for a correct guess and -2 floored at zero.
func DefaultScoring() ScoringRules {
	return ScoringRules{
		CorrectPoints: 1,
		WrongPenalty:  2,
		Clamp:         ClampFloor,
	}
}

// penalize returns the score after a wrong guess.
func (r ScoringRules) penalize(score int) int {
	switch r.Clamp {
	case ClampThreshold:
		if score >= r.WrongPenalty {
			return score - r.WrongPenalty
		}
		return score
	default:
		if score-r.WrongPenalty < 0 {
			return 0
		}
		return score - r.WrongPenalty
	}
}

// GuessResult describes what a guess did.
type GuessResult struct {
	Applied bool // False when the guess arrived after game over
	Correct bool // Whether the choice matched the round's text
	Choice  ColorName
	Delta   int   // Score change actually applied, after clamping
	Round   Round // The round that replaced the guessed one
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDuration sets the countdown length in seconds.
func WithDuration(seconds int) SessionOption {
	return func(s *Session) {
		if seconds > 0 {
			s.duration = seconds
		}
	}
}

// WithScoring overrides the scoring rules.
func WithScoring(rules ScoringRules) SessionOption {
	return func(s *Session) {
		s.rules = rules
	}
}

// Session is the mutable state of one play-through. It is not safe for
// concurrent use; the caller serializes Tick, Guess and Reset.
type Session struct {
	gen      *RoundGenerator
	rules    ScoringRules
	duration int

	score     int
	remaining int
	round     Round
	status    Status
}

// NewSession starts a running session with a fresh round.
func NewSession(gen *RoundGenerator, opts ...SessionOption) *Session {
	s := &Session{
		gen:      gen,
		rules:    DefaultScoring(),
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start()
	return s
}

func (s *Session) start() {
	s.score = 0
	s.remaining = s.duration
	s.status = StatusRunning
	s.round = s.gen.Next()
}

// Tick consumes one second of the countdown. It reports true only on the
// call that ends the session. No-op once the session is over.
func (s *Session) Tick() bool {
	if s.status != StatusRunning {
		return false
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.status = StatusGameOver
		return true
	}
	return false
}

// Guess scores choice against the current round and deals the next round,
// whether or not the guess was right. No-op once the session is over.
func (s *Session) Guess(choice ColorName) GuessResult {
	if s.status != StatusRunning {
		return GuessResult{Choice: choice, Round: s.round}
	}

	before := s.score
	correct := choice == s.round.Text
	if correct {
		s.score += s.rules.CorrectPoints
	} else {
		s.score = s.rules.penalize(s.score)
	}
	s.round = s.gen.Next()

	return GuessResult{
		Applied: true,
		Correct: correct,
		Choice:  choice,
		Delta:   s.score - before,
		Round:   s.round,
	}
}

// Reset starts the session over. Only valid after game over; it returns
// false and changes nothing while the session is running.
func (s *Session) Reset() bool {
	if s.status != StatusGameOver {
		return false
	}
	s.start()
	return true
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// SecondsRemaining returns the countdown value.
func (s *Session) SecondsRemaining() int { return s.remaining }

// CurrentRound returns the round awaiting a guess.
func (s *Session) CurrentRound() Round { return s.round }

// Status returns the lifecycle status.
func (s *Session) Status() Status { return s.status }

// Duration returns the configured countdown length.
func (s *Session) Duration() int { return s.duration }

// Rules returns the scoring rules in effect.
func (s *Session) Rules() ScoringRules { return s.rules }
