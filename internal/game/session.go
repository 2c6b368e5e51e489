// Package game implements the border-guessing game played over the
// country graph: starting at the source, the player names one crossing
// at a time and loses after three guesses that do not shorten the route
// to the target.
package game

import (
	"errors"
	"fmt"

	"github.com/borderhop/core/internal/graph"
)

// MaxMistakes is the guess budget for a session.
const MaxMistakes = 3

// ErrSessionOver is returned by Guess once the session reached Won or
// Lost.
var ErrSessionOver = errors.New("session already ended")

// Outcome is the session's terminal status.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Session tracks one game. All mutation happens in Guess; a session that
// reached a terminal outcome no longer accepts guesses.
type Session struct {
	g            *graph.Graph
	source       string
	target       string
	position     string
	trail        []string
	mistakesLeft int
	outcome      Outcome

	// Crossing counts measured from the target. Edges are undirected,
	// so toTarget[c] is also the distance from c to the target.
	toTarget map[string]int
}

// Start opens a session positioned at source with a full mistake budget.
// Both endpoints must exist in the graph and be connected; a session
// that can never be won is a setup bug, not a playable state.
func Start(g *graph.Graph, source, target string) (*Session, error) {
	if !g.HasNode(source) {
		return nil, &graph.UnknownCountryError{Name: source}
	}
	if !g.HasNode(target) {
		return nil, &graph.UnknownCountryError{Name: target}
	}

	toTarget, err := g.Distances(target)
	if err != nil {
		return nil, err
	}
	if _, ok := toTarget[source]; !ok {
		return nil, fmt.Errorf("no route from %s to %s", source, target)
	}

	return &Session{
		g:            g,
		source:       source,
		target:       target,
		position:     source,
		trail:        []string{source},
		mistakesLeft: MaxMistakes,
		outcome:      InProgress,
		toTarget:     toTarget,
	}, nil
}

// GuessResult describes what a single guess did.
type GuessResult struct {
	Moved        bool
	Position     string
	MistakesLeft int
	Outcome      Outcome
}

// Guess plays one turn. Naming the target wins outright. Naming a
// neighbor of the current position that sits one crossing closer to the
// target advances the player. Anything else burns a mistake; at zero the
// session is lost. An unknown country is an error and leaves the session
// untouched.
func (s *Session) Guess(name string) (GuessResult, error) {
	if s.outcome != InProgress {
		return GuessResult{}, ErrSessionOver
	}
	if !s.g.HasNode(name) {
		return GuessResult{}, &graph.UnknownCountryError{Name: name}
	}

	switch {
	case name == s.target:
		s.outcome = Won
		s.position = name
		s.trail = append(s.trail, name)
		return s.result(true), nil

	case s.shortens(name):
		s.position = name
		s.trail = append(s.trail, name)
		return s.result(true), nil

	default:
		s.mistakesLeft--
		if s.mistakesLeft == 0 {
			s.outcome = Lost
		}
		return s.result(false), nil
	}
}

// shortens reports whether moving to name reduces the remaining distance
// by exactly one crossing. Adjacent countries that do not get closer to
// the target count as mistakes.
func (s *Session) shortens(name string) bool {
	if !s.g.HasEdge(s.position, name) {
		return false
	}
	d, ok := s.toTarget[name]
	return ok && d == s.toTarget[s.position]-1
}

func (s *Session) result(moved bool) GuessResult {
	return GuessResult{
		Moved:        moved,
		Position:     s.position,
		MistakesLeft: s.mistakesLeft,
		Outcome:      s.outcome,
	}
}

// Source returns the starting country.
func (s *Session) Source() string { return s.source }

// Target returns the country the player is trying to reach.
func (s *Session) Target() string { return s.target }

// Position returns the player's current country.
func (s *Session) Position() string { return s.position }

// MistakesLeft returns the remaining guess budget.
func (s *Session) MistakesLeft() int { return s.mistakesLeft }

// Outcome returns the session status.
func (s *Session) Outcome() Outcome { return s.outcome }

// RemainingDistance returns the crossing count from the current position
// to the target.
func (s *Session) RemainingDistance() int {
	return s.toTarget[s.position]
}

// Trail returns the countries visited so far, source first.
func (s *Session) Trail() []string {
	return append([]string(nil), s.trail...)
}
