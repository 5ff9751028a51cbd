package ddanalysis

import (
	"github.com/charmbracelet/log"

	"github.com/lox/bridgedd/internal/bridge"
	"github.com/lox/bridgedd/internal/bridgelog"
)

// Session tracks an interactive analysis: a deal, the cards played so far,
// and a cache that survives across plays so re-analyzing after each new
// card doesn't discard everything the previous analysis already learned
// about this deal's suit-length signatures.
type Session struct {
	Deal   bridge.Deal
	Played []bridge.Card
	cache  *bridge.Cache
	logger *log.Logger
}

// NewSession starts a session from the top of the hand. If logger is nil,
// progress is logged nowhere.
func NewSession(deal bridge.Deal, logger *log.Logger) *Session {
	if logger == nil {
		logger = bridgelog.Discard()
	}
	return &Session{Deal: deal, cache: bridge.NewCache(), logger: logger}
}

// Analyze runs the outer driver on the current position, logging each
// probe at debug level.
func (s *Session) Analyze(analyzeAllLeads bool) (*bridge.Analysis, error) {
	pos, err := bridge.NewPosition(s.Deal, s.Played, s.cache)
	if err != nil {
		return nil, err
	}
	progress := func(a *bridge.Analysis) bool {
		s.logger.Debug("probe", "low", a.Global.Low, "high", a.Global.High)
		return true
	}
	return pos.Analyze(analyzeAllLeads, progress), nil
}

// Play records a card played from the current position. It validates the
// play by constructing the resulting Position, so an illegal play (wrong
// turn, card not held) is rejected without corrupting the session.
func (s *Session) Play(c bridge.Card) error {
	played := append(append([]bridge.Card(nil), s.Played...), c)
	if _, err := bridge.NewPosition(s.Deal, played, s.cache); err != nil {
		return err
	}
	s.Played = played
	return nil
}

// DealState reports the current table state: card legality, whose turn it
// is, and tricks won by each side.
func (s *Session) DealState() bridge.DealState {
	return bridge.ComputeDealState(s.Deal, s.Played, true)
}
