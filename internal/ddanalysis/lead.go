package ddanalysis

import "github.com/lox/bridgedd/internal/bridge"

// OpeningLeadAnalysis runs the outer bisection driver from the top of the
// hand (no cards played) and returns the full per-card analysis: which
// opening leads hold the contract to its makeable-trick count and which
// concede more.
func OpeningLeadAnalysis(deal bridge.Deal, analyzeAllLeads bool, progress bridge.Progress) (*bridge.Analysis, error) {
	pos, err := bridge.NewPosition(deal, nil, bridge.NewCache())
	if err != nil {
		return nil, err
	}
	return pos.Analyze(analyzeAllLeads, progress), nil
}
