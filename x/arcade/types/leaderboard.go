package types

import "sort"

// AdmitOutcome classifies what a score admission did to the leaderboard.
type AdmitOutcome int

const (
	// AdmitRejected means the candidate did not beat the lowest ranked entry
	// of a full board; nothing changed.
	AdmitRejected AdmitOutcome = iota
	// AdmitInserted means the board had room and the candidate was placed.
	AdmitInserted
	// AdmitReplaced means the lowest entry was evicted for the candidate.
	AdmitReplaced
)

func (o AdmitOutcome) String() string {
	switch o {
	case AdmitInserted:
		return "inserted"
	case AdmitReplaced:
		return "replaced"
	default:
		return "rejected"
	}
}

// AdmitResult reports the admission outcome and, on replacement, the entry
// that fell off the board.
type AdmitResult struct {
	Outcome AdmitOutcome
	Evicted *ScoreEntry
}

// HighestScore returns the current top score, if any entry exists.
func (l *ArcadeLedger) HighestScore() (uint64, bool) {
	if len(l.TopScores) == 0 {
		return 0, false
	}
	return l.TopScores[0].Score, true
}

// AdmitScore runs the bounded top-N admission. While the board is below
// capacity every candidate enters; once full a candidate must strictly beat
// the lowest ranked score. Ties keep admission order, so among equal scores
// the earlier entry ranks ahead and the latest tied entry is the one at the
// eviction boundary.
func (l *ArcadeLedger) AdmitScore(entry ScoreEntry) AdmitResult {
	if uint32(len(l.TopScores)) < l.MaxTopScores {
		l.TopScores = append(l.TopScores, entry)
		l.sortScores()
		return AdmitResult{Outcome: AdmitInserted}
	}

	lowest := l.TopScores[len(l.TopScores)-1]
	if entry.Score <= lowest.Score {
		return AdmitResult{Outcome: AdmitRejected}
	}

	evicted := lowest
	l.TopScores[len(l.TopScores)-1] = entry
	l.sortScores()
	return AdmitResult{Outcome: AdmitReplaced, Evicted: &evicted}
}

// sortScores re-ranks descending by score. The sort is stable and new
// candidates start at the tail, which is what preserves admission order
// among ties.
func (l *ArcadeLedger) sortScores() {
	sort.SliceStable(l.TopScores, func(i, j int) bool {
		return l.TopScores[i].Score > l.TopScores[j].Score
	})
}
