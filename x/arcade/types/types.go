package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// ScoreEntry is one ranked row of an arcade leaderboard.
type ScoreEntry struct {
	Player   string `json:"player"`
	Nickname string `json:"nickname"`
	Score    uint64 `json:"score"`
}

// ArcadeLedger is the persistent record for one arcade instance. It holds
// the admin set, pricing, counters and the bounded leaderboard; the pooled
// entry fees live in a derived escrow account whose balance the bank module
// tracks.
//
// Note: stored as JSON bytes through the collections value codec because the
// record is not a protobuf message. A host chain that wants proto state can
// define it in proto files and switch the codec.
type ArcadeLedger struct {
	Owner            string       `json:"owner"`
	Name             string       `json:"name"`
	Admins           []string     `json:"admins"`
	PricePerGame     uint64       `json:"price_per_game"`
	GameCounter      uint64       `json:"game_counter"`
	TotalDistributed uint64       `json:"total_distributed"`
	MaxTopScores     uint32       `json:"max_top_scores"`
	TopScores        []ScoreEntry `json:"top_scores"`
	// EscrowAddress is the derived escrow sub-account, denormalized for
	// observers. The keeper always re-derives it and never trusts this field.
	EscrowAddress string `json:"escrow_address"`
}

// IsAdmin reports whether addr is in the admin set.
func (l *ArcadeLedger) IsAdmin(addr string) bool {
	for _, a := range l.Admins {
		if a == addr {
			return true
		}
	}
	return false
}

// AddAdmins extends the admin set. Existing members are skipped rather than
// rejected so a batch that mixes new and known admins still succeeds.
func (l *ArcadeLedger) AddAdmins(addrs []string, maxAdmins uint32) error {
	for _, a := range addrs {
		if l.IsAdmin(a) {
			continue
		}
		if uint32(len(l.Admins)) >= maxAdmins {
			return errorsmod.Wrapf(ErrLimitExceeded, "admin set is capped at %d", maxAdmins)
		}
		l.Admins = append(l.Admins, a)
	}
	return nil
}

// RemoveAdmin removes addr from the admin set. The set must stay non-empty.
func (l *ArcadeLedger) RemoveAdmin(addr string) error {
	for i, a := range l.Admins {
		if a != addr {
			continue
		}
		if len(l.Admins) == 1 {
			return errorsmod.Wrap(ErrLastAdminRemoval, addr)
		}
		l.Admins = append(l.Admins[:i], l.Admins[i+1:]...)
		return nil
	}
	return errorsmod.Wrapf(ErrNotFound, "%s is not an admin", addr)
}

// Validate checks the record invariants against module params. Used for
// genesis import; the msg server upholds the same invariants operationally.
func (l ArcadeLedger) Validate(p Params) error {
	if l.Owner == "" {
		return fmt.Errorf("arcade owner cannot be empty")
	}
	if l.Name == "" || uint32(len(l.Name)) > p.MaxNameLength {
		return fmt.Errorf("arcade name must be 1..%d characters", p.MaxNameLength)
	}
	if len(l.Admins) == 0 {
		return fmt.Errorf("arcade %s has no admins", l.Owner)
	}
	if uint32(len(l.Admins)) > p.MaxAdmins {
		return fmt.Errorf("arcade %s exceeds the admin cap of %d", l.Owner, p.MaxAdmins)
	}
	if l.MaxTopScores == 0 || l.MaxTopScores > p.MaxLeaderboardSize {
		return fmt.Errorf("max_top_scores must be 1..%d", p.MaxLeaderboardSize)
	}
	if uint32(len(l.TopScores)) > l.MaxTopScores {
		return fmt.Errorf("arcade %s leaderboard exceeds its capacity of %d", l.Owner, l.MaxTopScores)
	}
	for i, entry := range l.TopScores {
		if entry.Player == "" {
			return fmt.Errorf("arcade %s has a score entry without a player", l.Owner)
		}
		if uint32(len(entry.Nickname)) > p.MaxNicknameLength {
			return fmt.Errorf("nickname %q exceeds %d characters", entry.Nickname, p.MaxNicknameLength)
		}
		if i > 0 && entry.Score > l.TopScores[i-1].Score {
			return fmt.Errorf("arcade %s leaderboard is not sorted descending", l.Owner)
		}
	}
	return nil
}
