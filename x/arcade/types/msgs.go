package types

import "context"

// MsgInitArcade creates the ledger record for the creator's arcade. The
// creator funds the escrow reserve floor and always ends up in the admin set.
type MsgInitArcade struct {
	Creator      string   `json:"creator"`
	Name         string   `json:"name"`
	MaxTopScores uint32   `json:"max_top_scores"`
	PricePerGame uint64   `json:"price_per_game"`
	Admins       []string `json:"admins,omitempty"`
}

type MsgInitArcadeResponse struct {
	EscrowAddress string `json:"escrow_address"`
}

// MsgPlay pays the entry fee for one game. Arcade is the owner address the
// ledger record is keyed by; Payment must match the arcade's price exactly.
type MsgPlay struct {
	Player  string `json:"player"`
	Arcade  string `json:"arcade"`
	Payment uint64 `json:"payment"`
}

type MsgPlayResponse struct {
	GameCounter uint64 `json:"game_counter"`
}

// MsgSubmitScore submits a candidate score for leaderboard admission.
// Beneficiary is the account the caller declares prize funds may be sent
// to; it must match the candidate's player address.
type MsgSubmitScore struct {
	Creator     string `json:"creator"`
	Arcade      string `json:"arcade"`
	Beneficiary string `json:"beneficiary"`
	Player      string `json:"player"`
	Nickname    string `json:"nickname"`
	Score       uint64 `json:"score"`
}

type MsgSubmitScoreResponse struct {
	Outcome string `json:"outcome"`
	Payout  uint64 `json:"payout"`
}

type MsgSetPrice struct {
	Creator  string `json:"creator"`
	Arcade   string `json:"arcade"`
	NewPrice uint64 `json:"new_price"`
}

type MsgSetPriceResponse struct{}

type MsgAddAdmins struct {
	Creator string   `json:"creator"`
	Arcade  string   `json:"arcade"`
	Admins  []string `json:"admins"`
}

type MsgAddAdminsResponse struct {
	Admins []string `json:"admins"`
}

type MsgRemoveAdmin struct {
	Creator string `json:"creator"`
	Arcade  string `json:"arcade"`
	Admin   string `json:"admin"`
}

type MsgRemoveAdminResponse struct {
	Admins []string `json:"admins"`
}

// MsgServer is the transaction surface of the arcade module. Every handler
// runs as one atomic unit against a single ledger record; a returned error
// means no state change was committed.
type MsgServer interface {
	InitArcade(ctx context.Context, msg *MsgInitArcade) (*MsgInitArcadeResponse, error)
	Play(ctx context.Context, msg *MsgPlay) (*MsgPlayResponse, error)
	SubmitScore(ctx context.Context, msg *MsgSubmitScore) (*MsgSubmitScoreResponse, error)
	SetPrice(ctx context.Context, msg *MsgSetPrice) (*MsgSetPriceResponse, error)
	AddAdmins(ctx context.Context, msg *MsgAddAdmins) (*MsgAddAdminsResponse, error)
	RemoveAdmin(ctx context.Context, msg *MsgRemoveAdmin) (*MsgRemoveAdminResponse, error)
}
