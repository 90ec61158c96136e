package types

import (
	"context"

	query "github.com/cosmos/cosmos-sdk/types/query"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryArcadeRequest struct {
	Owner string `json:"owner"`
}

type QueryArcadeResponse struct {
	Arcade ArcadeLedger `json:"arcade"`
}

type QueryArcadesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryArcadesResponse struct {
	Arcades    []ArcadeLedger      `json:"arcades"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryTopScoresRequest struct {
	Owner string `json:"owner"`
}

type QueryTopScoresResponse struct {
	Scores []ScoreEntry `json:"scores"`
}

type QueryTotalDistributedRequest struct {
	Owner string `json:"owner"`
}

type QueryTotalDistributedResponse struct {
	TotalDistributed uint64 `json:"total_distributed"`
}

type QueryGameCounterRequest struct {
	Owner string `json:"owner"`
}

type QueryGameCounterResponse struct {
	GameCounter uint64 `json:"game_counter"`
}

type QueryPricePerGameRequest struct {
	Owner string `json:"owner"`
}

type QueryPricePerGameResponse struct {
	PricePerGame uint64 `json:"price_per_game"`
}

type QueryEscrowBalanceRequest struct {
	Owner string `json:"owner"`
}

// QueryEscrowBalanceResponse is a snapshot of an arcade's escrow custody:
// the raw balance, the reserve floor and what a payout could draw right now.
type QueryEscrowBalanceResponse struct {
	EscrowAddress string `json:"escrow_address"`
	Balance       uint64 `json:"balance"`
	Reserve       uint64 `json:"reserve"`
	Available     uint64 `json:"available"`
}

// QueryServer is the read-only surface of the arcade module; every query is
// open to any caller.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Arcade(ctx context.Context, req *QueryArcadeRequest) (*QueryArcadeResponse, error)
	Arcades(ctx context.Context, req *QueryArcadesRequest) (*QueryArcadesResponse, error)
	TopScores(ctx context.Context, req *QueryTopScoresRequest) (*QueryTopScoresResponse, error)
	TotalDistributed(ctx context.Context, req *QueryTotalDistributedRequest) (*QueryTotalDistributedResponse, error)
	GameCounter(ctx context.Context, req *QueryGameCounterRequest) (*QueryGameCounterResponse, error)
	PricePerGame(ctx context.Context, req *QueryPricePerGameRequest) (*QueryPricePerGameResponse, error)
	EscrowBalance(ctx context.Context, req *QueryEscrowBalanceRequest) (*QueryEscrowBalanceResponse, error)
}
