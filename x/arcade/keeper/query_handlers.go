package keeper

import (
	"context"

	query "github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"arcadechain/x/arcade/types"
)

func (q *queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q *queryServer) Arcade(ctx context.Context, req *types.QueryArcadeRequest) (*types.QueryArcadeResponse, error) {
	if req == nil || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner required")
	}
	ledger, err := q.k.GetArcade(ctx, req.Owner)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryArcadeResponse{Arcade: ledger}, nil
}

func (q *queryServer) Arcades(ctx context.Context, req *types.QueryArcadesRequest) (*types.QueryArcadesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	var ledgers []types.ArcadeLedger
	err := q.k.Arcades.Walk(ctx, nil, func(_ string, ledger types.ArcadeLedger) (bool, error) {
		ledgers = append(ledgers, ledger)
		return false, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	paginated, pageResp := paginateLedgers(ledgers, req.Pagination)
	return &types.QueryArcadesResponse{Arcades: paginated, Pagination: pageResp}, nil
}

func (q *queryServer) TopScores(ctx context.Context, req *types.QueryTopScoresRequest) (*types.QueryTopScoresResponse, error) {
	if req == nil || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner required")
	}
	ledger, err := q.k.GetArcade(ctx, req.Owner)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryTopScoresResponse{Scores: ledger.TopScores}, nil
}

func (q *queryServer) TotalDistributed(ctx context.Context, req *types.QueryTotalDistributedRequest) (*types.QueryTotalDistributedResponse, error) {
	if req == nil || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner required")
	}
	ledger, err := q.k.GetArcade(ctx, req.Owner)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryTotalDistributedResponse{TotalDistributed: ledger.TotalDistributed}, nil
}

func (q *queryServer) GameCounter(ctx context.Context, req *types.QueryGameCounterRequest) (*types.QueryGameCounterResponse, error) {
	if req == nil || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner required")
	}
	ledger, err := q.k.GetArcade(ctx, req.Owner)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryGameCounterResponse{GameCounter: ledger.GameCounter}, nil
}

func (q *queryServer) PricePerGame(ctx context.Context, req *types.QueryPricePerGameRequest) (*types.QueryPricePerGameResponse, error) {
	if req == nil || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner required")
	}
	ledger, err := q.k.GetArcade(ctx, req.Owner)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryPricePerGameResponse{PricePerGame: ledger.PricePerGame}, nil
}

func (q *queryServer) EscrowBalance(ctx context.Context, req *types.QueryEscrowBalanceRequest) (*types.QueryEscrowBalanceResponse, error) {
	if req == nil || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner required")
	}
	ledger, err := q.k.GetArcade(ctx, req.Owner)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	ownerAddr, err := q.k.addressCodec.StringToBytes(ledger.Owner)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	auth := q.k.escrowAuthorityFor(ownerAddr)
	balance := q.k.escrowBalance(ctx, auth, params.FeeDenom)
	escrowStr, err := q.k.addressCodec.BytesToString(auth.escrow)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryEscrowBalanceResponse{
		EscrowAddress: escrowStr,
		Balance:       balance,
		Reserve:       params.MinEscrowReserve,
		Available:     q.k.availableForPayout(ctx, auth, params),
	}, nil
}

// paginateLedgers applies offset/limit pagination to an in-memory slice.
func paginateLedgers(items []types.ArcadeLedger, page *query.PageRequest) ([]types.ArcadeLedger, *query.PageResponse) {
	offset, limit := uint64(0), uint64(50)
	if page != nil {
		if page.Offset > 0 {
			offset = page.Offset
		}
		if page.Limit > 0 {
			limit = page.Limit
		}
	}
	total := uint64(len(items))
	if offset >= total {
		return []types.ArcadeLedger{}, &query.PageResponse{Total: total}
	}
	// limit is caller-supplied; cap it before the add can wrap.
	end := total
	if limit < total-offset {
		end = offset + limit
	}
	return items[offset:end], &query.PageResponse{Total: total}
}
