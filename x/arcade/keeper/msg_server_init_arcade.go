package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"arcadechain/x/arcade/types"
)

// InitArcade handles the InitArcade message. It creates the ledger record
// for the creator, funds the escrow reserve floor and seeds the admin set.
func (k *msgServer) InitArcade(ctx context.Context, msg *types.MsgInitArcade) (*types.MsgInitArcadeResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}

	if msg.Name == "" || uint32(len(msg.Name)) > params.MaxNameLength {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "name must be 1..%d characters", params.MaxNameLength)
	}
	if msg.MaxTopScores == 0 || msg.MaxTopScores > params.MaxLeaderboardSize {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "max_top_scores must be 1..%d", params.MaxLeaderboardSize)
	}

	exists, err := k.HasArcade(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check for existing arcade")
	}
	if exists {
		return nil, errorsmod.Wrap(types.ErrAlreadyInitialized, msg.Creator)
	}

	// The creator is always an admin; supplied admins extend the set.
	admins := []string{msg.Creator}
	for _, a := range msg.Admins {
		if _, err := k.addressCodec.StringToBytes(a); err != nil {
			return nil, errorsmod.Wrapf(err, "invalid admin address %s", a)
		}
		var known bool
		for _, existing := range admins {
			if existing == a {
				known = true
				break
			}
		}
		if !known {
			admins = append(admins, a)
		}
	}
	if uint32(len(admins)) > params.MaxAdmins {
		return nil, errorsmod.Wrapf(types.ErrLimitExceeded, "admin set is capped at %d", params.MaxAdmins)
	}

	// The record must carry its reserve floor from birth; an escrow that
	// starts below the floor could never pay anything out.
	escrow := EscrowAddress(creatorAddr)
	if params.MinEscrowReserve > 0 {
		reserve := sdk.NewCoins(sdk.NewCoin(params.FeeDenom, math.NewIntFromUint64(params.MinEscrowReserve)))
		if !k.bankKeeper.SpendableCoins(ctx, creatorAddr).IsAllGTE(reserve) {
			return nil, errorsmod.Wrap(types.ErrInsufficientFunds, "cannot fund escrow reserve")
		}
		if err := k.bankKeeper.SendCoins(ctx, creatorAddr, escrow, reserve); err != nil {
			return nil, errorsmod.Wrap(err, "failed to fund escrow reserve")
		}
	}

	escrowStr, err := k.addressCodec.BytesToString(escrow)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to encode escrow address")
	}

	ledger := types.ArcadeLedger{
		Owner:         msg.Creator,
		Name:          msg.Name,
		Admins:        admins,
		PricePerGame:  msg.PricePerGame,
		MaxTopScores:  msg.MaxTopScores,
		TopScores:     make([]types.ScoreEntry, 0, msg.MaxTopScores),
		EscrowAddress: escrowStr,
	}
	if err := k.SetArcade(ctx, ledger); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store arcade")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventArcadeInitialized,
			sdk.NewAttribute(types.AttrOwner, msg.Creator),
			sdk.NewAttribute(types.AttrName, msg.Name),
			sdk.NewAttribute(types.AttrPrice, strconv.FormatUint(msg.PricePerGame, 10)),
			sdk.NewAttribute(types.AttrEscrowAddress, escrowStr),
		),
	)

	return &types.MsgInitArcadeResponse{EscrowAddress: escrowStr}, nil
}
