package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"arcadechain/x/arcade/types"
)

// Play handles the Play message. It charges the exact entry fee, splits it
// between the arcade's escrow and the owner, and bumps the game counter.
func (k *msgServer) Play(ctx context.Context, msg *types.MsgPlay) (*types.MsgPlayResponse, error) {
	playerAddr, err := k.addressCodec.StringToBytes(msg.Player)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid player address")
	}

	ledger, err := k.GetArcade(ctx, msg.Arcade)
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}

	if msg.Payment != ledger.PricePerGame {
		return nil, errorsmod.Wrapf(types.ErrIncorrectPayment, "tendered %d, price is %d", msg.Payment, ledger.PricePerGame)
	}
	if ledger.GameCounter == ^uint64(0) {
		return nil, errorsmod.Wrap(types.ErrOverflow, "game counter")
	}

	ownerAddr, err := k.addressCodec.StringToBytes(ledger.Owner)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid owner address")
	}

	// Half the fee goes to the owner, the rest to escrow; an odd fee leaves
	// the extra unit in escrow.
	ownerCut := msg.Payment / 2
	escrowShare := msg.Payment - ownerCut

	fee := sdk.NewCoins(sdk.NewCoin(params.FeeDenom, math.NewIntFromUint64(msg.Payment)))
	if !k.bankKeeper.SpendableCoins(ctx, playerAddr).IsAllGTE(fee) {
		return nil, errorsmod.Wrap(types.ErrInsufficientFunds, "cannot pay entry fee")
	}

	if escrowShare > 0 {
		share := sdk.NewCoins(sdk.NewCoin(params.FeeDenom, math.NewIntFromUint64(escrowShare)))
		if err := k.bankKeeper.SendCoins(ctx, playerAddr, EscrowAddress(ownerAddr), share); err != nil {
			return nil, errorsmod.Wrap(err, "failed to deposit entry fee")
		}
	}
	if ownerCut > 0 {
		cut := sdk.NewCoins(sdk.NewCoin(params.FeeDenom, math.NewIntFromUint64(ownerCut)))
		if err := k.bankKeeper.SendCoins(ctx, playerAddr, ownerAddr, cut); err != nil {
			return nil, errorsmod.Wrap(err, "failed to pay owner cut")
		}
	}

	// Committed only after both transfers went through.
	ledger.GameCounter++
	if err := k.SetArcade(ctx, ledger); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store arcade")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGamePlayed,
			sdk.NewAttribute(types.AttrOwner, ledger.Owner),
			sdk.NewAttribute(types.AttrPlayer, msg.Player),
			sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(msg.Payment, 10)),
			sdk.NewAttribute(types.AttrGameCounter, strconv.FormatUint(ledger.GameCounter, 10)),
		),
	)

	return &types.MsgPlayResponse{GameCounter: ledger.GameCounter}, nil
}
