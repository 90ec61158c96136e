package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"arcadechain/x/arcade/types"
)

// SetPrice handles the SetPrice message.
func (k *msgServer) SetPrice(ctx context.Context, msg *types.MsgSetPrice) (*types.MsgSetPriceResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	ledger, err := k.GetArcade(ctx, msg.Arcade)
	if err != nil {
		return nil, err
	}
	if !ledger.IsAdmin(msg.Creator) {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only an arcade admin can change the price")
	}

	ledger.PricePerGame = msg.NewPrice
	if err := k.SetArcade(ctx, ledger); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store arcade")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPriceUpdated,
			sdk.NewAttribute(types.AttrOwner, ledger.Owner),
			sdk.NewAttribute(types.AttrPrice, strconv.FormatUint(msg.NewPrice, 10)),
		),
	)

	return &types.MsgSetPriceResponse{}, nil
}
