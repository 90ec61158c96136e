package keeper

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"arcadechain/x/arcade/types"
)

// AddAdmins handles the AddAdmins message. Already-present admins are
// tolerated; the whole batch fails if any address is invalid or the cap
// would be exceeded.
func (k *msgServer) AddAdmins(ctx context.Context, msg *types.MsgAddAdmins) (*types.MsgAddAdminsResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}
	if len(msg.Admins) == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "no admins given")
	}
	for _, a := range msg.Admins {
		if _, err := k.addressCodec.StringToBytes(a); err != nil {
			return nil, errorsmod.Wrapf(err, "invalid admin address %s", a)
		}
	}

	ledger, err := k.GetArcade(ctx, msg.Arcade)
	if err != nil {
		return nil, err
	}
	if !ledger.IsAdmin(msg.Creator) {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only an arcade admin can add admins")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}
	if err := ledger.AddAdmins(msg.Admins, params.MaxAdmins); err != nil {
		return nil, err
	}
	if err := k.SetArcade(ctx, ledger); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store arcade")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventAdminsAdded,
			sdk.NewAttribute(types.AttrOwner, ledger.Owner),
			sdk.NewAttribute(types.AttrAdmin, strings.Join(msg.Admins, ",")),
		),
	)

	return &types.MsgAddAdminsResponse{Admins: ledger.Admins}, nil
}

// RemoveAdmin handles the RemoveAdmin message. The admin set can never be
// emptied; an arcade without admins could still collect fees but never
// admit a score again, stranding its escrow.
func (k *msgServer) RemoveAdmin(ctx context.Context, msg *types.MsgRemoveAdmin) (*types.MsgRemoveAdminResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	ledger, err := k.GetArcade(ctx, msg.Arcade)
	if err != nil {
		return nil, err
	}
	if !ledger.IsAdmin(msg.Creator) {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only an arcade admin can remove admins")
	}

	if err := ledger.RemoveAdmin(msg.Admin); err != nil {
		return nil, err
	}
	if err := k.SetArcade(ctx, ledger); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store arcade")
	}

	k.Logger(ctx).Info("admin removed", "arcade", ledger.Owner, "admin", msg.Admin)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventAdminRemoved,
			sdk.NewAttribute(types.AttrOwner, ledger.Owner),
			sdk.NewAttribute(types.AttrAdmin, msg.Admin),
		),
	)

	return &types.MsgRemoveAdminResponse{Admins: ledger.Admins}, nil
}
