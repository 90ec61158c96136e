package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"arcadechain/x/arcade/types"
)

// EscrowAddress derives the escrow sub-account for one arcade from the
// module name, a purpose tag and the owning record's identity. The
// derivation is pure, so the same owner always maps to the same account and
// two arcades can never share one.
func EscrowAddress(owner sdk.AccAddress) sdk.AccAddress {
	return address.Module(types.ModuleName, []byte(types.EscrowPurpose), owner)
}

// escrowAuthority authorizes outgoing transfers from exactly one arcade's
// escrow account. It is mintable only inside the keeper, and every
// withdrawal re-derives the escrow address from the owner identity, so an
// authority minted for one arcade structurally cannot move another's funds.
type escrowAuthority struct {
	owner  sdk.AccAddress
	escrow sdk.AccAddress
}

func (k Keeper) escrowAuthorityFor(owner sdk.AccAddress) escrowAuthority {
	return escrowAuthority{owner: owner, escrow: EscrowAddress(owner)}
}

// escrowBalance returns the escrow account's balance in the fee denom.
func (k Keeper) escrowBalance(ctx context.Context, auth escrowAuthority, denom string) uint64 {
	amt := k.bankKeeper.GetAllBalances(ctx, auth.escrow).AmountOf(denom)
	if !amt.IsUint64() {
		// The ledger tracks amounts as uint64; clamp rather than panic.
		return ^uint64(0)
	}
	return amt.Uint64()
}

// availableForPayout is the escrow balance above the reserve floor.
func (k Keeper) availableForPayout(ctx context.Context, auth escrowAuthority, params types.Params) uint64 {
	balance := k.escrowBalance(ctx, auth, params.FeeDenom)
	if balance <= params.MinEscrowReserve {
		return 0
	}
	return balance - params.MinEscrowReserve
}

// withdrawFromEscrow moves amount from the authority's escrow account to
// dest. The reserve floor is enforced here, on the only path funds leave
// escrow.
func (k Keeper) withdrawFromEscrow(ctx context.Context, auth escrowAuthority, params types.Params, amount uint64, dest sdk.AccAddress) error {
	if !auth.escrow.Equals(EscrowAddress(auth.owner)) {
		return errorsmod.Wrap(types.ErrUnauthorized, "escrow authority is not bound to its arcade")
	}
	if amount == 0 {
		return nil
	}
	if amount > k.availableForPayout(ctx, auth, params) {
		return errorsmod.Wrapf(types.ErrInsufficientAvailable, "requested %d", amount)
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.FeeDenom, math.NewIntFromUint64(amount)))
	return k.bankKeeper.SendCoins(ctx, auth.escrow, dest, coins)
}
