package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"arcadechain/x/arcade/types"
)

// Keeper defines the arcade module keeper.
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte

	// Bank keeper for fee and prize transfers
	bankKeeper types.BankKeeper
	// Auth keeper for beneficiary account checks
	authKeeper types.AuthKeeper

	Schema  collections.Schema
	Params  collections.Item[types.Params]
	Arcades collections.Map[string, types.ArcadeLedger]
}

// State is stored as JSON bytes because the records are not protobuf
// messages; see the note on types.ArcadeLedger.
var (
	_ collcodec.ValueCodec[types.Params]       = paramsValueCodec{}
	_ collcodec.ValueCodec[types.ArcadeLedger] = ledgerValueCodec{}
)

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value types.Params) ([]byte, error) { return json.Marshal(value) }
func (paramsValueCodec) Decode(bz []byte) (types.Params, error) {
	var p types.Params
	return p, json.Unmarshal(bz, &p)
}
func (c paramsValueCodec) EncodeJSON(value types.Params) ([]byte, error) { return c.Encode(value) }
func (c paramsValueCodec) DecodeJSON(bz []byte) (types.Params, error)    { return c.Decode(bz) }
func (paramsValueCodec) Stringify(value types.Params) string             { return value.String() }
func (paramsValueCodec) ValueType() string                               { return "arcade/Params" }

type ledgerValueCodec struct{}

func (ledgerValueCodec) Encode(value types.ArcadeLedger) ([]byte, error) { return json.Marshal(value) }
func (ledgerValueCodec) Decode(bz []byte) (types.ArcadeLedger, error) {
	var l types.ArcadeLedger
	return l, json.Unmarshal(bz, &l)
}
func (c ledgerValueCodec) EncodeJSON(value types.ArcadeLedger) ([]byte, error) {
	return c.Encode(value)
}
func (c ledgerValueCodec) DecodeJSON(bz []byte) (types.ArcadeLedger, error) { return c.Decode(bz) }
func (ledgerValueCodec) Stringify(value types.ArcadeLedger) string {
	return fmt.Sprintf("arcade/%s(%s)", value.Owner, value.Name)
}
func (ledgerValueCodec) ValueType() string { return "arcade/ArcadeLedger" }

// NewKeeper creates a new arcade module Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	authKeeper types.AuthKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,
		bankKeeper:   bankKeeper,
		authKeeper:   authKeeper,

		Params:  collections.NewItem(sb, types.ParamsKey, "params", paramsValueCodec{}),
		Arcades: collections.NewMap(sb, types.ArcadesKeyPrefix, "arcades", collections.StringKey, ledgerValueCodec{}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}
	return k.Params.Set(ctx, p)
}

// GetArcade returns the ledger record for an owner.
func (k Keeper) GetArcade(ctx context.Context, owner string) (types.ArcadeLedger, error) {
	ledger, err := k.Arcades.Get(ctx, owner)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ArcadeLedger{}, errorsmod.Wrapf(types.ErrNotInitialized, "no arcade for %s", owner)
		}
		return types.ArcadeLedger{}, err
	}
	return ledger, nil
}

// SetArcade stores a ledger record under its owner key.
func (k Keeper) SetArcade(ctx context.Context, ledger types.ArcadeLedger) error {
	return k.Arcades.Set(ctx, ledger.Owner, ledger)
}

// HasArcade reports whether a record exists for the owner.
func (k Keeper) HasArcade(ctx context.Context, owner string) (bool, error) {
	return k.Arcades.Has(ctx, owner)
}
