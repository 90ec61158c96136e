package module

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"arcadechain/x/arcade/keeper"
	"arcadechain/x/arcade/types"
)

var _ depinject.OnePerModuleType = AppModule{}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	AddressCodec address.Codec
	BankKeeper   types.BankKeeper
	AuthKeeper   types.AuthKeeper
}

type ModuleOutputs struct {
	depinject.Out

	ArcadeKeeper keeper.Keeper
	Module       appmodule.AppModule
}

// ProvideModule is used by depinject to construct the keeper and module.
func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)
	k := keeper.NewKeeper(in.StoreService, in.AddressCodec, authority, in.BankKeeper, in.AuthKeeper)
	m := NewAppModule(k)
	return ModuleOutputs{ArcadeKeeper: k, Module: m}
}
