package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"arcadechain/x/arcade/keeper"
	"arcadechain/x/arcade/types"
)

// MockBankKeeper is a mock implementation of the BankKeeper interface
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Balances: make(map[string]sdk.Coins),
	}
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Balances[addr.String()]
}

func (m *MockBankKeeper) GetAllBalances(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Balances[addr.String()]
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	balance := m.Balances[fromAddr.String()]
	if !balance.IsAllGTE(amt) {
		return types.ErrInsufficientFunds
	}
	m.Balances[fromAddr.String()] = balance.Sub(amt...)
	m.Balances[toAddr.String()] = m.Balances[toAddr.String()].Add(amt...)
	return nil
}

// MockAuthKeeper is a mock implementation of the AuthKeeper interface
type MockAuthKeeper struct {
	Accounts map[string]bool
}

func NewMockAuthKeeper() *MockAuthKeeper {
	return &MockAuthKeeper{
		Accounts: make(map[string]bool),
	}
}

func (m *MockAuthKeeper) HasAccount(_ context.Context, addr sdk.AccAddress) bool {
	return m.Accounts[addr.String()]
}

type fixture struct {
	ctx          context.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	bankKeeper   *MockBankKeeper
	authKeeper   *MockAuthKeeper
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	bankKeeper := NewMockBankKeeper()
	authKeeper := NewMockAuthKeeper()

	k := keeper.NewKeeper(
		storeService,
		addressCodec,
		authority,
		bankKeeper,
		authKeeper,
	)

	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set params: %v", err)
	}

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
		authKeeper:   authKeeper,
	}
}

// account creates a deterministic test account, registers it with the auth
// mock and returns both address forms.
func (f *fixture) account(t *testing.T, seed string) (sdk.AccAddress, string) {
	t.Helper()

	addr := sdk.AccAddress([]byte(seed + "____________________")[:20])
	str, err := f.addressCodec.BytesToString(addr)
	require.NoError(t, err)
	f.authKeeper.Accounts[addr.String()] = true
	return addr, str
}

// fund credits the account with amount of the default fee denom.
func (f *fixture) fund(addr sdk.AccAddress, amount uint64) {
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultFeeDenom, math.NewIntFromUint64(amount)))
	f.bankKeeper.Balances[addr.String()] = f.bankKeeper.Balances[addr.String()].Add(coins...)
}

// balanceOf returns the account's balance in the default fee denom.
func (f *fixture) balanceOf(addr sdk.AccAddress) uint64 {
	return f.bankKeeper.Balances[addr.String()].AmountOf(types.DefaultFeeDenom).Uint64()
}

func TestKeeperArcadeRoundTrip(t *testing.T) {
	f := initFixture(t)

	_, ownerStr := f.account(t, "owner")
	ledger := types.ArcadeLedger{
		Owner:        ownerStr,
		Name:         "Pixel Palace",
		Admins:       []string{ownerStr},
		PricePerGame: 100,
		MaxTopScores: 3,
	}
	require.NoError(t, f.keeper.SetArcade(f.ctx, ledger))

	got, err := f.keeper.GetArcade(f.ctx, ownerStr)
	require.NoError(t, err)
	require.Equal(t, ledger, got)

	has, err := f.keeper.HasArcade(f.ctx, ownerStr)
	require.NoError(t, err)
	require.True(t, has)

	_, err = f.keeper.GetArcade(f.ctx, "unknown")
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestKeeperParamsDefaultWhenUnset(t *testing.T) {
	f := initFixture(t)

	// Fresh store without SetParams.
	storeKey := storetypes.NewKVStoreKey("arcade_params_test")
	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_params_test")).Ctx
	k := keeper.NewKeeper(storeService, f.addressCodec, authtypes.NewModuleAddress(types.GovModuleName), f.bankKeeper, f.authKeeper)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	f := initFixture(t)

	params := types.DefaultParams()
	params.FeeDenom = ""
	err := f.keeper.SetParams(f.ctx, params)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}
