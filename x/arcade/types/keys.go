package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "arcade"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency.
	GovModuleName = "gov"

	// EscrowPurpose tags the escrow sub-account derivation. Other derived
	// accounts can be added later without colliding with escrow addresses.
	EscrowPurpose = "escrow"
)

var (
	// ParamsKey is the prefix for the module params item.
	ParamsKey = collections.NewPrefix(0)
	// ArcadesKeyPrefix is the prefix for the arcade ledger records map.
	ArcadesKeyPrefix = collections.NewPrefix(1)
)
