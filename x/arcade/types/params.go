package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v3"
)

// Default parameter values.
const (
	DefaultFeeDenom                  = "uarcade"
	DefaultMinEscrowReserve   uint64 = 1_000_000
	DefaultMaxAdmins          uint32 = 16
	DefaultMaxLeaderboardSize uint32 = 100
	DefaultMaxNameLength      uint32 = 64
	DefaultMaxNicknameLength  uint32 = 32
)

// Params holds configurable parameters for the arcade module.
type Params struct {
	// FeeDenom is the denom entry fees are paid and prizes distributed in.
	FeeDenom string `json:"fee_denom" yaml:"fee_denom"`
	// MinEscrowReserve is the floor below which an arcade's escrow account
	// may never drop. Funded by the creator at initialization.
	MinEscrowReserve uint64 `json:"min_escrow_reserve" yaml:"min_escrow_reserve"`
	// MaxAdmins caps the admin set of a single arcade.
	MaxAdmins uint32 `json:"max_admins" yaml:"max_admins"`
	// MaxLeaderboardSize caps the max_top_scores an arcade may be created
	// with. Records are sized at creation and never grow past this.
	MaxLeaderboardSize uint32 `json:"max_leaderboard_size" yaml:"max_leaderboard_size"`
	MaxNameLength      uint32 `json:"max_name_length" yaml:"max_name_length"`
	MaxNicknameLength  uint32 `json:"max_nickname_length" yaml:"max_nickname_length"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		FeeDenom:           DefaultFeeDenom,
		MinEscrowReserve:   DefaultMinEscrowReserve,
		MaxAdmins:          DefaultMaxAdmins,
		MaxLeaderboardSize: DefaultMaxLeaderboardSize,
		MaxNameLength:      DefaultMaxNameLength,
		MaxNicknameLength:  DefaultMaxNicknameLength,
	}
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.FeeDenom); err != nil {
		return fmt.Errorf("invalid fee denom: %w", err)
	}
	if p.MaxAdmins == 0 {
		return fmt.Errorf("max_admins must be positive")
	}
	if p.MaxLeaderboardSize == 0 {
		return fmt.Errorf("max_leaderboard_size must be positive")
	}
	if p.MaxNameLength == 0 {
		return fmt.Errorf("max_name_length must be positive")
	}
	if p.MaxNicknameLength == 0 {
		return fmt.Errorf("max_nickname_length must be positive")
	}
	return nil
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
