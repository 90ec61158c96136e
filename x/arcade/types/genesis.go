package types

import "fmt"

// GenesisState defines the arcade module's genesis state.
type GenesisState struct {
	Params  Params         `json:"params"`
	Arcades []ArcadeLedger `json:"arcades,omitempty"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Arcades))
	for _, ledger := range gs.Arcades {
		if _, ok := seen[ledger.Owner]; ok {
			return fmt.Errorf("duplicate arcade record for owner %s", ledger.Owner)
		}
		seen[ledger.Owner] = struct{}{}
		if err := ledger.Validate(gs.Params); err != nil {
			return err
		}
	}
	return nil
}
