package keeper

import (
	"context"

	"arcadechain/x/arcade/types"
)

// InitGenesis initializes the module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, ledger := range genState.Arcades {
		if err := ledger.Validate(genState.Params); err != nil {
			return err
		}
		if err := k.SetArcade(ctx, ledger); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genesis := types.DefaultGenesis()
	genesis.Params = params
	err = k.Arcades.Walk(ctx, nil, func(_ string, ledger types.ArcadeLedger) (bool, error) {
		genesis.Arcades = append(genesis.Arcades, ledger)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
