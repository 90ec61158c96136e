package cli

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/spf13/cobra"

	"arcadechain/x/arcade/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the arcade module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getParamsCmd())
	cmd.AddCommand(getArcadeCmd())
	cmd.AddCommand(getTopScoresCmd())
	cmd.AddCommand(getGameCounterCmd())
	cmd.AddCommand(getPriceCmd())
	cmd.AddCommand(getTotalDistributedCmd())
	cmd.AddCommand(getEscrowBalanceCmd())
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}
			out, _ := json.Marshal(params)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getArcadeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcade [owner]",
		Short: "Shows the full ledger record of an arcade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			ledger, err := queryLedger(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, _ := json.Marshal(ledger)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getTopScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top-scores [owner]",
		Short: "Shows the ranked leaderboard of an arcade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			ledger, err := queryLedger(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, _ := json.Marshal(ledger.TopScores)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getGameCounterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game-counter [owner]",
		Short: "Shows how many games an arcade has sold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			ledger, err := queryLedger(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, _ := json.Marshal(types.QueryGameCounterResponse{GameCounter: ledger.GameCounter})
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getPriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [owner]",
		Short: "Shows the entry fee of an arcade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			ledger, err := queryLedger(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, _ := json.Marshal(types.QueryPricePerGameResponse{PricePerGame: ledger.PricePerGame})
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getTotalDistributedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-distributed [owner]",
		Short: "Shows the lifetime prize total an arcade has paid out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			ledger, err := queryLedger(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, _ := json.Marshal(types.QueryTotalDistributedResponse{TotalDistributed: ledger.TotalDistributed})
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getEscrowBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow-balance [owner]",
		Short: "Shows the escrow custody of an arcade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			ledger, err := queryLedger(clientCtx, args[0])
			if err != nil {
				return err
			}
			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}

			// The escrow is a plain bank account; its balance comes from the
			// bank query service.
			res, err := banktypes.NewQueryClient(clientCtx).AllBalances(cmd.Context(), &banktypes.QueryAllBalancesRequest{
				Address: ledger.EscrowAddress,
			})
			if err != nil {
				return err
			}
			balance := uint64(0)
			if amt := res.Balances.AmountOf(params.FeeDenom); amt.IsUint64() {
				balance = amt.Uint64()
			} else {
				balance = ^uint64(0)
			}
			available := uint64(0)
			if balance > params.MinEscrowReserve {
				available = balance - params.MinEscrowReserve
			}

			out, _ := json.Marshal(types.QueryEscrowBalanceResponse{
				EscrowAddress: ledger.EscrowAddress,
				Balance:       balance,
				Reserve:       params.MinEscrowReserve,
				Available:     available,
			})
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// queryParams reads module params straight from the store, falling back to
// defaults when unset.
func queryParams(clientCtx client.Context) (types.Params, error) {
	bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
	if err != nil {
		return types.Params{}, err
	}
	if len(bz) == 0 {
		return types.DefaultParams(), nil
	}

	// Stored as JSON (collections codec).
	var p types.Params
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.Params{}, err
	}
	return p, nil
}

// queryLedger reads a ledger record straight from the store. Records are
// keyed by the owner address under the arcades prefix and stored as JSON.
func queryLedger(clientCtx client.Context, owner string) (types.ArcadeLedger, error) {
	key := append(types.ArcadesKeyPrefix.Bytes(), []byte(owner)...)
	bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil {
		return types.ArcadeLedger{}, err
	}
	if len(bz) == 0 {
		return types.ArcadeLedger{}, types.ErrNotInitialized.Wrap(owner)
	}

	var ledger types.ArcadeLedger
	if err := json.Unmarshal(bz, &ledger); err != nil {
		return types.ArcadeLedger{}, err
	}
	return ledger, nil
}
