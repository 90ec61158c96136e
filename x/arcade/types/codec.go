package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {}

// RegisterInterfaces is a no-op: messages and state are plain JSON structs.
// Msg service registration happens once a host chain generates the proto
// surface for this module.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {}
