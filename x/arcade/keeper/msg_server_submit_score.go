package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"arcadechain/x/arcade/types"
)

// SubmitScore handles the SubmitScore message. It admits the candidate into
// the bounded leaderboard and, when the score is a new overall best, pays
// the escrow surplus to the player through the arcade's own escrow
// authority.
//
// The handler computes everything first, performs the transfer, then writes
// the record once; a failure at any step leaves the committed state intact.
func (k *msgServer) SubmitScore(ctx context.Context, msg *types.MsgSubmitScore) (*types.MsgSubmitScoreResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}
	playerAddr, err := k.addressCodec.StringToBytes(msg.Player)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid player address")
	}

	ledger, err := k.GetArcade(ctx, msg.Arcade)
	if err != nil {
		return nil, err
	}
	if !ledger.IsAdmin(msg.Creator) {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only an arcade admin can submit scores")
	}
	if msg.Beneficiary != msg.Player {
		return nil, errorsmod.Wrapf(types.ErrInvalidSubject, "beneficiary %s, player %s", msg.Beneficiary, msg.Player)
	}
	if !k.authKeeper.HasAccount(ctx, playerAddr) {
		return nil, errorsmod.Wrap(types.ErrInvalidSubject, "beneficiary account does not exist")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}
	if uint32(len(msg.Nickname)) > params.MaxNicknameLength {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "nickname exceeds %d characters", params.MaxNicknameLength)
	}

	// A payout is gated on a new overall best, decided before admission.
	// Merely entering the top-N is not enough.
	prevHighest, hasScores := ledger.HighestScore()
	newHighest := !hasScores || msg.Score > prevHighest

	result := ledger.AdmitScore(types.ScoreEntry{
		Player:   msg.Player,
		Nickname: msg.Nickname,
		Score:    msg.Score,
	})
	if result.Outcome == types.AdmitRejected {
		return &types.MsgSubmitScoreResponse{Outcome: result.Outcome.String()}, nil
	}

	var payout uint64
	if newHighest {
		ownerAddr, err := k.addressCodec.StringToBytes(ledger.Owner)
		if err != nil {
			return nil, errorsmod.Wrap(err, "invalid owner address")
		}
		auth := k.escrowAuthorityFor(ownerAddr)
		payout = k.availableForPayout(ctx, auth, params)
		if payout > 0 {
			if ledger.TotalDistributed > ^uint64(0)-payout {
				return nil, errorsmod.Wrap(types.ErrOverflow, "total distributed")
			}
			if err := k.withdrawFromEscrow(ctx, auth, params, payout, playerAddr); err != nil {
				return nil, err
			}
			ledger.TotalDistributed += payout
		}
	}

	if err := k.SetArcade(ctx, ledger); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store arcade")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	event := sdk.NewEvent(
		types.EventScoreAdmitted,
		sdk.NewAttribute(types.AttrOwner, ledger.Owner),
		sdk.NewAttribute(types.AttrPlayer, msg.Player),
		sdk.NewAttribute(types.AttrNickname, msg.Nickname),
		sdk.NewAttribute(types.AttrScore, strconv.FormatUint(msg.Score, 10)),
		sdk.NewAttribute(types.AttrOutcome, result.Outcome.String()),
	)
	if result.Evicted != nil {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttrEvictedPlayer, result.Evicted.Player))
	}
	sdkCtx.EventManager().EmitEvent(event)

	if payout > 0 {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventPrizeDistributed,
				sdk.NewAttribute(types.AttrOwner, ledger.Owner),
				sdk.NewAttribute(types.AttrPlayer, msg.Player),
				sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(payout, 10)),
			),
		)
		k.Logger(ctx).Info("prize distributed",
			"arcade", ledger.Owner,
			"player", msg.Player,
			"amount", payout,
		)
	}

	return &types.MsgSubmitScoreResponse{Outcome: result.Outcome.String(), Payout: payout}, nil
}
