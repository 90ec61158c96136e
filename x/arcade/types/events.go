package types

const (
	EventArcadeInitialized = "arcade.initialized"
	EventGamePlayed        = "arcade.game_played"
	EventScoreAdmitted     = "arcade.score_admitted"
	EventPrizeDistributed  = "arcade.prize_distributed"
	EventPriceUpdated      = "arcade.price_updated"
	EventAdminsAdded       = "arcade.admins_added"
	EventAdminRemoved      = "arcade.admin_removed"
)

const (
	AttrOwner         = "owner"
	AttrName          = "name"
	AttrPlayer        = "player"
	AttrNickname      = "nickname"
	AttrScore         = "score"
	AttrOutcome       = "outcome"
	AttrEvictedPlayer = "evicted_player"
	AttrPrice         = "price"
	AttrAmount        = "amount"
	AttrAdmin         = "admin"
	AttrGameCounter   = "game_counter"
	AttrEscrowAddress = "escrow_address"
)
