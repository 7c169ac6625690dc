package game

// RoundRecord is the JSON-compatible log entry for one completed round,
// written to the session round log and consumed by the stats command.
type RoundRecord struct {
	RoundNumber int            `json:"game_number"`
	Dealer      DealerRecord   `json:"dealer"`
	Players     []PlayerRecord `json:"players"`
}

// DealerRecord captures the dealer's hand as initially shown (hole card
// hidden) and as finally played.
type DealerRecord struct {
	InitialHand []string `json:"initial_hand"`
	FinalHand   []string `json:"final_hand"`
	FinalValue  int      `json:"final_value"`
}

// PlayerRecord captures one participant's round: bet, ordered actions,
// final first hand, result, and post-round balance. Participants who sat
// out appear with a zero bet and no actions.
type PlayerRecord struct {
	Name       string         `json:"name"`
	Bet        int            `json:"bet"`
	Actions    []ActionRecord `json:"actions"`
	FinalHand  []string       `json:"final_hand"`
	FinalValue int            `json:"final_value"`
	Result     Result         `json:"result"`
	Balance    int            `json:"balance"`
}
