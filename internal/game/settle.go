package game

// Settlement is the outcome of one hand measured against the dealer's.
// Payout includes the returned stake; the bet itself was deducted when
// placed, so crediting Payout is the only balance change at settlement.
type Settlement struct {
	Result Result
	Payout int
}

// Resolve maps (participant hand, dealer hand, bet) to a settlement:
//
//	busted hand        -> nothing, "busted"
//	natural two-card 21 -> 2.5x bet (3:2 winnings, rounded down on odd
//	                       bets), "blackjack"
//	dealer bust or beaten -> 2x bet, "win"
//	equal values       -> stake returned, "push"
//	otherwise          -> nothing, "lose"
//
// Resolve is pure: applying its payout is the caller's job, exactly once.
func Resolve(hand, dealerHand *Hand, bet int) Settlement {
	handValue := hand.Value()
	dealerValue := dealerHand.Value()

	switch {
	case hand.IsBusted():
		return Settlement{Result: ResultBusted}
	case hand.IsBlackjack():
		return Settlement{Result: ResultBlackjack, Payout: bet * 5 / 2}
	case dealerValue > blackjack || handValue > dealerValue:
		return Settlement{Result: ResultWin, Payout: bet * 2}
	case handValue == dealerValue:
		return Settlement{Result: ResultPush, Payout: bet}
	default:
		return Settlement{Result: ResultLose}
	}
}
