package game

import "github.com/lox/blackjackforbots/internal/deck"

// ActionRecord is one entry in a participant's per-round action log. Field
// names match the session round log schema.
type ActionRecord struct {
	Action       Action   `json:"action"`
	PlayerHand   []string `json:"player_hand"`
	HandValue    int      `json:"hand_value"`
	DealerUpCard string   `json:"dealer_visible_card"`
}

// Player is a betting participant in a session. The dealer is a Player too,
// constrained by the engine: a single hand, no bet, and the fixed
// hit-below-17 turn policy.
//
// Fields are unexported so that all round mutation flows through the engine
// and the invariants (non-negative balance, at most one split) are enforced
// at one choke point.
type Player struct {
	Name string

	balance    int
	hands      []*Hand
	active     int
	currentBet int
	actions    []ActionRecord
	result     Result
	hasSplit   bool
}

// NewPlayer creates a participant with a starting balance and one empty
// hand.
func NewPlayer(name string, balance int) *Player {
	return &Player{
		Name:    name,
		balance: balance,
		hands:   []*Hand{NewHand()},
	}
}

// Balance returns the participant's current balance.
func (p *Player) Balance() int { return p.balance }

// CurrentBet returns the bet riding on this round; 0 means sitting out.
func (p *Player) CurrentBet() int { return p.currentBet }

// Hands returns the participant's hands in creation order.
func (p *Player) Hands() []*Hand { return p.hands }

// Result returns the settled outcome, or ResultNone before settlement.
func (p *Player) Result() Result { return p.result }

// Actions returns the round's action log in order.
func (p *Player) Actions() []ActionRecord { return p.actions }

// ActiveHand returns the hand currently being played. Before a split this
// is the only hand; after a split the engine advances play from the first
// hand to the second.
func (p *Player) ActiveHand() *Hand { return p.hands[p.active] }

// ActiveHandIndex returns the index of the active hand.
func (p *Player) ActiveHandIndex() int { return p.active }

// AdvanceHand moves play to the next hand after a split. It returns false
// when there is no further hand.
func (p *Player) AdvanceHand() bool {
	if p.active+1 >= len(p.hands) {
		return false
	}
	p.active++
	return true
}

// PlaceBet deducts amount from the balance and records it as the round bet.
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}
	if amount > p.balance {
		return ErrInsufficientBalance
	}
	p.balance -= amount
	p.currentBet = amount
	return nil
}

// Hit appends a card to the active hand.
func (p *Player) Hit(c deck.Card) {
	p.ActiveHand().AddCard(c)
}

// CanSplit reports whether the active hand may be split: exactly two cards
// of equal rank, and no split yet this round.
func (p *Player) CanSplit() bool {
	h := p.ActiveHand()
	return !p.hasSplit &&
		h.NumCards() == 2 &&
		h.cards[0].Rank == h.cards[1].Rank
}

// Split distributes the active hand's pair into two fresh one-card hands.
// One split per round; a second call fails with ErrNotSplittable.
func (p *Player) Split() error {
	if !p.CanSplit() {
		return ErrNotSplittable
	}
	h := p.ActiveHand()
	p.hands = []*Hand{NewHand(h.cards[0]), NewHand(h.cards[1])}
	p.active = 0
	p.hasSplit = true
	return nil
}

// CanDoubleDown reports whether doubling is currently legal, returning the
// validation error a DoubleDown call would produce. The rule used here: the
// active hand must still have exactly two cards, so a hit forfeits the
// double but a freshly split hand may still be doubled.
func (p *Player) CanDoubleDown() error {
	if p.ActiveHand().NumCards() != 2 {
		return ErrNotDoubleable
	}
	if p.currentBet > p.balance {
		return ErrInsufficientBalance
	}
	return nil
}

// DoubleDown doubles the round bet and deals exactly one card to the active
// hand, ending that hand's turn.
func (p *Player) DoubleDown(c deck.Card) error {
	if err := p.CanDoubleDown(); err != nil {
		return err
	}
	p.balance -= p.currentBet
	p.currentBet *= 2
	p.Hit(c)
	return nil
}

// Credit adds a settlement payout to the balance.
func (p *Player) Credit(amount int) {
	p.balance += amount
}

// SetBalance replaces the balance outright. Session commands use this; the
// engine never does.
func (p *Player) SetBalance(amount int) {
	p.balance = amount
}

func (p *Player) setResult(r Result) {
	p.result = r
}

// LogAction appends an entry to the round action log with a snapshot of the
// active hand and the dealer's visible card at this moment.
func (p *Player) LogAction(action Action, dealerUp deck.Card) {
	h := p.ActiveHand()
	p.actions = append(p.actions, ActionRecord{
		Action:       action,
		PlayerHand:   h.CardStrings(),
		HandValue:    h.Value(),
		DealerUpCard: dealerUp.String(),
	})
}

// ResetForNewRound clears round state: one empty hand, no bet, empty action
// log, unset result. The balance carries across rounds.
func (p *Player) ResetForNewRound() {
	p.hands = []*Hand{NewHand()}
	p.active = 0
	p.currentBet = 0
	p.actions = nil
	p.result = ResultNone
	p.hasSplit = false
}
