package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/deck"
)

// Bettor supplies a participant's bet for a round. Returning 0 sits the
// participant out of the round without touching their balance; they stay in
// the session for future rounds.
type Bettor interface {
	BetAmount(p *Player) int
}

// FixedBettor bets a fixed default capped at the player's balance. This is
// the standard bot bet policy; a broke bot returns 0 and sits out.
type FixedBettor struct {
	Amount int
}

// BetAmount implements Bettor.
func (b FixedBettor) BetAmount(p *Player) int {
	return min(b.Amount, p.Balance())
}

// Seat couples a participant with its decision strategy and bet policy.
// Human seats get re-prompted on rejected actions where bot seats fall back
// to the next-best legal action.
type Seat struct {
	Player   *Player
	Strategy Strategy
	Bettor   Bettor
	Human    bool
}

// Engine drives the per-round state machine: reshuffle check, setup,
// betting, deal, participant turns, dealer turn, settlement. It exclusively
// owns the shoe and is the only mutator of participant balances and hands
// while a round is in flight.
type Engine struct {
	numDecks int
	rng      *rand.Rand
	shoe     *deck.Shoe
	seats    []*Seat
	dealer   *Player
	round    int
	godMode  bool
	logger   *log.Logger
	handlers []EventHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger.WithPrefix("engine") }
}

// WithEventHandler subscribes a handler to engine events.
func WithEventHandler(h EventHandler) Option {
	return func(e *Engine) { e.handlers = append(e.handlers, h) }
}

// WithGodMode deals every human seat a natural each round. Demo rig only.
func WithGodMode(enabled bool) Option {
	return func(e *Engine) { e.godMode = enabled }
}

// WithShoe replaces the engine's initial shoe, giving tests and tooling
// full control over the deal order.
func WithShoe(s *deck.Shoe) Option {
	return func(e *Engine) { e.shoe = s }
}

// NewEngine creates an engine for the given seats. The RNG is the single
// source of randomness for the session's shoes.
func NewEngine(rng *rand.Rand, numDecks int, seats []*Seat, opts ...Option) *Engine {
	e := &Engine{
		numDecks: numDecks,
		rng:      rng,
		seats:    seats,
		dealer:   NewPlayer("Dealer", 0),
		logger:   log.New(io.Discard),
	}
	e.shoe = deck.NewShoe(numDecks, rng)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dealer returns the dealer participant.
func (e *Engine) Dealer() *Player { return e.dealer }

// Seats returns the session's seats in play order.
func (e *Engine) Seats() []*Seat { return e.seats }

// Round returns the number of rounds started.
func (e *Engine) Round() int { return e.round }

// ShoeRemaining returns the number of cards left in the shoe.
func (e *Engine) ShoeRemaining() int { return e.shoe.Remaining() }

// SetGodMode toggles the natural-dealing demo rig between rounds.
func (e *Engine) SetGodMode(enabled bool) { e.godMode = enabled }

// Subscribe adds an event handler.
func (e *Engine) Subscribe(h EventHandler) {
	e.handlers = append(e.handlers, h)
}

func (e *Engine) publish(ev Event) {
	for _, h := range e.handlers {
		h(ev)
	}
}

// UpCard returns the dealer's visible card (the second card dealt; the
// first stays hidden until the dealer's turn).
func (e *Engine) UpCard() deck.Card {
	cards := e.dealer.ActiveHand().Cards()
	if len(cards) < 2 {
		return deck.Card{}
	}
	return cards[1]
}

// ForceReshuffle replaces the shoe with a fresh shuffled one regardless of
// how many cards remain.
func (e *Engine) ForceReshuffle() {
	e.shoe = deck.NewShoe(e.numDecks, e.rng)
	e.logger.Info("shoe reshuffled", "remaining", e.shoe.Remaining())
	e.publish(ShoeReshuffledEvent{Remaining: e.shoe.Remaining()})
}

// checkShoe applies the reshuffle policy before a deal: a fresh shoe
// whenever fewer than (participants+1)*3 cards remain. That covers two
// cards for everyone plus headroom for hits, so the shoe cannot run dry
// mid-round under normal play.
func (e *Engine) checkShoe() {
	if e.shoe.Remaining() < (len(e.seats)+1)*3 {
		e.logger.Debug("shoe below reshuffle threshold", "remaining", e.shoe.Remaining())
		e.ForceReshuffle()
	}
}

// PlayRound runs one complete round and returns its log record. The state
// machine is strict: no skipping, no re-entry mid-round. A shoe-empty error
// mid-round aborts the round; the reshuffle policy makes that a defect
// rather than an expected condition.
func (e *Engine) PlayRound() (*RoundRecord, error) {
	e.checkShoe()
	e.setupRound()
	e.collectBets()
	if err := e.deal(); err != nil {
		return nil, err
	}

	for _, seat := range e.seats {
		if seat.Player.CurrentBet() == 0 {
			continue
		}
		if err := e.playSeat(seat); err != nil {
			return nil, err
		}
	}

	if err := e.dealerTurn(); err != nil {
		return nil, err
	}

	record := e.settle()
	e.publish(RoundEndEvent{Record: record})
	return record, nil
}

func (e *Engine) setupRound() {
	for _, seat := range e.seats {
		seat.Player.ResetForNewRound()
	}
	e.dealer.ResetForNewRound()
	e.round++
	e.logger.Debug("round started", "round", e.round, "shoe", e.shoe.Remaining())
	e.publish(RoundStartEvent{Round: e.round})
}

// collectBets asks each seat's bet policy for a stake. Humans are re-asked
// until they produce a valid bet or sit out; bots sit out on rejection.
func (e *Engine) collectBets() {
	for _, seat := range e.seats {
		for {
			amount := seat.Bettor.BetAmount(seat.Player)
			if amount == 0 {
				e.logger.Debug("sitting out", "player", seat.Player.Name)
				break
			}
			err := seat.Player.PlaceBet(amount)
			if err == nil {
				e.logger.Debug("bet placed", "player", seat.Player.Name, "amount", amount)
				break
			}
			e.logger.Warn("bet rejected", "player", seat.Player.Name, "amount", amount, "error", err)
			if !seat.Human {
				break
			}
		}
	}
}

// deal gives two cards to every betting participant and then the dealer,
// one pass at a time, so a seeded shoe replays identically.
func (e *Engine) deal() error {
	rigged := []deck.Card{
		deck.NewCard(deck.Hearts, deck.Ace),
		deck.NewCard(deck.Hearts, deck.King),
	}
	for pass := 0; pass < 2; pass++ {
		for _, seat := range e.seats {
			if seat.Player.CurrentBet() == 0 {
				continue
			}
			if e.godMode && seat.Human {
				seat.Player.Hit(rigged[pass])
				continue
			}
			card, err := e.shoe.Draw()
			if err != nil {
				return fmt.Errorf("dealing to %s: %w", seat.Player.Name, err)
			}
			seat.Player.Hit(card)
		}
		card, err := e.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealing to dealer: %w", err)
		}
		e.dealer.Hit(card)
	}

	betting := make([]*Player, 0, len(e.seats))
	for _, seat := range e.seats {
		if seat.Player.CurrentBet() > 0 {
			betting = append(betting, seat.Player)
		}
	}
	e.publish(CardsDealtEvent{DealerUpCard: e.UpCard(), Players: betting})
	return nil
}

// playSeat plays every hand the seat holds, in creation order. A split
// appends a second hand which is played after the first.
func (e *Engine) playSeat(seat *Seat) error {
	for {
		e.publish(TurnStartEvent{Player: seat.Player, HandIndex: seat.Player.ActiveHandIndex()})
		if err := e.playHand(seat); err != nil {
			return err
		}
		if !seat.Player.AdvanceHand() {
			return nil
		}
	}
}

// playHand queries the seat's strategy until the active hand is blackjack,
// busted, stood, or doubled.
func (e *Engine) playHand(seat *Seat) error {
	p := seat.Player
	up := e.UpCard()

	for {
		hand := p.ActiveHand()
		if hand.IsBlackjack() || hand.IsBusted() {
			return nil
		}

		// Offer the split before a decision whenever it is legal. Humans
		// also reach Split through the action prompt itself.
		if p.CanSplit() && seat.Strategy.WantsSplit(e.view(seat)) {
			if err := e.applySplit(seat, up); err != nil {
				return err
			}
			continue
		}

		switch action := seat.Strategy.Decide(e.view(seat)); action {
		case Hit:
			if err := e.hit(seat, up); err != nil {
				return err
			}

		case Stand:
			p.LogAction(Stand, up)
			e.publish(PlayerActionEvent{Player: p, Action: Stand, Hand: hand, HandIndex: p.ActiveHandIndex()})
			return nil

		case Double:
			if err := p.CanDoubleDown(); err != nil {
				e.publish(ActionRejectedEvent{Player: p, Action: Double, Err: err})
				if seat.Human {
					continue
				}
				e.logger.Debug("double unavailable, bot hits instead", "player", p.Name, "error", err)
				if err := e.hit(seat, up); err != nil {
					return err
				}
				continue
			}
			card, err := e.shoe.Draw()
			if err != nil {
				return fmt.Errorf("doubling %s: %w", p.Name, err)
			}
			if err := p.DoubleDown(card); err != nil {
				return err
			}
			p.LogAction(Double, up)
			e.publish(PlayerActionEvent{Player: p, Action: Double, Hand: p.ActiveHand(), HandIndex: p.ActiveHandIndex()})
			// A doubled hand takes exactly one card and ends, whatever the
			// resulting value.
			return nil

		case Split:
			if !p.CanSplit() {
				e.publish(ActionRejectedEvent{Player: p, Action: Split, Err: ErrNotSplittable})
				if seat.Human {
					continue
				}
				e.logger.Debug("split unavailable, bot hits instead", "player", p.Name)
				if err := e.hit(seat, up); err != nil {
					return err
				}
				continue
			}
			if err := e.applySplit(seat, up); err != nil {
				return err
			}

		default:
			e.publish(ActionRejectedEvent{Player: p, Action: action, Err: fmt.Errorf("unknown action %q", action)})
			if !seat.Human {
				p.LogAction(Stand, up)
				return nil
			}
		}
	}
}

func (e *Engine) hit(seat *Seat, up deck.Card) error {
	p := seat.Player
	card, err := e.shoe.Draw()
	if err != nil {
		return fmt.Errorf("hitting %s: %w", p.Name, err)
	}
	p.ActiveHand().AddCard(card)
	p.LogAction(Hit, up)
	e.publish(PlayerActionEvent{Player: p, Action: Hit, Hand: p.ActiveHand(), HandIndex: p.ActiveHandIndex()})
	return nil
}

// applySplit performs the split and deals one card to each new hand, in
// creation order. Play resumes on the first hand.
func (e *Engine) applySplit(seat *Seat, up deck.Card) error {
	p := seat.Player
	if err := p.Split(); err != nil {
		return err
	}
	p.LogAction(Split, up)
	for _, h := range p.Hands() {
		card, err := e.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealing split hands for %s: %w", p.Name, err)
		}
		h.AddCard(card)
	}
	e.logger.Debug("hand split", "player", p.Name)
	e.publish(PlayerActionEvent{Player: p, Action: Split, Hand: p.ActiveHand(), HandIndex: p.ActiveHandIndex()})
	return nil
}

func (e *Engine) view(seat *Seat) View {
	p := seat.Player
	h := p.ActiveHand()
	cards := make([]deck.Card, len(h.Cards()))
	copy(cards, h.Cards())
	return View{
		Cards:        cards,
		HandValue:    h.Value(),
		HandSize:     h.NumCards(),
		DealerUpCard: e.UpCard(),
		Balance:      p.Balance(),
		CurrentBet:   p.CurrentBet(),
		CanDouble:    p.CanDoubleDown() == nil,
		CanSplit:     p.CanSplit(),
	}
}

// dealerTurn plays the dealer's fixed policy: hit below 17, stand on all
// 17s including soft 17. There is no peek or hole-card variant.
func (e *Engine) dealerTurn() error {
	hand := e.dealer.ActiveHand()
	e.publish(DealerTurnEvent{Hand: hand})
	for hand.Value() < 17 {
		card, err := e.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer drawing: %w", err)
		}
		hand.AddCard(card)
		e.publish(DealerCardEvent{Card: card, Hand: hand})
	}
	e.logger.Debug("dealer stands", "value", hand.Value(), "busted", hand.IsBusted())
	return nil
}

// settle resolves every hand of every betting seat against the dealer,
// credits payouts, and builds the round record. Sat-out seats appear in the
// record with a zero bet.
func (e *Engine) settle() *RoundRecord {
	dealerHand := e.dealer.ActiveHand()
	record := &RoundRecord{
		RoundNumber: e.round,
		Dealer: DealerRecord{
			InitialHand: []string{"Hidden", e.UpCard().String()},
			FinalHand:   dealerHand.CardStrings(),
			FinalValue:  dealerHand.Value(),
		},
	}

	for _, seat := range e.seats {
		p := seat.Player
		if p.CurrentBet() > 0 {
			for i, hand := range p.Hands() {
				s := Resolve(hand, dealerHand, p.CurrentBet())
				p.Credit(s.Payout)
				p.setResult(s.Result)
				e.logger.Info("hand settled",
					"player", p.Name,
					"value", hand.Value(),
					"result", s.Result,
					"payout", s.Payout,
					"balance", p.Balance())
				e.publish(HandSettledEvent{Player: p, HandIndex: i, Hand: hand, Settlement: s})
			}
		}
		record.Players = append(record.Players, PlayerRecord{
			Name:       p.Name,
			Bet:        p.CurrentBet(),
			Actions:    p.Actions(),
			FinalHand:  p.Hands()[0].CardStrings(),
			FinalValue: p.Hands()[0].Value(),
			Result:     p.Result(),
			Balance:    p.Balance(),
		})
	}
	return record
}
