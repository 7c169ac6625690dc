package game

import "github.com/lox/blackjackforbots/internal/deck"

// EventType identifies a game domain event.
type EventType string

const (
	EventTypeShoeReshuffled EventType = "shoe_reshuffled"
	EventTypeRoundStart     EventType = "round_start"
	EventTypeCardsDealt     EventType = "cards_dealt"
	EventTypeTurnStart      EventType = "turn_start"
	EventTypePlayerAction   EventType = "player_action"
	EventTypeActionRejected EventType = "action_rejected"
	EventTypeDealerTurn     EventType = "dealer_turn"
	EventTypeDealerCard     EventType = "dealer_card"
	EventTypeHandSettled    EventType = "hand_settled"
	EventTypeRoundEnd       EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string { return string(et) }

// Event is a domain event published by the engine while a round plays out.
// The display layer subscribes to render play as it happens; subscribers
// run synchronously on the engine's goroutine.
type Event interface {
	EventType() EventType
}

// EventHandler receives engine events.
type EventHandler func(Event)

// ShoeReshuffledEvent is published when the pre-deal check replaced the
// shoe with a fresh one.
type ShoeReshuffledEvent struct {
	Remaining int
}

func (ShoeReshuffledEvent) EventType() EventType { return EventTypeShoeReshuffled }

// RoundStartEvent is published after participants are reset for a round.
type RoundStartEvent struct {
	Round int
}

func (RoundStartEvent) EventType() EventType { return EventTypeRoundStart }

// CardsDealtEvent is published when the initial deal completes.
type CardsDealtEvent struct {
	DealerUpCard deck.Card
	Players      []*Player // betting participants only
}

func (CardsDealtEvent) EventType() EventType { return EventTypeCardsDealt }

// TurnStartEvent is published when a participant begins playing a hand.
type TurnStartEvent struct {
	Player    *Player
	HandIndex int
}

func (TurnStartEvent) EventType() EventType { return EventTypeTurnStart }

// PlayerActionEvent is published after an action is applied to a hand.
type PlayerActionEvent struct {
	Player    *Player
	Action    Action
	Hand      *Hand
	HandIndex int
}

func (PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }

// ActionRejectedEvent is published when a chosen action fails validation.
// No state changed; humans are re-prompted and bots fall back.
type ActionRejectedEvent struct {
	Player *Player
	Action Action
	Err    error
}

func (ActionRejectedEvent) EventType() EventType { return EventTypeActionRejected }

// DealerTurnEvent is published when the dealer's hole card is revealed and
// the dealer begins drawing.
type DealerTurnEvent struct {
	Hand *Hand
}

func (DealerTurnEvent) EventType() EventType { return EventTypeDealerTurn }

// DealerCardEvent is published for each card the dealer draws.
type DealerCardEvent struct {
	Card deck.Card
	Hand *Hand
}

func (DealerCardEvent) EventType() EventType { return EventTypeDealerCard }

// HandSettledEvent is published when a betting hand is resolved against the
// dealer.
type HandSettledEvent struct {
	Player     *Player
	HandIndex  int
	Hand       *Hand
	Settlement Settlement
}

func (HandSettledEvent) EventType() EventType { return EventTypeHandSettled }

// RoundEndEvent is published after settlement with the round's log record.
type RoundEndEvent struct {
	Record *RoundRecord
}

func (RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
