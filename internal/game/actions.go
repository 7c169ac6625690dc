package game

// Action is a turn decision for a single hand.
type Action string

const (
	Hit    Action = "hit"
	Stand  Action = "stand"
	Double Action = "double"
	Split  Action = "split"
)

// String returns the string representation of an action
func (a Action) String() string { return string(a) }

// Result is the settled outcome of a participant's round. It is unset until
// settlement runs.
type Result string

const (
	ResultNone      Result = ""
	ResultBlackjack Result = "blackjack"
	ResultWin       Result = "win"
	ResultPush      Result = "push"
	ResultLose      Result = "lose"
	ResultBusted    Result = "busted"
)

// String returns the string representation of a result
func (r Result) String() string { return string(r) }
