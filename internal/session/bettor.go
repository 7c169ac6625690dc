package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lox/blackjackforbots/internal/game"
)

func defaultExit(code int) { os.Exit(code) }

// consoleBettor prompts a human for their stake and doubles as the table
// command shell: slash commands run between rounds, while a bet is being
// collected.
type consoleBettor struct {
	session    *Session
	defaultBet int
}

// BetAmount implements game.Bettor. Empty input takes the default bet,
// "0" or "sit" sits the round out, and slash commands loop back to the
// prompt. Non-numeric garbage re-prompts rather than sitting the player
// out by accident.
func (b *consoleBettor) BetAmount(p *game.Player) int {
	for {
		input, err := b.session.console.Prompt(
			fmt.Sprintf("%s, your bet (balance $%d) [%d]: ", p.Name, p.Balance(), b.defaultBet))
		if err != nil {
			return 0
		}

		if strings.HasPrefix(input, "/") {
			b.runCommand(input)
			continue
		}

		switch strings.ToLower(input) {
		case "":
			return min(b.defaultBet, p.Balance())
		case "0", "sit":
			return 0
		}

		amount, err := strconv.Atoi(input)
		if err != nil {
			b.session.console.Println(fmt.Sprintf("Not a bet: %q. Enter an amount, or /help for commands.", input))
			continue
		}
		// Validation happens when the bet is placed; the engine re-prompts
		// humans on rejection.
		return amount
	}
}

func (b *consoleBettor) runCommand(input string) {
	console := b.session.console
	fields := strings.Fields(input)

	switch fields[0] {
	case "/help":
		console.Println("Commands:")
		console.Println("  /showbalance                 show all balances")
		console.Println("  /editbalance <name> <amount> set a player's balance")
		console.Println("  /shuffle                     reshuffle the shoe")
		console.Println("  /godmode on|off              rig the next deals")
		console.Println("  /exit                        leave the table")

	case "/exit":
		b.session.finish()
		b.session.exit(0)

	case "/shuffle":
		b.session.engine.ForceReshuffle()

	case "/showbalance":
		for _, seat := range b.session.seats {
			console.Printf("  %s: $%d\n", seat.Player.Name, seat.Player.Balance())
		}

	case "/editbalance":
		if len(fields) != 3 {
			console.Println("Usage: /editbalance <name> <amount>")
			return
		}
		amount, err := strconv.Atoi(fields[2])
		if err != nil || amount < 0 {
			console.Println(fmt.Sprintf("Invalid amount %q", fields[2]))
			return
		}
		for _, seat := range b.session.seats {
			if strings.EqualFold(seat.Player.Name, fields[1]) {
				seat.Player.SetBalance(amount)
				console.Printf("%s now has $%d\n", seat.Player.Name, amount)
				return
			}
		}
		console.Println(fmt.Sprintf("No player named %q", fields[1]))

	case "/godmode":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			console.Println("Usage: /godmode on|off")
			return
		}
		b.session.engine.SetGodMode(fields[1] == "on")
		console.Printf("God mode %s\n", fields[1])

	default:
		console.Println(fmt.Sprintf("Unknown command %s. Try /help.", fields[0]))
	}
}
