// Package game implements the core blackjack round logic.
//
// The main type is Engine, which drives the per-round state machine for a
// fixed list of seats: reshuffle check, setup, betting, deal, participant
// turns, dealer turn, settlement. Each seat couples a Player with a
// Strategy (the decision policy) and a Bettor (the stake policy); humans
// and bots differ only in which implementations they plug in.
//
// # Basic Usage
//
// Create and run rounds with bot seats:
//
//	rng := randutil.New(42)
//	seats := []*game.Seat{{
//		Player:   game.NewPlayer("Bot", 500),
//		Strategy: strategy.Threshold{},
//		Bettor:   game.FixedBettor{Amount: 10},
//	}}
//	e := game.NewEngine(rng, 6, seats)
//	record, err := e.PlayRound()
//
// # Deterministic Testing
//
// The RNG is injected, so a fixed seed replays a session exactly. Tests
// that need full control over the deal pass a stacked shoe:
//
//	shoe := deck.NewStackedShoe(rng, cards...)
//	e := game.NewEngine(rng, 1, seats, game.WithShoe(shoe))
//
// # Architecture
//
// Engine delegates to specialized pieces: deck.Shoe provides cards with
// injectable randomness, Hand resolves soft/hard ace totals, Resolve maps
// finished hands to settlements, and events let the display layer render
// play without the engine knowing about terminals. The engine is strictly
// sequential; a session that wants several tables runs several engines,
// each with its own shoe.
package game
