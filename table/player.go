package table

import "github.com/chevcast/poker-engine/deck"

// Player is a seat occupant. The table owns every player record; players
// hold no reference back to their table and all mutation happens through
// table operations.
type Player struct {
	id        string
	stackSize int
	bet       int
	raise     int // size of this player's last legal raise, 0 when none
	folded    bool
	showCards bool
	left      bool
	holeCards []deck.Card
}

func newPlayer(id string, buyIn int) *Player {
	return &Player{id: id, stackSize: buyIn}
}

// ID returns the player's id, unique among currently seated players.
func (p *Player) ID() string {
	return p.id
}

// StackSize returns the chips the player has behind.
func (p *Player) StackSize() int {
	return p.stackSize
}

// Bet returns the amount committed to the pot in the current round. It is
// reset to zero when bets are gathered into a pot.
func (p *Player) Bet() int {
	return p.bet
}

// Raise returns the size of the player's most recent raise this round, or
// zero if they have not raised.
func (p *Player) Raise() int {
	return p.raise
}

// Folded reports whether the player has folded the current hand.
func (p *Player) Folded() bool {
	return p.folded
}

// ShowCards reports whether the player's hole cards are face up.
func (p *Player) ShowCards() bool {
	return p.showCards
}

// Left reports whether the player stood up mid-hand and is awaiting removal
// at the next cleanup boundary.
func (p *Player) Left() bool {
	return p.left
}

// HoleCards returns the player's hole cards, or nil when no hand is active.
func (p *Player) HoleCards() []deck.Card {
	if p.holeCards == nil {
		return nil
	}
	cards := make([]deck.Card, len(p.holeCards))
	copy(cards, p.holeCards)
	return cards
}
