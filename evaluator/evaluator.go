// Package evaluator ranks poker hands. The table core consumes it through
// the Evaluator interface and never ranks hands itself; the default
// implementation delegates to github.com/chehsunliu/poker.
package evaluator

import (
	libpoker "github.com/chehsunliu/poker"

	"github.com/chevcast/poker-engine/deck"
)

// Hand is an evaluated hand: the cards it was built from plus a strength
// value supporting a total order. Owner carries the id of the player the
// hand belongs to so winner sets can be mapped back to seats.
type Hand struct {
	Owner string
	Cards []deck.Card

	rank int32 // library rank, lower is stronger
	desc string
}

// NewHand constructs a Hand with the given strength, for custom Evaluator
// implementations. Higher strength beats lower.
func NewHand(owner string, cards []deck.Card, strength int) Hand {
	return Hand{Owner: owner, Cards: cards, rank: int32(-strength)}
}

// Compare returns >0 if h is stronger than other, <0 if weaker, 0 on a tie.
func (h Hand) Compare(other Hand) int {
	switch {
	case h.rank < other.rank:
		return 1
	case h.rank > other.rank:
		return -1
	default:
		return 0
	}
}

// Description returns a human-readable name for the hand (e.g. "Two Pair")
func (h Hand) Description() string {
	return h.desc
}

// Evaluator ranks a player's best five-card hand out of the cards given and
// partitions a set of hands into the subset achieving the maximum rank.
type Evaluator interface {
	// Rank evaluates the best 5-card hand from the given cards
	// (2 hole + up to 5 community).
	Rank(cards []deck.Card) Hand

	// Winners returns the hands achieving the maximum rank. The result has
	// at least one element; more than one signals a tie.
	Winners(hands []Hand) []Hand
}

// New returns the default Evaluator, backed by chehsunliu/poker.
func New() Evaluator {
	return libEvaluator{}
}

type libEvaluator struct{}

func (libEvaluator) Rank(cards []deck.Card) Hand {
	libCards := make([]libpoker.Card, len(cards))
	for i, c := range cards {
		libCards[i] = libpoker.NewCard(c.Code())
	}
	rank := libpoker.Evaluate(libCards)
	return Hand{
		Cards: cards,
		rank:  rank,
		desc:  libpoker.RankString(rank),
	}
}

func (libEvaluator) Winners(hands []Hand) []Hand {
	if len(hands) <= 1 {
		return hands
	}
	best := hands[0]
	for _, h := range hands[1:] {
		if h.Compare(best) > 0 {
			best = h
		}
	}
	winners := make([]Hand, 0, 1)
	for _, h := range hands {
		if h.Compare(best) == 0 {
			winners = append(winners, h)
		}
	}
	return winners
}
