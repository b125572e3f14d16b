package deck

import "math/rand"

// Deck is an ordered sequence of the 52 unique cards. Cards are dealt by
// popping from the end; a fresh shuffled deck is created for every hand and
// the previous instance discarded.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck shuffled with the provided RNG.
// The RNG is required so callers control determinism (tests pass a seeded
// source, production passes a time-seeded one).
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.shuffle(rng)
	return d
}

// shuffle applies an in-place Fisher-Yates permutation
func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pop removes and returns the top card. Popping an empty deck is a
// bookkeeping bug in the caller, never a runtime condition, so it panics.
func (d *Deck) Pop() Card {
	if len(d.cards) == 0 {
		panic("deck: pop from empty deck")
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// PopN removes and returns the top n cards
func (d *Deck) PopN(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = d.Pop()
	}
	return cards
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}
