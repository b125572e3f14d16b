package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the glyph for a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the one-letter code for a suit (c, d, h, s)
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Color represents the color of a card
type Color int

const (
	Black Color = iota
	Red
)

// String returns the string representation of a color
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are immutable values with no
// identity beyond rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the display representation of a card (e.g. "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code returns the compact two-character code of a card (e.g. "As")
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Color returns the color of the card, derived from its suit
func (c Card) Color() Color {
	if c.Suit.IsRed() {
		return Red
	}
	return Black
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCards parses a compact card string like "AsKhQd" into cards.
// Parsing is case insensitive.
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("card string %q has odd length", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{Rank: rank, Suit: suit})
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on invalid input.
// Intended for tests and hardcoded card strings.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, error) {
	switch strings.ToUpper(string(b)) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", b)
	}
}

func parseSuit(b byte) (Suit, error) {
	switch strings.ToLower(string(b)) {
	case "c":
		return Clubs, nil
	case "d":
		return Diamonds, nil
	case "h":
		return Hearts, nil
	case "s":
		return Spades, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", b)
	}
}
