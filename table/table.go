// Package table implements a multi-seat Texas Hold'em table: seating and
// removal, the betting-round state machine, legal-action enforcement,
// main/side-pot construction and dealer/blind rotation. Hand ranking is
// delegated to an evaluator; transport and persistence are the caller's
// concern. All operations are synchronous and assume the caller serializes
// access.
package table

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/chevcast/poker-engine/deck"
	"github.com/chevcast/poker-engine/evaluator"
)

// DefaultSeatCount is the seat capacity of a table unless overridden.
const DefaultSeatCount = 10

// Table orchestrates a poker game: a sparse fixed-capacity seat array,
// blind/dealer positions, the current betting round, the turn-order cursor
// and the pot ledger. It is created once and persists across hands.
type Table struct {
	buyIn      int
	smallBlind int
	bigBlind   int

	autoMoveDealer bool
	debug          bool

	seats []*Player

	// Seat indices; -1 means unset.
	dealerPos  int
	sbPos      int
	bbPos      int
	currentPos int
	lastPos    int

	round      Round
	currentBet int // highest cumulative bet this round, 0 when none
	lastRaise  int // size of the last full raise, 0 when none

	communityCards []deck.Card
	deck           *deck.Deck
	pots           []*Pot
	winners        []*Player
	handNumber     int

	rng  *rand.Rand
	eval evaluator.Evaluator
	bus  EventBus
	log  zerolog.Logger
}

// New creates a table with the given minimum buy-in and blinds. The small
// blind must be less than the big blind.
func New(buyIn, smallBlind, bigBlind int, opts ...Option) (*Table, error) {
	if smallBlind >= bigBlind {
		return nil, fmt.Errorf("small blind %d must be less than big blind %d", smallBlind, bigBlind)
	}

	t := &Table{
		buyIn:          buyIn,
		smallBlind:     smallBlind,
		bigBlind:       bigBlind,
		autoMoveDealer: true,
		dealerPos:      -1,
		sbPos:          -1,
		bbPos:          -1,
		currentPos:     -1,
		lastPos:        -1,
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.seats == nil {
		t.seats = make([]*Player, DefaultSeatCount)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(newSeed()))
	}
	if t.eval == nil {
		t.eval = evaluator.New()
	}
	return t, nil
}

// BuyIn returns the minimum buy-in.
func (t *Table) BuyIn() int { return t.buyIn }

// SmallBlind returns the small blind amount.
func (t *Table) SmallBlind() int { return t.smallBlind }

// BigBlind returns the big blind amount.
func (t *Table) BigBlind() int { return t.bigBlind }

// SeatCount returns the seat capacity.
func (t *Table) SeatCount() int { return len(t.seats) }

// HandNumber returns the number of hands dealt so far.
func (t *Table) HandNumber() int { return t.handNumber }

// Seats returns the seat array; empty seats are nil.
func (t *Table) Seats() []*Player {
	seats := make([]*Player, len(t.seats))
	copy(seats, t.seats)
	return seats
}

// CommunityCards returns the community cards dealt so far.
func (t *Table) CommunityCards() []deck.Card {
	cards := make([]deck.Card, len(t.communityCards))
	copy(cards, t.communityCards)
	return cards
}

// CurrentRound returns the active betting round; ok is false when the table
// is idle between hands.
func (t *Table) CurrentRound() (Round, bool) {
	return t.round, t.round != roundNone
}

// CurrentBet returns the highest cumulative bet required to call this
// round; ok is false when no bet has been made.
func (t *Table) CurrentBet() (int, bool) {
	return t.currentBet, t.currentBet > 0
}

// LastRaise returns the size of the last full raise this round; ok is false
// when there has been none.
func (t *Table) LastRaise() (int, bool) {
	return t.lastRaise, t.lastRaise > 0
}

// DealerPosition returns the dealer seat index; ok is false when no players
// have been seated.
func (t *Table) DealerPosition() (int, bool) {
	return t.dealerPos, t.dealerPos >= 0
}

// SmallBlindPosition returns the small blind seat index.
func (t *Table) SmallBlindPosition() (int, bool) {
	return t.sbPos, t.sbPos >= 0
}

// BigBlindPosition returns the big blind seat index.
func (t *Table) BigBlindPosition() (int, bool) {
	return t.bbPos, t.bbPos >= 0
}

// Dealer returns the player on the button, or nil.
func (t *Table) Dealer() *Player {
	return t.playerAt(t.dealerPos)
}

// SmallBlindPlayer returns the small blind player, or nil.
func (t *Table) SmallBlindPlayer() *Player {
	return t.playerAt(t.sbPos)
}

// BigBlindPlayer returns the big blind player, or nil.
func (t *Table) BigBlindPlayer() *Player {
	return t.playerAt(t.bbPos)
}

// CurrentActor returns the player whose turn it is, or nil when no hand is
// active.
func (t *Table) CurrentActor() *Player {
	return t.playerAt(t.currentPos)
}

func (t *Table) playerAt(pos int) *Player {
	if pos < 0 || pos >= len(t.seats) {
		return nil
	}
	return t.seats[pos]
}

// ActivePlayers returns the seated players who have not folded, in seat
// order.
func (t *Table) ActivePlayers() []*Player {
	var players []*Player
	for _, p := range t.seats {
		if p != nil && !p.folded {
			players = append(players, p)
		}
	}
	return players
}

// ActingPlayers returns the players still eligible to act this round: not
// folded, chips behind, and either facing no bet, holding no raise marker,
// or still owing chips.
func (t *Table) ActingPlayers() []*Player {
	var players []*Player
	for _, p := range t.seats {
		if p != nil && t.isActing(p) {
			players = append(players, p)
		}
	}
	return players
}

func (t *Table) isActing(p *Player) bool {
	return !p.folded && p.stackSize > 0 &&
		(t.currentBet == 0 || p.raise == 0 || p.bet < t.currentBet)
}

// Pots returns the pot ledger. The last pot is the one still accepting
// chips.
func (t *Table) Pots() []*Pot {
	pots := make([]*Pot, len(t.pots))
	copy(pots, t.pots)
	return pots
}

// CurrentPot returns the pot currently accepting chips, creating the first
// pot if none exists.
func (t *Table) CurrentPot() *Pot {
	return t.currentPot()
}

// SidePots returns every pot except the current one, or nil when there are
// no side pots.
func (t *Table) SidePots() []*Pot {
	if len(t.pots) <= 1 {
		return nil
	}
	pots := make([]*Pot, len(t.pots)-1)
	copy(pots, t.pots[:len(t.pots)-1])
	return pots
}

// Winners returns the winning players of the last completed hand, or nil.
func (t *Table) Winners() []*Player {
	if t.winners == nil {
		return nil
	}
	winners := make([]*Player, len(t.winners))
	copy(winners, t.winners)
	return winners
}

// PlayerByID returns the seated player with the given id.
func (t *Table) PlayerByID(id string) (*Player, error) {
	for _, p := range t.seats {
		if p != nil && p.id == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
}

func (t *Table) currentPot() *Pot {
	if len(t.pots) == 0 {
		t.pots = append(t.pots, &Pot{})
	}
	return t.pots[len(t.pots)-1]
}

// SitDown seats a player with the given id and buy-in, in the first empty
// seat or the optional requested seat, and returns the seat index. A player
// joining mid-hand starts folded and is dealt in next hand.
func (t *Table) SitDown(id string, buyIn int, seat ...int) (int, error) {
	if t.occupiedSeats() == len(t.seats) {
		return 0, fmt.Errorf("%w: table is full", ErrSeatUnavailable)
	}
	if buyIn < t.buyIn {
		return 0, fmt.Errorf("%w: buy-in must be at least %d", ErrBelowMinimum, t.buyIn)
	}
	if _, err := t.PlayerByID(id); err == nil && !t.debug {
		return 0, fmt.Errorf("%w: %q", ErrDuplicatePlayer, id)
	}

	seatNumber := -1
	if len(seat) > 0 {
		seatNumber = seat[0]
		if seatNumber < 0 || seatNumber >= len(t.seats) {
			return 0, fmt.Errorf("%w: seat %d out of range", ErrSeatUnavailable, seatNumber)
		}
		if t.seats[seatNumber] != nil {
			return 0, fmt.Errorf("%w: seat %d is occupied", ErrSeatUnavailable, seatNumber)
		}
	} else {
		for i, p := range t.seats {
			if p == nil {
				seatNumber = i
				break
			}
		}
	}

	player := newPlayer(id, buyIn)
	t.seats[seatNumber] = player
	if t.round != roundNone {
		player.folded = true
	} else {
		t.cleanUp()
		if t.dealerPos >= 0 {
			t.moveDealer(t.dealerPos)
		} else {
			t.moveDealer(seatNumber)
		}
	}

	t.log.Debug().Str("player", id).Int("seat", seatNumber).Int("buy_in", buyIn).Msg("player sat down")
	return seatNumber, nil
}

// StandUp removes the players matching the given id. Mid-hand the player is
// folded and marked as having left; the seat is vacated at the next cleanup
// boundary. Between hands the seat is cleared immediately and the dealer
// button advanced if it pointed at the vacated seat.
func (t *Table) StandUp(id string) ([]*Player, error) {
	var leaving []*Player
	for _, p := range t.seats {
		if p != nil && p.id == id && !p.left {
			leaving = append(leaving, p)
		}
	}
	if len(leaving) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	}
	for _, p := range leaving {
		t.standUpPlayer(p)
	}
	return leaving, nil
}

func (t *Table) standUpPlayer(p *Player) {
	if t.round != roundNone {
		p.folded = true
		p.left = true
		if t.CurrentActor() == p || len(t.ActingPlayers()) <= 1 {
			t.nextAction()
		}
		return
	}
	t.removeSeat(t.seatOf(p))
}

func (t *Table) removeSeat(seat int) {
	if seat < 0 {
		return
	}
	t.seats[seat] = nil
	if seat == t.dealerPos {
		if t.occupiedSeats() == 0 {
			t.dealerPos, t.sbPos, t.bbPos = -1, -1, -1
		} else {
			t.moveDealer(t.dealerPos + 1)
		}
	}
}

func (t *Table) seatOf(p *Player) int {
	for i, seated := range t.seats {
		if seated == p {
			return i
		}
	}
	return -1
}

func (t *Table) occupiedSeats() int {
	count := 0
	for _, p := range t.seats {
		if p != nil {
			count++
		}
	}
	return count
}

// MoveDealer places the dealer button on the given seat, walking forward to
// the nearest occupied seat, then seats the small and big blinds on the next
// occupied seats after it.
func (t *Table) MoveDealer(seat int) error {
	if t.occupiedSeats() == 0 {
		return fmt.Errorf("%w: no seated players", ErrInsufficientPlayers)
	}
	t.moveDealer(seat)
	return nil
}

func (t *Table) moveDealer(seat int) {
	t.dealerPos = t.nextOccupied(seat)
	t.sbPos = t.nextOccupied(t.dealerPos + 1)
	t.bbPos = t.nextOccupied(t.sbPos + 1)
}

// nextOccupied returns the first occupied seat at or after the given index,
// wrapping around. The caller guarantees at least one seat is occupied.
func (t *Table) nextOccupied(from int) int {
	for i := 0; i < len(t.seats); i++ {
		pos := ((from + i) % len(t.seats) + len(t.seats)) % len(t.seats)
		if t.seats[pos] != nil {
			return pos
		}
	}
	return -1
}

// cleanUp runs at the start of every deal: pending and busted players are
// removed, per-hand player state is reset, and the pot ledger is emptied.
// Calling it twice in a row leaves identical state.
func (t *Table) cleanUp() {
	for i, p := range t.seats {
		if p != nil && p.left {
			t.removeSeat(i)
		}
	}
	for i, p := range t.seats {
		if p != nil && p.stackSize == 0 {
			t.removeSeat(i)
		}
	}

	for _, p := range t.seats {
		if p == nil {
			continue
		}
		p.bet = 0
		p.raise = 0
		p.holeCards = nil
		p.folded = false
		p.showCards = false
	}

	t.winners = nil
	t.communityCards = nil
	t.pots = []*Pot{{}}
	t.lastRaise = 0
	t.currentBet = 0
}

// DealCards starts a new hand: cleanup, dealer rotation, blinds, a fresh
// shuffled deck and two hole cards per seated player, opening the pre-flop
// round with the action on the seat after the big blind.
func (t *Table) DealCards() error {
	if t.round != roundNone {
		return fmt.Errorf("%w: there is already an active hand", ErrActiveHand)
	}

	t.cleanUp()

	if len(t.ActivePlayers()) < 2 {
		return fmt.Errorf("%w: need at least two players to start", ErrInsufficientPlayers)
	}

	t.round = PreFlop
	t.handNumber++

	if t.handNumber > 1 && t.autoMoveDealer {
		t.moveDealer(t.dealerPos + 1)
	}

	// Post blinds, each capped at the poster's stack.
	sb := t.seats[t.sbPos]
	bb := t.seats[t.bbPos]
	if t.smallBlind > sb.stackSize {
		sb.bet = sb.stackSize
		sb.stackSize = 0
	} else {
		sb.bet = t.smallBlind
		sb.stackSize -= t.smallBlind
	}
	if t.bigBlind > bb.stackSize {
		bb.bet = bb.stackSize
		bb.stackSize = 0
	} else {
		bb.bet = t.bigBlind
		bb.stackSize -= t.bigBlind
	}
	t.currentBet = t.bigBlind

	t.currentPos = t.nextOccupied(t.bbPos + 1)
	t.lastPos = t.bbPos

	t.deck = deck.New(t.rng)
	for _, p := range t.seats {
		if p != nil {
			p.holeCards = []deck.Card{t.deck.Pop(), t.deck.Pop()}
		}
	}

	t.log.Debug().
		Int("hand", t.handNumber).
		Int("dealer", t.dealerPos).
		Int("small_blind", t.sbPos).
		Int("big_blind", t.bbPos).
		Msg("dealt new hand")
	t.publish(HandStartEvent{
		HandNumber: t.handNumber,
		Players:    t.ActivePlayers(),
		SmallBlind: t.smallBlind,
		BigBlind:   t.bigBlind,
	})
	return nil
}

// nextAction advances the turn cursor past empty seats and players who
// cannot act. Closing the turn window ends the round; a lone active player
// ends the hand. Implemented as a loop bounded by the seat count.
func (t *Table) nextAction() {
	for i := 0; i <= len(t.seats); i++ {
		if len(t.ActivePlayers()) == 1 {
			t.showdown()
			return
		}
		if t.currentPos == t.lastPos {
			t.nextRound()
			return
		}

		t.currentPos = (t.currentPos + 1) % len(t.seats)
		actor := t.seats[t.currentPos]
		if actor == nil || !t.isActing(actor) ||
			(t.currentBet == 0 && len(t.ActingPlayers()) == 1) {
			continue
		}
		return
	}
	// No eligible seat inside one full lap: the round cannot continue.
	t.nextRound()
}

// gatherBets folds outstanding bets into the pot ledger at the close of a
// betting round, splitting side pots at each all-in threshold. A single
// uncalled bet is returned to its owner instead.
func (t *Table) gatherBets() {
	var betting []*Player
	for _, p := range t.seats {
		if p != nil && p.bet > 0 {
			betting = append(betting, p)
		}
	}

	if len(betting) <= 1 {
		for _, p := range betting {
			p.stackSize += p.bet
			p.bet = 0
		}
		return
	}

	allIn := func() []*Player {
		var players []*Player
		for _, p := range betting {
			if p.bet > 0 && p.stackSize == 0 {
				players = append(players, p)
			}
		}
		return players
	}

	for allInPlayers := allIn(); len(allInPlayers) > 0; allInPlayers = allIn() {
		lowest := allInPlayers[0].bet
		for _, p := range allInPlayers[1:] {
			if p.bet < lowest {
				lowest = p.bet
			}
		}

		pot := t.currentPot()
		for _, p := range betting {
			if p.bet == 0 {
				continue
			}
			if p.bet >= lowest {
				p.bet -= lowest
				pot.amount += lowest
				pot.addEligible(p)
				continue
			}
			// Folded short stacks below the all-in threshold.
			pot.amount += p.bet
			p.bet = 0
			pot.addEligible(p)
		}

		// Open a new pot for the next threshold; it stays as the pot
		// accepting chips in later rounds.
		t.pots = append(t.pots, &Pot{})
	}

	pot := t.currentPot()
	for _, p := range betting {
		if p.bet == 0 {
			continue
		}
		pot.amount += p.bet
		p.bet = 0
		pot.addEligible(p)
	}

	// Folded and departed players keep their chips in the pots but cannot
	// win them.
	for _, pot := range t.pots {
		pot.stripIneligible()
	}
}

// nextRound closes the current betting round and opens the next street, or
// runs the showdown after the river.
func (t *Table) nextRound() {
	switch t.round {
	case PreFlop:
		t.gatherBets()
		t.currentBet = 0
		t.lastRaise = 0
		t.round = Flop
		t.communityCards = append(t.communityCards, t.deck.PopN(3)...)
		t.resetPosition()
	case Flop:
		t.gatherBets()
		t.currentBet = 0
		t.lastRaise = 0
		t.round = Turn
		t.communityCards = append(t.communityCards, t.deck.Pop())
		t.resetPosition()
	case Turn:
		t.gatherBets()
		t.currentBet = 0
		t.lastRaise = 0
		t.round = River
		t.communityCards = append(t.communityCards, t.deck.Pop())
		t.resetPosition()
	case River:
		for _, p := range t.seats {
			if p != nil {
				p.showCards = !p.folded
			}
		}
		t.showdown()
	}
}

// resetPosition opens a street with the action on the first occupied seat
// after the dealer and the turn window closing on the dealer.
func (t *Table) resetPosition() {
	t.currentPos = t.nextOccupied(t.dealerPos + 1)
	t.lastPos = t.dealerPos

	t.log.Debug().Stringer("round", t.round).Msg("street dealt")
	t.publish(StreetChangeEvent{Round: t.round, CommunityCards: t.CommunityCards()})

	actor := t.CurrentActor()
	if actor == nil || !t.isActing(actor) || len(t.ActingPlayers()) <= 1 {
		t.nextAction()
	}
}

// showdown settles the hand: a final bet gather, card reveal when the pot is
// contested, and per-pot payout to the evaluator's winner sets.
func (t *Table) showdown() {
	t.round = roundNone
	t.currentPos = -1
	t.lastPos = -1

	t.gatherBets()

	active := t.ActivePlayers()
	if len(active) > 1 {
		for _, p := range active {
			p.showCards = true
		}
	}

	t.winners = t.findWinners(active)

	for _, pot := range t.pots {
		if len(pot.eligiblePlayers) == 0 {
			continue
		}
		pot.winners = t.findWinners(pot.eligiblePlayers)
		share := pot.amount / len(pot.winners)
		remainder := pot.amount % len(pot.winners)
		for i, w := range pot.winners {
			award := share
			if i == 0 {
				// Odd chip goes to the winner in the lowest seat.
				award += remainder
			}
			w.stackSize += award
		}
	}

	t.log.Debug().Int("hand", t.handNumber).Int("winners", len(t.winners)).Msg("hand settled")
	t.publish(HandEndEvent{
		HandNumber: t.handNumber,
		Winners:    t.Winners(),
		Pots:       t.Pots(),
	})
}

// findWinners asks the evaluator for the maximal-hand subset among the given
// players. An uncontested set needs no ranking.
func (t *Table) findWinners(players []*Player) []*Player {
	if len(players) == 0 {
		return nil
	}
	if len(players) == 1 {
		return []*Player{players[0]}
	}

	hands := make([]evaluator.Hand, len(players))
	for i, p := range players {
		cards := make([]deck.Card, 0, len(p.holeCards)+len(t.communityCards))
		cards = append(cards, p.holeCards...)
		cards = append(cards, t.communityCards...)
		hands[i] = t.eval.Rank(cards)
		hands[i].Owner = p.id
	}

	best := t.eval.Winners(hands)
	var winners []*Player
	for i, h := range hands {
		if h.Compare(best[0]) == 0 {
			winners = append(winners, players[i])
		}
	}
	return winners
}

func (t *Table) publish(event Event) {
	if t.bus != nil {
		t.bus.Publish(event)
	}
}
