package table

import "fmt"

// LegalActions returns the actions the given player may take right now.
// Folding is always legal; the rest depend on the current bet, the player's
// committed bet and their raise rights.
func (t *Table) LegalActions(p *Player) []Action {
	var actions []Action
	if t.currentBet == 0 {
		actions = append(actions, Check, Bet)
	} else {
		if p.bet == t.currentBet {
			actions = append(actions, Check)
			if p.stackSize > t.currentBet && len(t.ActingPlayers()) > 0 {
				actions = append(actions, Raise)
			}
		}
		if p.bet < t.currentBet {
			actions = append(actions, Call)
			// A player who already put in the minimum re-raise cannot
			// re-raise again against an equal-or-smaller raise.
			if p.stackSize > t.currentBet && len(t.ActingPlayers()) > 0 &&
				(t.lastRaise == 0 || p.raise == 0 || t.lastRaise >= p.raise) {
				actions = append(actions, Raise)
			}
		}
	}
	return append(actions, Fold)
}

// BetAction opens the betting with the given amount. Only legal when no bet
// has been made this round; the amount must be at least the big blind and
// within the player's stack.
func (t *Table) BetAction(p *Player, amount int) error {
	if err := t.requireTurn(p); err != nil {
		return err
	}
	if !hasAction(t.LegalActions(p), Bet) {
		return fmt.Errorf("%w: bet", ErrIllegalAction)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if amount < t.bigBlind {
		return fmt.Errorf("%w: a bet must be at least the big blind (%d)", ErrBelowMinimum, t.bigBlind)
	}
	if amount > p.stackSize {
		return fmt.Errorf("%w: cannot bet more than the %d brought to the table", ErrExceedsStack, p.stackSize)
	}
	return t.RaiseAction(p, amount)
}

// CallAction matches the current bet. A player who cannot cover the call
// goes all-in for their remaining stack instead.
func (t *Table) CallAction(p *Player) error {
	if err := t.requireTurn(p); err != nil {
		return err
	}
	if !hasAction(t.LegalActions(p), Call) {
		return fmt.Errorf("%w: call", ErrIllegalAction)
	}

	callAmount := t.currentBet - p.bet
	if callAmount > p.stackSize {
		callAmount = p.stackSize
		p.bet += p.stackSize
		p.stackSize = 0
	} else {
		// The caller is no longer the last raiser.
		p.raise = 0
		p.stackSize -= callAmount
		p.bet += callAmount
	}

	t.publish(PlayerActionEvent{Player: p, Action: Call, Amount: callAmount, Round: t.round})
	t.nextAction()
	return nil
}

// RaiseAction commits amount additional chips this action, raising the
// current bet to the player's new total (or opening the betting when no bet
// exists). A raise below the minimum is only accepted as an all-in, in
// which case the bet level rises but raising rights are not reopened.
func (t *Table) RaiseAction(p *Player, amount int) error {
	if err := t.requireTurn(p); err != nil {
		return err
	}
	legalActions := t.LegalActions(p)
	if !hasAction(legalActions, Raise) && !hasAction(legalActions, Bet) {
		return fmt.Errorf("%w: raise", ErrIllegalAction)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if amount > p.stackSize {
		return fmt.Errorf("%w: cannot bet more than the %d brought to the table", ErrExceedsStack, p.stackSize)
	}

	currentBet := t.currentBet
	minRaise := t.lastRaise
	if minRaise == 0 {
		minRaise = t.bigBlind
	}
	raiseDelta := amount
	if currentBet > 0 {
		raiseDelta = amount - currentBet
	}

	action := Raise
	if currentBet == 0 {
		action = Bet
	}

	switch {
	case raiseDelta < minRaise && amount < p.stackSize:
		if currentBet > 0 {
			return fmt.Errorf("%w: must raise by at least %d, making the bet %d", ErrBelowMinimum, minRaise, minRaise+currentBet)
		}
		return fmt.Errorf("%w: must bet at least %d", ErrBelowMinimum, minRaise)

	case raiseDelta < minRaise:
		// Short all-in raise: the bet level rises but lastRaise is left
		// alone, so players who already matched the prior full bet do not
		// regain raising rights at the new level.
		p.bet += p.stackSize
		p.stackSize = 0
		t.currentBet = p.bet

	default:
		p.stackSize -= amount
		p.bet += amount
		t.currentBet = p.bet
		if currentBet > 0 {
			p.raise = amount - currentBet
			t.lastRaise = amount - currentBet
		}
		// Rewind the turn-closing boundary to the seat behind the raiser,
		// skipping backward over seats unable to act, so everyone who has
		// not matched the new bet gets another turn. Bounded by the seat
		// count; a full lap means nobody else can act.
		t.lastPos = t.wrapSeat(t.currentPos - 1)
		for i := 0; i < len(t.seats); i++ {
			last := t.playerAt(t.lastPos)
			if last != nil && t.isActing(last) {
				break
			}
			t.lastPos = t.wrapSeat(t.lastPos - 1)
		}
	}

	t.publish(PlayerActionEvent{Player: p, Action: action, Amount: amount, Round: t.round})
	t.nextAction()
	return nil
}

// CheckAction passes the action without committing chips.
func (t *Table) CheckAction(p *Player) error {
	if err := t.requireTurn(p); err != nil {
		return err
	}
	if !hasAction(t.LegalActions(p), Check) {
		return fmt.Errorf("%w: check", ErrIllegalAction)
	}
	t.publish(PlayerActionEvent{Player: p, Action: Check, Round: t.round})
	t.nextAction()
	return nil
}

// FoldAction folds the player's hand.
func (t *Table) FoldAction(p *Player) error {
	if err := t.requireTurn(p); err != nil {
		return err
	}
	if !hasAction(t.LegalActions(p), Fold) {
		return fmt.Errorf("%w: fold", ErrIllegalAction)
	}
	p.folded = true
	t.publish(PlayerActionEvent{Player: p, Action: Fold, Round: t.round})
	t.nextAction()
	return nil
}

func (t *Table) requireTurn(p *Player) error {
	if p == nil || t.CurrentActor() != p {
		return ErrOutOfTurn
	}
	return nil
}

func (t *Table) wrapSeat(pos int) int {
	n := len(t.seats)
	return ((pos % n) + n) % n
}

func hasAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
