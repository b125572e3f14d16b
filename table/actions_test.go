package table

import (
	"errors"
	"testing"
)

// dealThreeHanded seats a, b and c with the given stacks and deals; the
// dealer is seat 0 (a), blinds on b and c, with a first to act.
func dealThreeHanded(t *testing.T, buyIn, smallBlind, bigBlind int, stacks [3]int) (*Table, *Player, *Player, *Player) {
	t.Helper()
	tbl := newTestTable(t, buyIn, smallBlind, bigBlind)
	a := sitDown(t, tbl, "a", stacks[0])
	b := sitDown(t, tbl, "b", stacks[1])
	c := sitDown(t, tbl, "c", stacks[2])
	if err := tbl.DealCards(); err != nil {
		t.Fatalf("DealCards() error = %v", err)
	}
	return tbl, a, b, c
}

func TestActionOutOfTurn(t *testing.T) {
	t.Parallel()
	tbl, _, b, _ := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if err := tbl.CallAction(b); !errors.Is(err, ErrOutOfTurn) {
		t.Errorf("CallAction() out of turn error = %v, want %v", err, ErrOutOfTurn)
	}
	if err := tbl.FoldAction(nil); !errors.Is(err, ErrOutOfTurn) {
		t.Errorf("FoldAction(nil) error = %v, want %v", err, ErrOutOfTurn)
	}
}

func TestLegalActionsFacingBet(t *testing.T) {
	t.Parallel()
	tbl, a, _, c := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if got := tbl.LegalActions(a); !actionsEqual(got, []Action{Call, Raise, Fold}) {
		t.Errorf("LegalActions(caller) = %v, want [call raise fold]", got)
	}

	// The big blind already matches the bet and holds the check option.
	if got := tbl.LegalActions(c); !actionsEqual(got, []Action{Check, Raise, Fold}) {
		t.Errorf("LegalActions(big blind) = %v, want [check raise fold]", got)
	}
}

func TestLegalActionsNoBet(t *testing.T) {
	t.Parallel()
	tbl, a, b, c := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})
	callTo := func(p *Player) {
		t.Helper()
		if err := tbl.CallAction(p); err != nil {
			t.Fatalf("CallAction(%s) error = %v", p.ID(), err)
		}
	}
	callTo(a)
	callTo(b)
	if err := tbl.CheckAction(c); err != nil {
		t.Fatalf("CheckAction(c) error = %v", err)
	}

	if round, _ := tbl.CurrentRound(); round != Flop {
		t.Fatalf("round = %v, want flop", round)
	}
	if got := tbl.LegalActions(tbl.CurrentActor()); !actionsEqual(got, []Action{Check, Bet, Fold}) {
		t.Errorf("LegalActions() = %v, want [check bet fold]", got)
	}
}

func TestBetErrors(t *testing.T) {
	t.Parallel()
	tbl, a, b, c := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	// Betting is illegal while a bet is outstanding.
	if err := tbl.BetAction(a, 20); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("BetAction() facing a bet error = %v, want %v", err, ErrIllegalAction)
	}

	if err := tbl.CallAction(a); err != nil {
		t.Fatalf("CallAction(a) error = %v", err)
	}
	if err := tbl.CallAction(b); err != nil {
		t.Fatalf("CallAction(b) error = %v", err)
	}
	if err := tbl.CheckAction(c); err != nil {
		t.Fatalf("CheckAction(c) error = %v", err)
	}

	actor := tbl.CurrentActor()
	if err := tbl.BetAction(actor, -1); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("BetAction(-1) error = %v, want %v", err, ErrInvalidAmount)
	}
	if err := tbl.BetAction(actor, 5); !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("BetAction(5) error = %v, want %v", err, ErrBelowMinimum)
	}
	if err := tbl.BetAction(actor, actor.StackSize()+1); !errors.Is(err, ErrExceedsStack) {
		t.Errorf("BetAction() over stack error = %v, want %v", err, ErrExceedsStack)
	}
}

func TestCheckFacingBetIllegal(t *testing.T) {
	t.Parallel()
	tbl, a, _, _ := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if err := tbl.CheckAction(a); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("CheckAction() facing a bet error = %v, want %v", err, ErrIllegalAction)
	}
}

func TestCallMatchesCurrentBet(t *testing.T) {
	t.Parallel()
	tbl, a, _, _ := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if err := tbl.CallAction(a); err != nil {
		t.Fatalf("CallAction() error = %v", err)
	}
	if a.Bet() != 10 || a.StackSize() != 90 {
		t.Errorf("caller bet/stack = %d/%d, want 10/90", a.Bet(), a.StackSize())
	}
}

func TestCallShortStackGoesAllIn(t *testing.T) {
	t.Parallel()
	tbl, a, b, _ := dealThreeHanded(t, 50, 5, 10, [3]int{200, 50, 200})

	// a raises to 100; b can only cover 45 more.
	if err := tbl.RaiseAction(a, 100); err != nil {
		t.Fatalf("RaiseAction() error = %v", err)
	}
	if err := tbl.CallAction(b); err != nil {
		t.Fatalf("CallAction() error = %v", err)
	}

	if b.StackSize() != 0 {
		t.Errorf("short caller stack = %d, want 0", b.StackSize())
	}
	if b.Bet() != 50 {
		t.Errorf("short caller bet = %d, want 50", b.Bet())
	}
}

func TestRaiseReopensAction(t *testing.T) {
	t.Parallel()
	tbl, a, b, c := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if err := tbl.RaiseAction(a, 30); err != nil {
		t.Fatalf("RaiseAction() error = %v", err)
	}
	if bet, _ := tbl.CurrentBet(); bet != 30 {
		t.Errorf("CurrentBet() = %d, want 30", bet)
	}
	if raise, _ := tbl.LastRaise(); raise != 20 {
		t.Errorf("LastRaise() = %d, want 20", raise)
	}
	if a.Raise() != 20 {
		t.Errorf("raiser marker = %d, want 20", a.Raise())
	}

	// Both blinds get a turn against the raise before the round closes.
	if tbl.CurrentActor() != b {
		t.Fatalf("action should be on the small blind")
	}
	if err := tbl.CallAction(b); err != nil {
		t.Fatalf("CallAction(b) error = %v", err)
	}
	if tbl.CurrentActor() != c {
		t.Fatalf("action should be on the big blind")
	}
	if err := tbl.CallAction(c); err != nil {
		t.Fatalf("CallAction(c) error = %v", err)
	}

	if round, _ := tbl.CurrentRound(); round != Flop {
		t.Errorf("round = %v, want flop after the raise is called around", round)
	}
}

func TestRaiseBelowMinimum(t *testing.T) {
	t.Parallel()
	tbl, a, b, _ := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if err := tbl.RaiseAction(a, 30); err != nil {
		t.Fatalf("RaiseAction() error = %v", err)
	}

	// The last raise was 20, so the bet must reach at least 50.
	if err := tbl.RaiseAction(b, 40); !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("RaiseAction() below minimum error = %v, want %v", err, ErrBelowMinimum)
	}
}

func TestShortAllInRaiseDoesNotReopenBetting(t *testing.T) {
	t.Parallel()
	tbl, a, b, c := dealThreeHanded(t, 40, 5, 10, [3]int{100, 45, 100})

	if err := tbl.RaiseAction(a, 30); err != nil {
		t.Fatalf("RaiseAction(a) error = %v", err)
	}

	// b shoves 40 on top of the 5 blind: the bet rises to 45 but the raise
	// is short of the minimum 20, so the last full raise stands.
	if err := tbl.RaiseAction(b, 40); err != nil {
		t.Fatalf("RaiseAction(b) all-in error = %v", err)
	}
	if b.StackSize() != 0 || b.Bet() != 45 {
		t.Errorf("all-in bet/stack = %d/%d, want 45/0", b.Bet(), b.StackSize())
	}
	if bet, _ := tbl.CurrentBet(); bet != 45 {
		t.Errorf("CurrentBet() = %d, want 45", bet)
	}
	if raise, _ := tbl.LastRaise(); raise != 20 {
		t.Errorf("LastRaise() = %d, want 20 after a short all-in", raise)
	}

	// c calls and the round closes; the original raiser does not act again.
	if err := tbl.CallAction(c); err != nil {
		t.Fatalf("CallAction(c) error = %v", err)
	}
	if round, _ := tbl.CurrentRound(); round != Flop {
		t.Errorf("round = %v, want flop", round)
	}
}

func TestFoldRemovesPlayerFromHand(t *testing.T) {
	t.Parallel()
	tbl, a, b, _ := dealThreeHanded(t, 100, 5, 10, [3]int{100, 100, 100})

	if err := tbl.FoldAction(a); err != nil {
		t.Fatalf("FoldAction() error = %v", err)
	}
	if !a.Folded() {
		t.Error("player should be folded")
	}
	if got := len(tbl.ActivePlayers()); got != 2 {
		t.Errorf("ActivePlayers() = %d, want 2", got)
	}
	if tbl.CurrentActor() != b {
		t.Error("action should pass to the next player")
	}
}

func TestTurnSkipsFoldedAndAllInPlayers(t *testing.T) {
	t.Parallel()
	tbl, a, b, c := dealThreeHanded(t, 30, 5, 10, [3]int{100, 30, 100})

	// a raises enough to cover b's stack; b calls all-in, c calls.
	if err := tbl.RaiseAction(a, 40); err != nil {
		t.Fatalf("RaiseAction(a) error = %v", err)
	}
	if err := tbl.CallAction(b); err != nil {
		t.Fatalf("CallAction(b) error = %v", err)
	}
	if b.StackSize() != 0 {
		t.Fatalf("b should be all-in")
	}
	if err := tbl.CallAction(c); err != nil {
		t.Fatalf("CallAction(c) error = %v", err)
	}

	// On the flop the all-in player is skipped; action opens on c.
	if round, _ := tbl.CurrentRound(); round != Flop {
		t.Fatalf("round = %v, want flop", round)
	}
	if tbl.CurrentActor() != c {
		t.Errorf("flop action should skip the all-in small blind")
	}
}

func actionsEqual(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
