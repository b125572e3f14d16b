package table

import "testing"

func TestGatherBetsSplitsSidePotsAtAllInThresholds(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t, 100, 5, 10)

	// Three players all-in for 100, 50 and 200.
	p1 := newPlayer("p1", 0)
	p1.bet = 100
	p2 := newPlayer("p2", 0)
	p2.bet = 50
	p3 := newPlayer("p3", 0)
	p3.bet = 200
	tbl.seats[0], tbl.seats[1], tbl.seats[2] = p1, p2, p3

	tbl.gatherBets()

	pots := tbl.Pots()
	if len(pots) != 4 {
		t.Fatalf("got %d pots, want 4 (three thresholds plus the open pot)", len(pots))
	}

	assertPot(t, pots[0], 150, []*Player{p1, p2, p3})
	assertPot(t, pots[1], 100, []*Player{p1, p3})
	assertPot(t, pots[2], 100, []*Player{p3})
	if pots[3].Amount() != 0 {
		t.Errorf("trailing pot amount = %d, want 0", pots[3].Amount())
	}

	for _, p := range []*Player{p1, p2, p3} {
		if p.bet != 0 {
			t.Errorf("player %s bet = %d after gather, want 0", p.id, p.bet)
		}
	}
}

func TestGatherBetsReturnsUncalledBet(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t, 100, 5, 10)

	p1 := newPlayer("p1", 80)
	p1.bet = 20
	p2 := newPlayer("p2", 100)
	p2.folded = true
	tbl.seats[0], tbl.seats[1] = p1, p2

	tbl.gatherBets()

	if p1.stackSize != 100 || p1.bet != 0 {
		t.Errorf("uncalled bettor stack/bet = %d/%d, want 100/0", p1.stackSize, p1.bet)
	}
	if tbl.CurrentPot().Amount() != 0 {
		t.Errorf("pot amount = %d, want 0", tbl.CurrentPot().Amount())
	}
}

func TestGatherBetsMergesMatchedBets(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t, 100, 5, 10)

	p1 := newPlayer("p1", 80)
	p1.bet = 20
	p2 := newPlayer("p2", 80)
	p2.bet = 20
	p3 := newPlayer("p3", 80)
	p3.bet = 20
	tbl.seats[0], tbl.seats[1], tbl.seats[2] = p1, p2, p3

	tbl.gatherBets()

	pots := tbl.Pots()
	if len(pots) != 1 {
		t.Fatalf("got %d pots, want 1 when nobody is all-in", len(pots))
	}
	assertPot(t, pots[0], 60, []*Player{p1, p2, p3})
}

func TestGatherBetsExcludesFoldedPlayers(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t, 100, 5, 10)

	p1 := newPlayer("p1", 80)
	p1.bet = 20
	p2 := newPlayer("p2", 80)
	p2.bet = 20
	p2.folded = true
	p3 := newPlayer("p3", 80)
	p3.bet = 20
	tbl.seats[0], tbl.seats[1], tbl.seats[2] = p1, p2, p3

	tbl.gatherBets()

	// The folded player's chips stay in the pot but they cannot win it.
	pots := tbl.Pots()
	if len(pots) != 1 {
		t.Fatalf("got %d pots, want 1", len(pots))
	}
	assertPot(t, pots[0], 60, []*Player{p1, p3})
}

func TestGatherBetsAccumulatesAcrossRounds(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t, 100, 5, 10)

	p1 := newPlayer("p1", 80)
	p1.bet = 20
	p2 := newPlayer("p2", 80)
	p2.bet = 20
	tbl.seats[0], tbl.seats[1] = p1, p2

	tbl.gatherBets()
	p1.bet = 30
	p2.bet = 30
	tbl.gatherBets()

	pots := tbl.Pots()
	if len(pots) != 1 {
		t.Fatalf("got %d pots, want 1", len(pots))
	}
	assertPot(t, pots[0], 100, []*Player{p1, p2})
}

func TestSidePotsAccessor(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t, 100, 5, 10)

	if tbl.SidePots() != nil {
		t.Error("SidePots() should be nil with at most one pot")
	}

	p1 := newPlayer("p1", 0)
	p1.bet = 50
	p2 := newPlayer("p2", 100)
	p2.bet = 80
	tbl.seats[0], tbl.seats[1] = p1, p2

	tbl.gatherBets()

	if got := len(tbl.SidePots()); got != 1 {
		t.Fatalf("SidePots() = %d pots, want 1", got)
	}
	if tbl.SidePots()[0].Amount() != 100 {
		t.Errorf("side pot amount = %d, want 100", tbl.SidePots()[0].Amount())
	}
	if tbl.CurrentPot().Amount() != 30 {
		t.Errorf("current pot amount = %d, want 30", tbl.CurrentPot().Amount())
	}
}

func assertPot(t *testing.T, pot *Pot, amount int, eligible []*Player) {
	t.Helper()
	if pot.Amount() != amount {
		t.Errorf("pot amount = %d, want %d", pot.Amount(), amount)
	}
	got := pot.EligiblePlayers()
	if len(got) != len(eligible) {
		t.Fatalf("pot has %d eligible players, want %d", len(got), len(eligible))
	}
	for i := range got {
		if got[i] != eligible[i] {
			t.Errorf("eligible[%d] = %s, want %s", i, got[i].id, eligible[i].id)
		}
	}
}
