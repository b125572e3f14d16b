package table

// Pot is an amount of chips plus the set of players eligible to win it.
// The last pot in the table's ledger is the one still accepting chips;
// earlier pots correspond to lower all-in thresholds.
type Pot struct {
	amount          int
	eligiblePlayers []*Player
	winners         []*Player
}

// Amount returns the chips in the pot.
func (p *Pot) Amount() int {
	return p.amount
}

// EligiblePlayers returns the players who can win this pot.
func (p *Pot) EligiblePlayers() []*Player {
	players := make([]*Player, len(p.eligiblePlayers))
	copy(players, p.eligiblePlayers)
	return players
}

// Winners returns the players this pot was awarded to, set at showdown and
// cleared on cleanup. Nil before showdown.
func (p *Pot) Winners() []*Player {
	if p.winners == nil {
		return nil
	}
	winners := make([]*Player, len(p.winners))
	copy(winners, p.winners)
	return winners
}

func (p *Pot) addEligible(player *Player) {
	for _, e := range p.eligiblePlayers {
		if e == player {
			return
		}
	}
	p.eligiblePlayers = append(p.eligiblePlayers, player)
}

func (p *Pot) stripIneligible() {
	kept := p.eligiblePlayers[:0]
	for _, e := range p.eligiblePlayers {
		if !e.folded && !e.left {
			kept = append(kept, e)
		}
	}
	p.eligiblePlayers = kept
}
