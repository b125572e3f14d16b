package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chevcast/poker-engine/deck"
	"github.com/chevcast/poker-engine/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 1).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111111")).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			Bold(true)

	hiddenCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2244AA")).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	actorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

func renderCard(card deck.Card) string {
	if card.IsRed() {
		return redCardStyle.Render(card.String())
	}
	return blackCardStyle.Render(card.String())
}

func renderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return labelStyle.Render("(none)")
	}
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = renderCard(card)
	}
	return strings.Join(rendered, " ")
}

func renderHiddenCards(n int) string {
	rendered := make([]string, n)
	for i := range rendered {
		rendered[i] = hiddenCardStyle.Render("??")
	}
	return strings.Join(rendered, " ")
}

// renderTable prints the table state from the given player's point of view:
// their own cards face up, everyone else's hidden until showdown.
func renderTable(tbl *table.Table, viewer *table.Player) string {
	var b strings.Builder

	round := "idle"
	if r, ok := tbl.CurrentRound(); ok {
		round = r.String()
	}
	fmt.Fprintf(&b, "%s  hand #%d\n", labelStyle.Render(round), tbl.HandNumber())
	fmt.Fprintf(&b, "board: %s\n", renderCards(tbl.CommunityCards()))

	potTotal := 0
	for _, pot := range tbl.Pots() {
		potTotal += pot.Amount()
	}
	for _, p := range tbl.Seats() {
		if p != nil {
			potTotal += p.Bet()
		}
	}
	fmt.Fprintf(&b, "pot: %d\n", potTotal)

	actor := tbl.CurrentActor()
	for seat, p := range tbl.Seats() {
		if p == nil {
			continue
		}
		cards := renderHiddenCards(len(p.HoleCards()))
		if p == viewer || p.ShowCards() {
			cards = renderCards(p.HoleCards())
		}
		line := fmt.Sprintf("seat %d  %-16s stack %5d  bet %4d  %s", seat, p.ID(), p.StackSize(), p.Bet(), cards)
		if p.Folded() {
			line += labelStyle.Render("  folded")
		}
		if p == actor {
			line = actorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderWinners(tbl *table.Table) string {
	var b strings.Builder
	for _, pot := range tbl.Pots() {
		winners := pot.Winners()
		if len(winners) == 0 || pot.Amount() == 0 {
			continue
		}
		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = w.ID()
		}
		fmt.Fprintf(&b, "pot of %d goes to %s\n", pot.Amount(), strings.Join(names, ", "))
	}
	return b.String()
}
