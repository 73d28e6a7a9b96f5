package main

import (
	"fmt"
	"strings"

	"pinochle/pinochle"

	"github.com/pterm/pterm"
)

// tableView narrates the public side of a round for players at the
// terminal.
type tableView struct{}

func (tableView) OnEvent(e pinochle.Event) {
	switch ev := e.(type) {
	case pinochle.RoundStarted:
		pterm.DefaultSection.Printfln("Round %d", ev.Round)
	case pinochle.BidPlaced:
		if ev.Bid == 0 {
			pterm.Info.Printfln("%s passes", ev.Player)
		} else {
			pterm.Info.Printfln("%s bids %d", ev.Player, ev.Bid)
		}
	case pinochle.TrumpCalled:
		pterm.Info.Printfln("%s names %s trump at %d", ev.Player, ev.Trump, ev.MeetBid)
	case pinochle.MeldScored:
		if ev.Score > 0 {
			pterm.Info.Printfln("%s melds %d", ev.Player, ev.Score)
		}
	case pinochle.TrickWon:
		cards := make([]string, 0, len(ev.Cards))
		for _, c := range ev.Cards {
			cards = append(cards, c.Colored())
		}
		pterm.Printfln("%s takes %s (%d)", ev.Player, strings.Join(cards, " "), ev.Points)
	case pinochle.RoundSettled:
		data := pterm.TableData{{"Team", "Bid", "Meld", "Tricks", "Round", "Delta", "Total"}}
		for _, t := range ev.Result.Teams {
			data = append(data, []string{
				fmt.Sprint(t.Team), fmt.Sprint(t.Bid), fmt.Sprint(t.Meld), fmt.Sprint(t.TrickPoints),
				fmt.Sprint(t.RoundScore), fmt.Sprint(t.Delta), fmt.Sprint(t.Total),
			})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	case pinochle.GameOver:
		pterm.Success.Printfln("Team %d wins after %d rounds", ev.Result.Winner, ev.Result.Rounds)
	}
}
