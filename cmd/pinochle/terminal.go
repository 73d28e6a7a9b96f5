package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pinochle/card"
	"pinochle/pinochle"

	"github.com/pterm/pterm"
)

// terminal reads human decisions line by line and prompts with pterm.
type terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func newTerminal(r io.Reader, w io.Writer) *terminal {
	return &terminal{in: bufio.NewScanner(r), out: w}
}

func (t *terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

func (t *terminal) showHand(name string, hand card.Hand, legal []int) {
	allowed := make(map[int]bool, len(legal))
	for _, i := range legal {
		allowed[i] = true
	}
	parts := make([]string, 0, hand.Len())
	for i, c := range hand {
		label := fmt.Sprintf("%d:%s", i+1, c.Colored())
		if legal != nil && !allowed[i] {
			label = pterm.Gray(fmt.Sprintf("%d:%s", i+1, c.String()))
		}
		parts = append(parts, label)
	}
	fmt.Fprintf(t.out, "%s %s\n", pterm.Cyan(name), strings.Join(parts, " "))
}

func (t *terminal) ReadBid(view pinochle.BidView) (int, error) {
	t.showHand(view.Name, view.Hand, nil)
	fmt.Fprintf(t.out, "meld %d, bids so far %v\n", view.Meld, view.Bids)
	line, err := t.readLine("Bid (0 passes): ")
	if err != nil {
		return 0, err
	}
	bid, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", line)
	}
	return bid, nil
}

func (t *terminal) ReadTrump(view pinochle.TrumpView) (card.Suit, error) {
	t.showHand(view.Name, view.Hand, nil)
	fmt.Fprintf(t.out, "you won the bid at %d\n", view.MeetBid)
	line, err := t.readLine("Trump (H/S/C/D): ")
	if err != nil {
		return 0, err
	}
	return card.ParseSuit(line)
}

func (t *terminal) ReadCard(view pinochle.PlayView, legal []int) (int, error) {
	if len(view.Trick) > 0 {
		played := make([]string, 0, len(view.Trick))
		for _, c := range view.Trick {
			played = append(played, c.Colored())
		}
		fmt.Fprintf(t.out, "trick %d, trump %s: %s\n", view.TrickNumber, view.Trump, strings.Join(played, " "))
	} else {
		fmt.Fprintf(t.out, "trick %d, trump %s: your lead\n", view.TrickNumber, view.Trump)
	}
	t.showHand(view.Name, view.Hand, legal)
	line, err := t.readLine("Card number: ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a card number", line)
	}
	return n - 1, nil
}

func (t *terminal) Reject(reason error) {
	pterm.Warning.Println(reason.Error() + ", try again")
}
