package bridge

import (
	"fmt"
	"strings"
)

// SerializeDeal renders a deal as the fixed ASCII grammar: per-player hands
// (N, E, S, W order) separated by spaces, suits within a hand from spades
// down to clubs separated by periods, ranks as "23456789TJQKA"; then two
// trailing characters giving trump strain and declarer.
var dealSuitOrder = [4]Suit{Spades, Hearts, Diamonds, Clubs}

func SerializeDeal(d Deal) string {
	var b strings.Builder
	for pl := North; pl <= West; pl++ {
		for i, s := range dealSuitOrder {
			if i > 0 {
				b.WriteByte('.')
			}
			for r := Rank(0); r <= 12; r++ {
				if d.Holder[NewCard(s, r)] == pl {
					b.WriteString(r.String())
				}
			}
		}
		b.WriteByte(' ')
	}
	b.WriteString(d.Trumps.String())
	b.WriteString(d.Declarer.String())
	return b.String()
}

// DeserializeDeal parses the grammar SerializeDeal produces.
func DeserializeDeal(board int, s string) (Deal, error) {
	colon := strings.IndexByte(s, ':')
	body := s
	if colon >= 0 {
		body = s[:colon]
	}
	fields := strings.Fields(body)
	if len(fields) != 5 {
		return Deal{}, fmt.Errorf("%w: deal %q: expected 4 hands + trump/declarer, got %d fields", ErrMalformedInput, s, len(fields))
	}
	tail := fields[4]
	if len(tail) != 2 {
		return Deal{}, fmt.Errorf("%w: deal %q: trailing trump/declarer field %q", ErrMalformedInput, s, tail)
	}
	trumps, err := ParseSuit(tail[0])
	if err != nil {
		return Deal{}, err
	}
	declarer, err := ParsePlayer(tail[1])
	if err != nil {
		return Deal{}, err
	}

	d := NewDeal(board, declarer, trumps)
	for i, pl := 0, North; i < 4; i, pl = i+1, pl+1 {
		suitGroups := strings.Split(fields[i], ".")
		if len(suitGroups) != 4 {
			return Deal{}, fmt.Errorf("%w: deal %q: hand %s has %d suit groups, want 4", ErrMalformedInput, s, pl, len(suitGroups))
		}
		for gi, group := range suitGroups {
			su := dealSuitOrder[gi]
			for j := 0; j < len(group); j++ {
				r, err := ParseRank(group[j])
				if err != nil {
					return Deal{}, err
				}
				d.Holder[NewCard(su, r)] = pl
			}
		}
	}
	if err := d.Validate(); err != nil {
		return Deal{}, err
	}
	return d, nil
}

// SerializePlay renders a play record as a flat string of suit/rank pairs.
func SerializePlay(played []Card) string {
	var b strings.Builder
	for _, c := range played {
		b.WriteString(c.Suit().String())
		b.WriteString(c.Rank().String())
	}
	return b.String()
}

// DeserializePlay parses the grammar SerializePlay produces.
func DeserializePlay(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: play %q: odd length", ErrMalformedInput, s)
	}
	played := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		suit, err := ParseSuit(s[i])
		if err != nil {
			return nil, err
		}
		if suit == NoTrump {
			return nil, fmt.Errorf("%w: play %q: NoTrump is not a playable suit", ErrMalformedInput, s)
		}
		rank, err := ParseRank(s[i+1])
		if err != nil {
			return nil, err
		}
		played = append(played, NewCard(suit, rank))
	}
	return played, nil
}
