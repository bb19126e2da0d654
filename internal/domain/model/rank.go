// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import "fmt"

// Rank is a grade from S (best) to F (worst). Lower values are better.
type Rank int

const (
	RankS Rank = iota
	RankA
	RankB
	RankC
	RankD
	RankF
)

var rankLetters = [...]string{"S", "A", "B", "C", "D", "F"}

// AllRanks returns every rank from best to worst.
func AllRanks() []Rank {
	return []Rank{RankS, RankA, RankB, RankC, RankD, RankF}
}

func (r Rank) String() string {
	if r < RankS || r > RankF {
		return "?"
	}
	return rankLetters[r]
}

// Better reports whether r is a strictly better grade than other.
func (r Rank) Better(other Rank) bool {
	return r < other
}

func (r Rank) MarshalText() ([]byte, error) {
	if r < RankS || r > RankF {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	for i, l := range rankLetters {
		if l == string(text) {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", text)
}
