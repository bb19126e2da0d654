// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package traverse

// Nesting is a nesting counter that restarts at 0 in every scope. Embed it in
// a handler and call Push/Pop from EnterScope/ExitScope.
type Nesting struct {
	levels []int
	max    int
}

func (n *Nesting) Push() {
	n.levels = append(n.levels, 0)
}

func (n *Nesting) Pop() {
	if len(n.levels) > 0 {
		n.levels = n.levels[:len(n.levels)-1]
	}
}

// Level is the current scope's nesting level.
func (n *Nesting) Level() int {
	if len(n.levels) == 0 {
		return 0
	}
	return n.levels[len(n.levels)-1]
}

func (n *Nesting) Inc() {
	if len(n.levels) == 0 {
		n.Push()
	}
	n.levels[len(n.levels)-1]++
	if lvl := n.levels[len(n.levels)-1]; lvl > n.max {
		n.max = lvl
	}
}

func (n *Nesting) Dec() {
	if len(n.levels) > 0 && n.levels[len(n.levels)-1] > 0 {
		n.levels[len(n.levels)-1]--
	}
}

// Max is the highest level reached in any scope.
func (n *Nesting) Max() int {
	return n.max
}
