package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	typeInterval = 90 * time.Millisecond
	// holdTicks is how long a fully typed role stays before it is erased.
	holdTicks = 15
)

type typewriterTickMsg struct {
	id int
}

// typewriter cycles through roles one rune at a time, erasing each before
// typing the next.
type typewriter struct {
	id       int
	roles    [][]rune
	index    int
	typed    int
	deleting bool
	hold     int
}

func newTypewriter(id int, roles []string) typewriter {
	tw := typewriter{id: id}
	for _, role := range roles {
		if role != "" {
			tw.roles = append(tw.roles, []rune(role))
		}
	}
	return tw
}

// Text returns the currently visible portion of the current role.
func (t typewriter) Text() string {
	if len(t.roles) == 0 {
		return ""
	}
	return string(t.roles[t.index][:t.typed])
}

func (t typewriter) tick() tea.Cmd {
	if len(t.roles) == 0 {
		return nil
	}
	id := t.id
	return tea.Tick(typeInterval, func(time.Time) tea.Msg {
		return typewriterTickMsg{id: id}
	})
}

// step advances one tick.
func (t typewriter) step() typewriter {
	if len(t.roles) == 0 {
		return t
	}
	current := t.roles[t.index]
	switch {
	case t.hold > 0:
		t.hold--
	case !t.deleting && t.typed < len(current):
		t.typed++
		if t.typed == len(current) {
			t.hold = holdTicks
			t.deleting = true
		}
	case t.deleting && t.typed > 0:
		t.typed--
	default:
		t.deleting = false
		t.index = (t.index + 1) % len(t.roles)
	}
	return t
}
