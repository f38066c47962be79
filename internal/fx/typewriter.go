package fx

import (
	"time"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Typewriter types a phrase one character at a time, holds it, deletes it and
// moves on to the next phrase, forever.
type Typewriter struct {
	phrases  [][]rune
	phrase   int
	char     int
	deleting bool
	text     string

	elapsed time.Duration
	delay   time.Duration
}

func NewTypewriter(phrases []string) *Typewriter {
	t := &Typewriter{}
	for _, p := range phrases {
		t.phrases = append(t.phrases, []rune(p))
	}
	return t
}

// Text is the currently displayed portion of the phrase.
func (t *Typewriter) Text() string {
	return t.text
}

// Deleting reports whether the typewriter is currently erasing.
func (t *Typewriter) Deleting() bool {
	return t.deleting
}

// Advance runs every step whose delay has elapsed.
func (t *Typewriter) Advance(dt time.Duration) {
	if len(t.phrases) == 0 {
		return
	}
	t.elapsed += dt
	for t.elapsed >= t.delay {
		t.elapsed -= t.delay
		t.delay = t.step()
	}
}

func (t *Typewriter) step() time.Duration {
	current := t.phrases[t.phrase]

	var delay time.Duration
	if t.deleting {
		t.char--
		delay = config.DeleteDelay
	} else {
		t.char++
		delay = config.TypeDelay
	}
	t.char = max(0, min(t.char, len(current)))
	t.text = string(current[:t.char])

	switch {
	case !t.deleting && t.char == len(current):
		t.deleting = true
		delay = config.PhraseHold
	case t.deleting && t.char == 0:
		t.deleting = false
		t.phrase = (t.phrase + 1) % len(t.phrases)
		delay = config.NextPhrasePause
	}
	return delay
}
