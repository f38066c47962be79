package fx

import (
	"strings"
	"time"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Toast is a transient confirmation message.
type Toast struct {
	Message   string
	remaining time.Duration
}

func (t *Toast) Show(msg string) {
	t.Message = msg
	t.remaining = config.ToastDuration
}

func (t *Toast) Advance(dt time.Duration) {
	t.remaining = max(0, t.remaining-dt)
}

func (t *Toast) Visible() bool {
	return t.remaining > 0
}

// Remaining is the fraction of display time left, in [0, 1].
func (t *Toast) Remaining() float64 {
	return float64(t.remaining) / float64(config.ToastDuration)
}

// ContactForm holds the visitor's draft message. Submitting never sends it
// anywhere: it shows a toast and resets the form.
type ContactForm struct {
	Name    string
	Message string
	Toast   Toast
	Sent    int
}

// Submit reports whether the form had anything to send.
func (f *ContactForm) Submit() bool {
	if strings.TrimSpace(f.Message) == "" {
		return false
	}
	f.Sent++
	f.Toast.Show("Message sent! I'll get back to you soon.")
	f.Reset()
	return true
}

func (f *ContactForm) Reset() {
	f.Name = ""
	f.Message = ""
}
