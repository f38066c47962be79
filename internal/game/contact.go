package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

// Prompter collects the contact form and confirms it was sent.
type Prompter interface {
	// Message asks for the visitor's name and message. ok is false on cancel.
	Message() (name, message string, ok bool, err error)
	Notify(text string) error
}

// zenityPrompter uses native dialogs.
type zenityPrompter struct{}

func NewPrompter() Prompter {
	return zenityPrompter{}
}

func (zenityPrompter) Message() (string, string, bool, error) {
	name, err := zenity.Entry("Your name",
		zenity.Title("Contact"),
		zenity.OKLabel("Next"),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", "", false, nil
		}
		return "", "", false, err
	}

	msg, err := zenity.Entry("Your message",
		zenity.Title("Contact"),
		zenity.OKLabel("Send"),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", "", false, nil
		}
		return "", "", false, err
	}
	return name, msg, true, nil
}

func (zenityPrompter) Notify(text string) error {
	return zenity.Notify(text, zenity.Title("Portfolio"), zenity.InfoIcon)
}

// submitContact fills the form from the prompter and submits it. Cancelling
// the dialog leaves the form untouched.
func (g *Game) submitContact() error {
	if g.prompter == nil {
		return nil
	}
	name, msg, ok, err := g.prompter.Message()
	if err != nil || !ok {
		return err
	}

	g.form.Name, g.form.Message = name, msg
	if !g.form.Submit() {
		return nil
	}
	log.Printf("[CONTACT] message %d submitted", g.form.Sent)

	if g.player != nil {
		g.player.Chime()
	}
	if err := g.prompter.Notify(g.form.Toast.Message); err != nil {
		// the in-window toast already confirms the submit
		log.Printf("[CONTACT] notify: %v", err)
	}
	return nil
}
