package fx

import "fmt"

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	}
	return Dark, fmt.Errorf("unknown theme %q", s)
}

// Toggle switches to the other theme. Anything that is not light becomes light.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Label is the toggle button caption, naming the theme a click switches to.
func (t Theme) Label() string {
	if t == Light {
		return "☾ Dark"
	}
	return "☀ Light"
}
