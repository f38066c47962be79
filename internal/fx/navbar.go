package fx

import "github.com/iburimskiy/portfolio-backdrop/internal/config"

// ScrollState is what the navbar and back-to-top button show for a scroll offset.
type ScrollState struct {
	Scrolled  bool
	BackToTop bool
}

func ScrollStateAt(scrollY float64) ScrollState {
	return ScrollState{
		Scrolled:  scrollY > config.NavbarScrolledAt,
		BackToTop: scrollY > config.BackToTopAt,
	}
}
