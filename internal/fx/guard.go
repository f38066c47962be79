package fx

import (
	"fmt"
	"log"
	"runtime/debug"
)

// Guard isolates independent behaviors from each other. A behavior that panics
// is logged once and skipped from then on; the others keep running.
type Guard struct {
	failed map[string]error
}

func NewGuard() *Guard {
	return &Guard{failed: map[string]error{}}
}

// Run calls fn unless name has already failed. It reports whether fn completed.
func (g *Guard) Run(name string, fn func()) (ok bool) {
	if _, dead := g.failed[name]; dead {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: %v", name, r)
			g.failed[name] = err
			log.Printf("[FX] %s disabled after panic: %v\n%s", name, r, debug.Stack())
			ok = false
		}
	}()
	fn()
	return true
}

// Err returns the failure that disabled name, if any.
func (g *Guard) Err(name string) error {
	return g.failed[name]
}

func (g *Guard) Failed() int {
	return len(g.failed)
}
