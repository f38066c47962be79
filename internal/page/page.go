package page

import "fmt"

const (
	NavbarHeight  = 64
	SectionGap    = 120
	CardHeight    = 220
	CardGap       = 24
	SideMargin    = 48
	SkillRow      = 44
	ContactHeight = 260
	ButtonWidth   = 160
	ButtonHeight  = 40
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

type Kind int

const (
	KindHeading Kind = iota
	KindCard
	KindSkills
	KindContact
)

type Skill struct {
	Name      string
	DataWidth float64
}

// Element is a block of the page, positioned in page coordinates.
type Element struct {
	ID     string
	Kind   Kind
	Rect   Rect
	Title  string
	Body   string
	Hover  bool // the custom cursor grows over it
	Hidden bool // starts hidden, revealed on scroll
	Skills []Skill
}

type Project struct {
	Title string
	Body  string
}

var (
	Projects = []Project{
		{"Neon Dashboard", "Realtime analytics UI"},
		{"Orbit", "3D product configurator"},
		{"Pulse", "Audio reactive visuals"},
		{"Atlas", "Map based travel planner"},
		{"Cipher", "End-to-end encrypted chat"},
		{"Flux", "Design system and tokens"},
	}
	Skills = []Skill{
		{"Go", 0.90},
		{"TypeScript", 0.85},
		{"WebGL", 0.70},
		{"UI/UX", 0.80},
	}
)

// Document is the scrollable portfolio page laid out for one viewport.
type Document struct {
	Elements []Element
	Height   float64
	ScrollY  float64

	viewW, viewH float64
}

// Layout places every section for a viewport of w*h.
func Layout(w, h float64) *Document {
	d := &Document{viewW: w, viewH: h}
	contentW := max(w-2*SideMargin, 0)
	y := h // the hero fills the first screen

	d.add(Element{ID: "projects-title", Kind: KindHeading, Rect: Rect{SideMargin, y, contentW, 48}, Title: "Projects", Hidden: true})
	y += 48 + CardGap

	cols := columns(w)
	cardW := (contentW - float64(cols-1)*CardGap) / float64(cols)
	for i, p := range Projects {
		col, row := i%cols, i/cols
		d.add(Element{
			ID:     fmt.Sprintf("project-%d", i),
			Kind:   KindCard,
			Rect:   Rect{SideMargin + float64(col)*(cardW+CardGap), y + float64(row)*(CardHeight+CardGap), cardW, CardHeight},
			Title:  p.Title,
			Body:   p.Body,
			Hover:  true,
			Hidden: true,
		})
	}
	rows := (len(Projects) + cols - 1) / cols
	y += float64(rows)*(CardHeight+CardGap) + SectionGap

	skillsH := 48 + float64(len(Skills))*SkillRow
	d.add(Element{ID: "skills", Kind: KindSkills, Rect: Rect{SideMargin, y, contentW, skillsH}, Title: "Skills", Hidden: true, Skills: Skills})
	y += skillsH + SectionGap

	d.add(Element{ID: "contact", Kind: KindContact, Rect: Rect{SideMargin, y, contentW, ContactHeight}, Title: "Get in touch", Body: "Click the button to write me a message", Hidden: true})
	y += ContactHeight + SectionGap

	d.Height = y
	return d
}

func columns(w float64) int {
	switch {
	case w >= 900:
		return 3
	case w >= 600:
		return 2
	}
	return 1
}

func (d *Document) add(e Element) {
	d.Elements = append(d.Elements, e)
}

func (d *Document) MaxScroll() float64 {
	return max(d.Height-d.viewH, 0)
}

// ScrollBy moves the page and clamps to its extent.
func (d *Document) ScrollBy(dy float64) {
	d.ScrollTo(d.ScrollY + dy)
}

func (d *Document) ScrollTo(y float64) {
	d.ScrollY = min(max(y, 0), d.MaxScroll())
}

// Screen converts a page rect to screen coordinates.
func (d *Document) Screen(r Rect) Rect {
	r.Y -= d.ScrollY
	return r
}

// VisibleRatio is the fraction of e currently inside the viewport.
func (d *Document) VisibleRatio(e Element) float64 {
	if e.Rect.H <= 0 || e.Rect.W <= 0 {
		return 0
	}
	top := max(e.Rect.Y, d.ScrollY)
	bottom := min(e.Rect.Y+e.Rect.H, d.ScrollY+d.viewH)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / e.Rect.H
}

// HitTest returns the element under screen point (x, y), or nil. Points under
// the navbar never hit page content.
func (d *Document) HitTest(x, y float64) *Element {
	if y < NavbarHeight {
		return nil
	}
	py := y + d.ScrollY
	for i := range d.Elements {
		if d.Elements[i].Rect.Contains(x, py) {
			return &d.Elements[i]
		}
	}
	return nil
}

// Element looks up an element by ID.
func (d *Document) Element(id string) *Element {
	for i := range d.Elements {
		if d.Elements[i].ID == id {
			return &d.Elements[i]
		}
	}
	return nil
}

// ThemeButton and BackToTop are fixed to the screen, not the page.
func (d *Document) ThemeButton() Rect {
	return Rect{d.viewW - SideMargin - 110, (NavbarHeight - 32) / 2, 110, 32}
}

func (d *Document) BackToTop() Rect {
	return Rect{d.viewW - SideMargin - 48, d.viewH - 48 - 24, 48, 48}
}

// SendButton is the contact form's submit button in page coordinates.
func (d *Document) SendButton() Rect {
	c := d.Element("contact")
	if c == nil {
		return Rect{}
	}
	return Rect{c.Rect.X + 24, c.Rect.Y + c.Rect.H - ButtonHeight - 24, ButtonWidth, ButtonHeight}
}
