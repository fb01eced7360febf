// Package ui is the terminal front end of the scratchcard demo. It drives a
// scratch.Surface from tcell mouse events and renders the overlay pixmap
// with half-block cells, two overlay pixels per terminal cell, so the brush
// reads as round despite the tall cell aspect ratio.
package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scratch"
)

// Default card size in terminal cells. The backing surface is twice as tall
// in pixels because each cell renders two vertically stacked pixels.
const (
	DefaultCardWidth  = 48
	DefaultCardHeight = 12

	frameInterval = 33 * time.Millisecond
	messageTTL    = 2 * time.Second
)

var (
	cardBackground = scratch.Hex("#1c2b4a")
	prizeColor     = scratch.Gold
	borderStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	messageStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	sparkleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Config assembles an App. SurfaceOptions configure the underlying
// scratch.Surface; the app appends its own celebration and callback wiring.
// Jingle, when set, plays alongside the sparkle burst.
type Config struct {
	Prize          string
	CardWidth      int
	CardHeight     int
	Jingle         func()
	SurfaceOptions []scratch.Option
}

// celebration fans the surface's Start/Stop intents out to the sparkler and
// the optional jingle.
type celebration struct {
	sparkler *Sparkler
	jingle   func()
}

func (c celebration) Start() {
	c.sparkler.Start()
	if c.jingle != nil {
		c.jingle()
	}
}

func (c celebration) Stop() {
	c.sparkler.Stop()
}

// App owns the tcell screen and the scratch surface for one demo session.
type App struct {
	screen   tcell.Screen
	surface  *scratch.Surface
	sparkler *Sparkler

	prize        string
	cardW, cardH int // cells
	cardX, cardY int // top-left cell of the card
	width        int
	height       int

	dragging     bool
	lastSample   scratch.Point
	message      string
	messageUntil time.Time
}

// New initializes the terminal, builds the surface and centers the card.
func New(cfg Config) (*App, error) {
	if cfg.CardWidth <= 0 {
		cfg.CardWidth = DefaultCardWidth
	}
	if cfg.CardHeight <= 0 {
		cfg.CardHeight = DefaultCardHeight
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()

	a := &App{
		screen:   screen,
		prize:    cfg.Prize,
		cardW:    cfg.CardWidth,
		cardH:    cfg.CardHeight,
		sparkler: NewSparkler(cfg.CardWidth, cfg.CardHeight),
	}

	opts := append([]scratch.Option(nil), cfg.SurfaceOptions...)
	opts = append(opts,
		scratch.WithCelebration(celebration{sparkler: a.sparkler, jingle: cfg.Jingle}),
		scratch.WithOnTrigger(func(trigger float64) {
			a.flash(fmt.Sprintf("milestone: %.0f%% scratched", trigger*100))
		}),
		scratch.WithOnThreshold(func() {
			a.flash("threshold reached!")
		}),
	)
	a.surface = scratch.NewSurface(opts...)
	a.surface.Resize(float64(a.cardW), float64(a.cardH*2))

	a.width, a.height = screen.Size()
	a.layout()
	return a, nil
}

// Close restores the terminal.
func (a *App) Close() {
	a.screen.Fini()
}

// Run blocks until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

// layout centers the card, leaving a status row below it.
func (a *App) layout() {
	a.cardX = (a.width - a.cardW) / 2
	a.cardY = (a.height - a.cardH - 2) / 2
	if a.cardX < 1 {
		a.cardX = 1
	}
	if a.cardY < 1 {
		a.cardY = 1
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				a.surface.Reset()
				a.flash("new card")
			case 'v':
				if a.surface.Revealed() {
					a.surface.Unreveal()
					a.flash("overlay restored")
				} else {
					a.surface.Reveal()
				}
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.layout()
		a.screen.Sync()
	}
	return true
}

// handleMouse translates a Button1 drag into Begin/Move samples in surface
// pixel coordinates. Leaving the card while dragging just stops feeding
// samples; re-entering continues the same segment.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		a.dragging = false
		return
	}

	cx, cy := mx-a.cardX, my-a.cardY
	if cx < 0 || cx >= a.cardW || cy < 0 || cy >= a.cardH {
		return
	}
	p := scratch.Pt(float64(cx)+0.5, float64(cy*2)+1)
	if !a.dragging {
		a.surface.Begin(p)
		a.dragging = true
		a.lastSample = p
		return
	}
	// Terminals repeat mouse events at cell granularity; drop samples that
	// did not reach a new cell so haptic ticks track actual movement.
	if p.Distance(a.lastSample) < 1 {
		return
	}
	a.surface.Move(p)
	a.lastSample = p
}

func (a *App) flash(msg string) {
	a.message = msg
	a.messageUntil = time.Now().Add(messageTTL)
}

func (a *App) draw() {
	a.screen.Clear()
	a.drawBorder()
	a.drawCard()
	a.drawSparkles()
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawBorder() {
	x0, y0 := a.cardX-1, a.cardY-1
	x1, y1 := a.cardX+a.cardW, a.cardY+a.cardH
	for x := x0; x <= x1; x++ {
		a.screen.SetContent(x, y0, '─', nil, borderStyle)
		a.screen.SetContent(x, y1, '─', nil, borderStyle)
	}
	for y := y0; y <= y1; y++ {
		a.screen.SetContent(x0, y, '│', nil, borderStyle)
		a.screen.SetContent(x1, y, '│', nil, borderStyle)
	}
	a.screen.SetContent(x0, y0, '┌', nil, borderStyle)
	a.screen.SetContent(x1, y0, '┐', nil, borderStyle)
	a.screen.SetContent(x0, y1, '└', nil, borderStyle)
	a.screen.SetContent(x1, y1, '┘', nil, borderStyle)
}

// drawCard renders the overlay over the card content. Each terminal cell
// shows two overlay pixels with '▀': the foreground color is the upper
// pixel composited over the background, the cell background color the
// lower. Cells holding prize glyphs show the glyph once the overlay over
// them is mostly gone.
func (a *App) drawCard() {
	overlay := a.surface.Overlay()
	prizeRow := a.cardH / 2
	prizeStart := (a.cardW - len([]rune(a.prize))) / 2
	prizeRunes := []rune(a.prize)

	for cy := 0; cy < a.cardH; cy++ {
		for cx := 0; cx < a.cardW; cx++ {
			top := overlay.GetPixel(cx, cy*2)
			bot := overlay.GetPixel(cx, cy*2+1)

			if cy == prizeRow && cx >= prizeStart && cx < prizeStart+len(prizeRunes) {
				if (top.A+bot.A)/2 < 0.5 {
					style := tcell.StyleDefault.
						Foreground(toTcell(prizeColor)).
						Background(toTcell(cardBackground)).
						Bold(true)
					a.screen.SetContent(a.cardX+cx, a.cardY+cy, prizeRunes[cx-prizeStart], nil, style)
					continue
				}
			}

			fg := compositeOver(top, cardBackground)
			bg := compositeOver(bot, cardBackground)
			style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
			a.screen.SetContent(a.cardX+cx, a.cardY+cy, '▀', nil, style)
		}
	}
}

func (a *App) drawSparkles() {
	a.sparkler.visit(func(x, y int, glyph rune) {
		if x < 0 || x >= a.cardW || y < 0 || y >= a.cardH {
			return
		}
		a.screen.SetContent(a.cardX+x, a.cardY+y, glyph, nil, sparkleStyle)
	})
}

func (a *App) drawStatus() {
	y := a.cardY + a.cardH + 2
	progress := a.surface.Progress()

	bar := renderBar(progress, 20)
	status := fmt.Sprintf("%s %3.0f%%  drag to scratch · r new card · v reveal · q quit", bar, progress*100)
	drawText(a.screen, a.cardX-1, y, status, statusStyle)

	if a.message != "" && time.Now().Before(a.messageUntil) {
		drawText(a.screen, a.cardX-1, y+1, a.message, messageStyle)
	}
}

func renderBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	bar := make([]rune, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	return string(append(bar, ']'))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// compositeOver blends a straight-alpha overlay color over an opaque
// background.
func compositeOver(c, bg scratch.RGBA) scratch.RGBA {
	return bg.Lerp(scratch.RGB(c.R, c.G, c.B), c.A)
}

func toTcell(c scratch.RGBA) tcell.Color {
	return tcell.NewRGBColor(
		int32(clamp255(c.R)),
		int32(clamp255(c.G)),
		int32(clamp255(c.B)),
	)
}

func clamp255(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
