package memory

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/layout"
)

func testDeck() core.Deck {
	d := core.Deck{ID: "test", Title: "Test Deck"}
	for i := 0; i < PairCount; i++ {
		d.Characters = append(d.Characters, core.Character{
			Name:  fmt.Sprintf("Hero Number-%d", i),
			Slug:  fmt.Sprintf("hero_%d", i),
			Color: core.RGB(uint8(i*10), 100, 200),
		})
	}
	return d
}

func newTestGame() *Game {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return New(testDeck(), cfg)
}

// recordSink captures draw calls.
type recordSink struct {
	clears   int
	quads    []core.Quad
	labels   []core.Label
	presents int
}

func (r *recordSink) Clear(core.RGBA) { r.clears++ }
func (r *recordSink) DrawQuad(q core.Quad) { r.quads = append(r.quads, q) }
func (r *recordSink) DrawText(l core.Label) { r.labels = append(r.labels, l) }
func (r *recordSink) Present() { r.presents++ }

func (r *recordSink) hasLabel(text string) bool {
	for _, l := range r.labels {
		if l.Text == text {
			return true
		}
	}
	return false
}

func clickSlot(g *Game, slot int) bool {
	x, y := g.Layout().Cards[slot].Center()
	return g.Click(x, y)
}

// findPair returns two slots holding the same character and one that does not.
func findPair(s *Session) (a, b, other int) {
	cards := s.Cards()
	for i := 1; i < CardCount; i++ {
		if cards[i].CharacterID == cards[0].CharacterID {
			b = i
			break
		}
	}
	for i := 1; i < CardCount; i++ {
		if cards[i].CharacterID != cards[0].CharacterID {
			other = i
			break
		}
	}
	return 0, b, other
}

func TestGameClickMapsToCards(t *testing.T) {
	g := newTestGame()

	if !clickSlot(g, 5) {
		t.Fatal("click on card 5 rejected")
	}
	if first, _ := g.Session().Selection(); first != 5 {
		t.Errorf("first selection = %d, expected 5", first)
	}

	// A click in the HUD outside the button hits nothing.
	l := g.Layout()
	if g.Click(l.HUD.X+5, l.HUD.Y+5) {
		t.Error("click in HUD accepted")
	}
}

func TestGameResizeDuringAnimation(t *testing.T) {
	g := newTestGame()
	_, _, other := findPair(g.Session())
	third := CardCount - 1

	clickSlot(g, 0)
	g.Update(step)
	if c := g.Session().Card(0); c.State != FlippingToFront || c.FlipProgress <= 0 {
		t.Fatalf("card 0 = %v at %v, expected FlippingToFront in progress", c.State, c.FlipProgress)
	}

	resize := func(w, h float64) {
		t.Helper()
		before := g.Session().Snapshot()
		g.Resize(w, h)
		l := g.Layout()
		if want := layout.Compute(w, h).Scale; l.Scale != want {
			t.Errorf("Layout().Scale = %v after resize to %vx%v, expected %v", l.Scale, w, h, want)
		}
		if after := g.Session().Snapshot(); after != before {
			t.Errorf("resize to %vx%v changed the session:\n%+v\nexpected\n%+v", w, h, after, before)
		}
	}

	// Mid flip.
	resize(800, 1000)
	x, y := g.Layout().Cards[other].Center()
	if slot := g.Layout().CardAt(x, y); slot != other {
		t.Fatalf("CardAt(new centre of %d) = %d", other, slot)
	}
	if !g.Click(x, y) {
		t.Fatalf("click at new centre of card %d rejected", other)
	}
	if _, second := g.Session().Selection(); second != other {
		t.Errorf("second selection = %d, expected %d", second, other)
	}

	for i := 0; i < 200 && g.Session().Phase() != RevealWindow; i++ {
		g.Update(step)
	}
	if g.Session().Phase() != RevealWindow {
		t.Fatalf("Phase() = %v, expected RevealWindow", g.Session().Phase())
	}
	g.Update(0.05)
	remaining := g.Session().RevealRemaining()

	// Inside the reveal window.
	resize(1600, 900)
	if g.Session().Phase() != RevealWindow || g.Session().RevealRemaining() != remaining {
		t.Errorf("after resize: %v with %v left, expected RevealWindow with %v",
			g.Session().Phase(), g.Session().RevealRemaining(), remaining)
	}
	x, y = g.Layout().Cards[third].Center()
	if slot := g.Layout().CardAt(x, y); slot != third {
		t.Errorf("CardAt(new centre of %d) = %d", third, slot)
	}
	if g.Click(x, y) {
		t.Error("click accepted while the pair is revealed")
	}
	if c := g.Session().Card(third); c.State != FaceDown {
		t.Errorf("card %d = %v, expected FaceDown", third, c.State)
	}
}

func TestGameNewGameResetsMidGame(t *testing.T) {
	g := newTestGame()
	a, b, other := findPair(g.Session())

	clickSlot(g, a)
	clickSlot(g, b)
	for i := 0; i < 200; i++ {
		g.Update(step)
	}
	if g.Session().MatchedPairs() != 1 {
		t.Fatalf("MatchedPairs() = %d, expected 1", g.Session().MatchedPairs())
	}
	clickSlot(g, other)
	g.Update(step)

	round := g.Round()
	l := g.Layout()
	bx, by := l.NewGame.Center()
	if !g.Click(bx, by) {
		t.Fatal("New Game button click rejected")
	}

	s := g.Session()
	snap := s.Snapshot()
	if g.Round() != round+1 {
		t.Errorf("Round() = %d, expected %d", g.Round(), round+1)
	}
	if faces := snap.faces(); faces[FaceDown] != CardCount {
		t.Errorf("face down cards = %d, expected %d", faces[FaceDown], CardCount)
	}
	if snap.Moves != 0 || snap.MatchedPairs != 0 || snap.Elapsed != 0 || snap.TimerRunning || snap.Won {
		t.Errorf("stats after reset = %+v, expected zeroed", snap)
	}
	if snap.Phase != Idle || snap.First != NoSelection || snap.Second != NoSelection {
		t.Errorf("selection after reset = %v/%d/%d", snap.Phase, snap.First, snap.Second)
	}
	checkPairing(t, snap.Cards)
}

func TestGameNewGameWhileLocked(t *testing.T) {
	g := newTestGame()
	_, _, other := findPair(g.Session())
	clickSlot(g, 0)
	clickSlot(g, other)
	if !g.Session().Locked() {
		t.Fatal("board should be locked with a pair in flight")
	}

	g.HandleEvent(core.KeyEvent("n"))
	if g.Session().Locked() || g.Session().Moves() != 0 {
		t.Error("n key should start a fresh unlocked session")
	}
}

func TestGameEvents(t *testing.T) {
	g := newTestGame()
	var q core.EventQueue
	q.Push(core.ResizeEvent(1080, 1920))
	q.Push(core.KeyEvent("x"))
	g.HandleEvents(&q)

	if q.Len() != 0 {
		t.Errorf("queue Len() = %d after drain, expected 0", q.Len())
	}
	if l := g.Layout(); l.Width != 1080 || l.Height != 1920 {
		t.Errorf("layout size = %vx%v, expected 1080x1920", l.Width, l.Height)
	}
	if g.Quitting() {
		t.Error("unknown key should not quit")
	}

	g.HandleEvent(core.KeyEvent("esc"))
	if !g.Quitting() {
		t.Error("esc should quit")
	}

	g2 := newTestGame()
	g2.HandleEvent(core.CloseEvent())
	if !g2.Quitting() {
		t.Error("close event should quit")
	}
}

func TestGameResult(t *testing.T) {
	g := newTestGame()
	if _, ok := g.Result(); ok {
		t.Error("Result() reported a win on a fresh game")
	}

	s, _ := NewSessionFromDeal(pairedDeal())
	g.session = s
	for p := 0; p < PairCount; p++ {
		clickSlot(g, 2*p)
		clickSlot(g, 2*p+1)
		for i := 0; i < 200 && s.Phase() != Idle; i++ {
			g.Update(step)
		}
	}

	res, ok := g.Result()
	if !ok {
		t.Fatal("Result() not available after win")
	}
	if res.DeckID != "test" || res.Moves != PairCount || res.Elapsed <= 0 {
		t.Errorf("Result() = %+v", res)
	}
}

func TestRenderFrame(t *testing.T) {
	g := newTestGame()
	sink := &recordSink{}
	g.Render(sink, StaticResources{Font: true})

	if sink.clears != 1 || sink.presents != 1 {
		t.Errorf("clears/presents = %d/%d, expected 1/1", sink.clears, sink.presents)
	}
	// Play area, HUD, grid, button and 32 card backs.
	if len(sink.quads) != 4+CardCount {
		t.Errorf("quads = %d, expected %d", len(sink.quads), 4+CardCount)
	}
	for _, text := range []string{"Test Deck", "Time: 00:00", "Moves: 0", "Pairs: 0/16", "New Game"} {
		if !sink.hasLabel(text) {
			t.Errorf("missing label %q", text)
		}
	}
}

func TestRenderWithoutFontDrawsNoText(t *testing.T) {
	g := newTestGame()
	sink := &recordSink{}
	g.Render(sink, StaticResources{})

	if len(sink.labels) != 0 {
		t.Errorf("labels = %d without a font, expected 0", len(sink.labels))
	}
	if len(sink.quads) == 0 {
		t.Error("cards should still be drawn without a font")
	}
}

func TestRenderFaceFallbackAndTexture(t *testing.T) {
	g := newTestGame()
	clickSlot(g, 0)
	for i := 0; i < 20; i++ {
		g.Update(step)
	}
	id := g.Session().Card(0).CharacterID
	initials := core.Initials(g.deck.Character(id).Name)

	sink := &recordSink{}
	g.Render(sink, StaticResources{Font: true})
	if !sink.hasLabel(initials) {
		t.Errorf("missing initials %q on face-up card without texture", initials)
	}

	tex := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	tex.Set(1, 1, color.NRGBA{R: 255, A: 255})
	sink = &recordSink{}
	g.Render(sink, StaticResources{Font: true, Textures: map[int]image.Image{id: tex}})
	if sink.hasLabel(initials) {
		t.Error("initials drawn over a textured card")
	}
	textured := 0
	for _, q := range sink.quads {
		if q.Texture != nil {
			textured++
		}
	}
	if textured != 1 {
		t.Errorf("textured quads = %d, expected 1", textured)
	}
}

func TestRenderWinOverlay(t *testing.T) {
	g := newTestGame()
	g.session.won = true
	g.session.moves = 20
	g.session.elapsed = 75

	sink := &recordSink{}
	g.Render(sink, StaticResources{Font: true})
	if !sink.hasLabel("You Won!") {
		t.Error("missing win title")
	}
	if !sink.hasLabel("Final Time: 01:15   Moves: 20") {
		t.Error("missing final stats line")
	}
}

func TestRenderToTerminalScreen(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	cfg.ScreenW, cfg.ScreenH = 160, 90 // 160x45 terminal cells
	g := New(testDeck(), cfg)

	screen := core.NewScreen(160, 45)
	g.Render(screen, StaticResources{Font: true})

	out := screen.String()
	for _, text := range []string{"Moves: 0", "Pairs: 0/16"} {
		if !strings.Contains(out, text) {
			t.Errorf("screen missing %q", text)
		}
	}}
