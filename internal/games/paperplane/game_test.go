package paperplane

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
	"github.com/vovakirdan/paper-plane/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"paperplane", "paperplane_timed"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameTimedVariant(t *testing.T) {
	g := NewTimed()
	g.Reset(testRuntime())

	if !g.Config().TimeLimit.Enabled {
		t.Error("timed variant has the time limit disabled")
	}
	if New().Title() == g.Title() {
		t.Errorf("variants share the title %q", g.Title())
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	state := g.State()
	if state.Score != 0 || state.Level != 1 || state.GameOver || state.Paused {
		t.Errorf("State after reset = %+v", state)
	}
	if g.Session().State() != StateIntro {
		t.Errorf("session state = %v, expected %v", g.Session().State(), StateIntro)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 10
	g.Reset(rt)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.Session().State() != StateIntro {
		t.Errorf("session advanced on a small screen")
	}

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("small screen render = %q", dst.String())
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	if hud := strings.SplitN(dst.String(), "\n", 2)[0]; !strings.Contains(hud, "Level: 1/30") {
		t.Errorf("HUD = %q, expected level indicator", hud)
	}
	if !strings.Contains(dst.String(), "Paper Plane") {
		t.Error("intro overlay missing")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	g.Render(dst)

	x, y := newViewport(dst, 1280, 720).cell(g.Session().Plane().Center())
	if r := dst.Get(x, y); r != planeGlyphs[sector(g.Session().Plane().Heading())] {
		t.Errorf("cell (%d, %d) = %q, expected the plane", x, y, r)
	}
}

func TestGameRestartOnlyWhenFinished(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	s := g.Session()
	s.Start()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if s.Generation() != 0 {
		t.Fatal("restart accepted while playing")
	}

	clearLevel(s)
	s.plane.Pos = core.V(300, s.Bounds().Bottom)
	s.plane.Vel = core.V(0, 20)
	for i := 0; i < 20 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(restart)
	if s.Generation() != 1 || g.State().GameOver {
		t.Errorf("after restart generation = %d, state = %+v", s.Generation(), g.State())
	}
}

func TestGameMuteAndProfile(t *testing.T) {
	kv := memKV{KeyPlayerName: "ace"}
	g := New()
	g.UseProfileStore(kv)
	g.Reset(testRuntime())

	if g.PlayerName() != "ace" || !g.SoundEnabled() {
		t.Fatalf("profile = %q sound %v, expected ace with sound", g.PlayerName(), g.SoundEnabled())
	}

	mute := core.NewInputFrame()
	mute.Set(core.ActionMute)
	g.Step(mute)
	if g.SoundEnabled() || kv[KeySoundEnabled] != "false" {
		t.Errorf("after mute sound = %v, stored %q", g.SoundEnabled(), kv[KeySoundEnabled])
	}
}

func TestGameSavesHighScoreOnGameOver(t *testing.T) {
	kv := memKV{KeyPlayerName: "ace"}
	g := New()
	g.UseProfileStore(kv)
	g.Reset(testRuntime())
	s := g.Session()
	s.Start()

	clearLevel(s)
	s.score.Current = 500
	s.plane.Pos = core.V(300, s.Bounds().Bottom)
	s.plane.Vel = core.V(0, 20)

	var sawGameOver bool
	for i := 0; i < 20 && !sawGameOver; i++ {
		res := g.Step(core.NewInputFrame())
		sawGameOver = res.HasEvent(core.EventGameOver)
	}
	if !sawGameOver {
		t.Fatal("no gameOver event")
	}

	if kv["paperplane.high_score"] != "500" || kv["paperplane.high_score_holder"] != "ace" {
		t.Errorf("stored high score = %q by %q, expected 500 by ace",
			kv["paperplane.high_score"], kv["paperplane.high_score_holder"])
	}
	if s.HighScoreDirty() {
		t.Error("high score still dirty after save")
	}

	// The next run starts from the stored record.
	g.Reset(testRuntime())
	if sc := g.Session().Score(); sc.Highest != 500 || sc.Holder != "ace" {
		t.Errorf("reloaded high score = %d by %q", sc.Highest, sc.Holder)
	}
}

func TestGameSavesHighScoreOnStarCollect(t *testing.T) {
	kv := memKV{KeyPlayerName: "ace"}
	g := New()
	g.UseProfileStore(kv)
	g.Reset(testRuntime())
	s := g.Session()
	s.Start()
	clearLevel(s)

	c := s.plane.Center()
	s.stars = []Star{{Pos: c, CurrentY: c.Y}}
	res := g.Step(core.NewInputFrame())
	if !res.HasEvent(core.EventStarCollect) || res.HasEvent(core.EventGameOver) {
		t.Fatalf("events = %v, expected starCollect only", res.Events)
	}

	if kv["paperplane.high_score"] != "100" || kv["paperplane.high_score_holder"] != "ace" {
		t.Errorf("stored high score = %q by %q, expected 100 by ace",
			kv["paperplane.high_score"], kv["paperplane.high_score_holder"])
	}
	if s.HighScoreDirty() {
		t.Error("high score still dirty after a star")
	}
	if err := g.TakeProfileError(); err != nil {
		t.Errorf("TakeProfileError() = %v, expected nil", err)
	}
}

func TestGameReportsFailedProfileWrites(t *testing.T) {
	g := New()
	g.UseProfileStore(failingKV{memKV{}})
	g.Reset(testRuntime())
	s := g.Session()
	s.Start()
	clearLevel(s)

	mute := core.NewInputFrame()
	mute.Set(core.ActionMute)
	g.Step(mute)
	if g.SoundEnabled() {
		t.Error("sound still enabled after mute")
	}
	if err := g.TakeProfileError(); err == nil {
		t.Error("failed sound setting write was not reported")
	}
	if err := g.TakeProfileError(); err != nil {
		t.Errorf("error reported twice: %v", err)
	}

	c := s.plane.Center()
	s.stars = []Star{{Pos: c, CurrentY: c.Y}}
	g.Step(core.NewInputFrame())
	if err := g.TakeProfileError(); err == nil {
		t.Error("failed high score write was not reported")
	}
	if !s.HighScoreDirty() {
		t.Error("unsaved high score marked clean")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("hard")
	hard := LoadConfig(VariantCampaign)
	SetDifficultyPreset("bogus")
	plain := LoadConfig(VariantCampaign)

	if hard.Difficulty.PerLevel <= plain.Difficulty.PerLevel {
		t.Errorf("hard PerLevel = %v, expected above %v", hard.Difficulty.PerLevel, plain.Difficulty.PerLevel)
	}
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 10
	g.Reset(rt)

	g.Resize(80, 24)
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.Session().State() != StatePlaying {
		t.Errorf("State = %v after growing the window, expected playing", g.Session().State())
	}

	g.Resize(30, 10)
	snap := g.Session().Snapshot()
	before := snap.Hash()
	g.Step(core.NewInputFrame())
	snap = g.Session().Snapshot()
	if after := snap.Hash(); after != before {
		t.Error("session advanced after shrinking the window")
	}
}

func TestGameKeyReleaseTicks(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	want := config.DefaultPaperPlaneConfig().Controls.KeyReleaseTicks
	if got := g.KeyReleaseTicks(); got != want {
		t.Errorf("KeyReleaseTicks() = %d, expected %d", got, want)
	}
}
