package scenes

import (
	"testing"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/sequencer"
)

const testPresets = `
presets:
  - name: loader
    network:
      count: 8
      palette: {mode: theme}
  - name: home
    network:
      count: 8
      palette: {mode: theme}
  - name: kaska
    network:
      count: 8
      palette:
        mode: random
        colors: ["#ffffff", "#00aaff"]
`

// fakeInput returns each queued press once.
type fakeInput struct {
	confirm, back, toggle bool
	project               int
	scroll                float64
}

func newFakeInput() *fakeInput { return &fakeInput{project: -1} }

func (f *fakeInput) Confirm() bool {
	v := f.confirm
	f.confirm = false
	return v
}

func (f *fakeInput) Back() bool {
	v := f.back
	f.back = false
	return v
}

func (f *fakeInput) ToggleTheme() bool {
	v := f.toggle
	f.toggle = false
	return v
}

func (f *fakeInput) Project() int {
	v := f.project
	f.project = -1
	return v
}

func (f *fakeInput) ScrollDelta(step, page float64) float64 {
	v := f.scroll
	f.scroll = 0
	return v
}

func newTestEnv(t *testing.T) (*Env, *fakeInput) {
	t.Helper()
	presets, err := config.ParsePresets([]byte(testPresets))
	if err != nil {
		t.Fatalf("ParsePresets failed: %v", err)
	}
	in := newFakeInput()
	env := &Env{
		Resources: game.NewResourceManagerWithPresets(presets),
		Scenes:    game.NewSceneManager(),
		Audio:     game.NewAudioManager(nil, false),
		Input:     in,
		DPR:       1,
		Target:    "KR",
		Seed:      7,
	}
	env.Scenes.SetSceneFactory(Factory(env))
	env.Scenes.Resize(800, 600)
	return env, in
}

func TestFactory(t *testing.T) {
	env, _ := newTestEnv(t)
	f := Factory(env)

	tests := []struct {
		name    string
		wantNil bool
	}{
		{SceneLoader, false},
		{SceneHome, false},
		{ProjectPrefix + "kaska", false},
		{ProjectPrefix + "missing", true},
		{"settings", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f(tt.name); (got == nil) != tt.wantNil {
				t.Errorf("Factory(%q) = %v, wantNil %v", tt.name, got, tt.wantNil)
			}
		})
	}
}

func TestLoaderScene_WaitsForConfirm(t *testing.T) {
	env, in := newTestEnv(t)
	if !env.Scenes.NavigateNow(SceneLoader) {
		t.Fatal("NavigateNow(loader) failed")
	}
	s := env.Scenes.GetCurrentScene().(*LoaderScene)
	if s.Background() == nil {
		t.Fatal("background not built on first resize")
	}

	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}
	if s.Loader().Phase() != sequencer.PhaseIdle {
		t.Fatalf("phase = %s without confirm, want idle", s.Loader().Phase())
	}

	in.confirm = true
	s.Update(1.0 / 60)
	if s.Loader().Phase() != sequencer.PhaseProgress {
		t.Errorf("phase = %s after confirm, want progress", s.Loader().Phase())
	}
}

func TestLoaderScene_RunsToHome(t *testing.T) {
	env, in := newTestEnv(t)
	env.Scenes.NavigateNow(SceneLoader)
	s := env.Scenes.GetCurrentScene().(*LoaderScene)
	darkField := s.Background()

	in.confirm = true
	sawTheme := false
	for i := 0; i < 5000 && env.Scenes.CurrentName() != SceneHome; i++ {
		env.Scenes.Update(1.0 / 60)
		if !sawTheme && s.Loader().Light() {
			sawTheme = true
			if s.Background() == darkField {
				t.Error("background was not rebuilt on the theme switch")
			}
		}
	}

	if env.Scenes.CurrentName() != SceneHome {
		t.Fatalf("current scene = %q, want %q", env.Scenes.CurrentName(), SceneHome)
	}
	if !sawTheme {
		t.Error("loader never switched to the light theme")
	}
	if !s.Loader().Stopped() {
		t.Error("loader not stopped after leaving the scene")
	}
	if got := s.Loader().Typed(); got != "KR" {
		t.Errorf("typed = %q, want %q", got, "KR")
	}
}

func TestLoaderScene_UnmountFreezes(t *testing.T) {
	env, in := newTestEnv(t)
	env.Scenes.NavigateNow(SceneLoader)
	s := env.Scenes.GetCurrentScene().(*LoaderScene)

	in.confirm = true
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}
	s.Unmount()
	count := s.Loader().Count()
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	if s.Loader().Count() != count {
		t.Errorf("count moved from %d to %d after unmount", count, s.Loader().Count())
	}
	s.Unmount()
}

func TestHomeScene_ThemeToggle(t *testing.T) {
	env, in := newTestEnv(t)
	env.Scenes.NavigateNow(SceneHome)
	s := env.Scenes.GetCurrentScene().(*HomeScene)
	first := s.Background()
	if first == nil {
		t.Fatal("background not built on first resize")
	}
	if s.Light() {
		t.Fatal("home starts light, want dark")
	}

	in.toggle = true
	s.Update(1.0 / 60)
	if !s.Light() {
		t.Error("theme not toggled")
	}
	if s.Background() == first {
		t.Error("background not rebuilt after theme toggle")
	}
	if got := s.Background().Backdrop; got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("light backdrop = %v, want white", got)
	}
}

func TestHomeScene_ScrollReveal(t *testing.T) {
	env, in := newTestEnv(t)
	env.Scenes.NavigateNow(SceneHome)
	s := env.Scenes.GetCurrentScene().(*HomeScene)
	secs := s.Tracker().Sections()
	last := len(secs) - 1

	if !secs[0].Revealed() {
		t.Error("intro section hidden at the top of the page")
	}
	if secs[last].Revealed() {
		t.Error("last section revealed at the top of the page")
	}

	in.scroll = 1e9
	for i := 0; i < 20; i++ {
		s.Update(1.0 / 60)
	}
	if s.Tracker().ScrollY() != s.Tracker().MaxScroll() {
		t.Errorf("ScrollY = %v, want clamped to %v", s.Tracker().ScrollY(), s.Tracker().MaxScroll())
	}
	if !secs[last].Revealed() {
		t.Error("last section not revealed at the bottom")
	}
	if secs[0].Revealed() {
		t.Error("intro section still revealed at the bottom")
	}
	if s.Fade(last) != 1 {
		t.Errorf("Fade(last) = %v, want 1", s.Fade(last))
	}
	if s.Fade(0) != 0 {
		t.Errorf("Fade(0) = %v, want 0", s.Fade(0))
	}
	if s.Tracker().PageProgress() != 1 {
		t.Errorf("PageProgress = %v, want 1", s.Tracker().PageProgress())
	}
}

func TestHomeScene_TypesHeader(t *testing.T) {
	env, _ := newTestEnv(t)
	s := NewHomeScene(env)
	s.Update(0.5)
	if s.Header()[0] == "" {
		t.Error("header still empty after half a second")
	}
}

func TestHomeScene_OpensProject(t *testing.T) {
	env, in := newTestEnv(t)
	env.Scenes.NavigateNow(SceneHome)

	in.project = 0
	env.Scenes.Update(1.0 / 60)
	env.Scenes.Update(1.0 / 60)
	want := ProjectPrefix + config.HomeProjects[0]
	if env.Scenes.CurrentName() != want {
		t.Fatalf("current scene = %q, want %q", env.Scenes.CurrentName(), want)
	}
	p := env.Scenes.GetCurrentScene().(*ProjectScene)
	if p.Name() != config.HomeProjects[0] {
		t.Errorf("project = %q, want %q", p.Name(), config.HomeProjects[0])
	}
	if p.Background() == nil {
		t.Error("project field not built")
	}

	in.back = true
	env.Scenes.Update(1.0 / 60)
	env.Scenes.Update(1.0 / 60)
	if env.Scenes.CurrentName() != SceneHome {
		t.Errorf("current scene = %q after back, want %q", env.Scenes.CurrentName(), SceneHome)
	}
}

func TestNewProjectScene_Unknown(t *testing.T) {
	env, _ := newTestEnv(t)
	if _, err := NewProjectScene(env, "missing"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestProjectScene_TitleFadesIn(t *testing.T) {
	env, _ := newTestEnv(t)
	s, err := NewProjectScene(env, "kaska")
	if err != nil {
		t.Fatalf("NewProjectScene failed: %v", err)
	}
	if s.TitleFade() != 0 {
		t.Errorf("fade before any update = %v, want 0", s.TitleFade())
	}

	s.Update(projectTitleFade / 2)
	if f := s.TitleFade(); f <= 0 || f >= 1 {
		t.Errorf("fade halfway = %v, want strictly between 0 and 1", f)
	}

	s.Update(projectTitleFade)
	if s.TitleFade() != 1 {
		t.Errorf("fade after the full duration = %v, want 1", s.TitleFade())
	}
}
