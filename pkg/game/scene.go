package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the app (loader, home, a project page).
type Scene interface {
	// Update advances the scene. deltaTime is the time since the last
	// update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Unmounter is implemented by scenes that own timers, loops or audio.
// Unmount is called once when the scene is replaced and must cancel all of
// them.
type Unmounter interface {
	Unmount()
}

// Resizer is implemented by scenes that track the surface size in device
// pixels.
type Resizer interface {
	Resize(width, height float64)
}
