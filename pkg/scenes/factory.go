package scenes

import (
	"log"
	"strings"

	"github.com/decker502/folio/pkg/game"
)

// Factory creates scenes by name: "loader", "home" or "project:<preset>".
// Unknown names yield nil.
func Factory(env *Env) game.SceneFactory {
	return func(name string) game.Scene {
		switch {
		case name == SceneLoader:
			return NewLoaderScene(env)
		case name == SceneHome:
			return NewHomeScene(env)
		case strings.HasPrefix(name, ProjectPrefix):
			s, err := NewProjectScene(env, strings.TrimPrefix(name, ProjectPrefix))
			if err != nil {
				log.Printf("[Scenes] Warning: %v", err)
				return nil
			}
			return s
		}
		log.Printf("[Scenes] Warning: unknown scene %q", name)
		return nil
	}
}
