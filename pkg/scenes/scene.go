package scenes

import (
	"github.com/decker502/bdaygreet/pkg/game"
)

// Scene 同 game.Scene，供 App 持有
type Scene = game.Scene

var _ Scene = (*GreetingScene)(nil)
