package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Box    = donburi.NewTag().SetName("Box")
	Crate  = donburi.NewTag().SetName("Crate")
	Stone  = donburi.NewTag().SetName("Stone")
	Bomb   = donburi.NewTag().SetName("Bomb")
)
