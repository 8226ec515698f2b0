package tags

import "github.com/yohamta/donburi"

var (
	Matchstick = donburi.NewTag().SetName("Matchstick")
	Bonfire    = donburi.NewTag().SetName("Bonfire")
	Water      = donburi.NewTag().SetName("Water")
	Wall       = donburi.NewTag().SetName("Wall")
	Platform   = donburi.NewTag().SetName("Platform")
	Player     = donburi.NewTag().SetName("Player")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	// ResolvMatch marks a matchstick that can still accept flame. Cleared
	// when the match becomes previous so burned stubs stop reacting.
	ResolvMatch    = "matchstick"
	ResolvPrevious = "previous"
	ResolvBonfire  = "bonfire"
	ResolvWater    = "water"
	ResolvPlatform = "platform"
)
