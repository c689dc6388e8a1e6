package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Platform     = donburi.NewTag().SetName("Platform")
	Wall         = donburi.NewTag().SetName("Wall")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Destructible = donburi.NewTag().SetName("Destructible")
	Runtime      = donburi.NewTag().SetName("Runtime")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvPlatform     = "platform"
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvCharacter    = "character"
	ResolvProjectile   = "projectile"
	ResolvDestructible = "destructible"
)
