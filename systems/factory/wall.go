package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	addToSpace(w, wall, obj)

	return wall
}
