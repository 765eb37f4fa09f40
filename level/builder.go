// Package level turns parsed maps into physics bodies.
package level

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/physics"
	"github.com/milk9111/ungravity/tmx"
)

type Result struct {
	ObjectsCount int
	StarsTotal   int
}

// Build replaces the level bodies in world with the contents of m and moves
// ball to the first spawn object. The ball itself is never destroyed.
func Build(world *physics.World, m *tmx.Map, ball *physics.Body) Result {
	world.ClearLevel()

	objects := m.Objects()
	res := Result{ObjectsCount: len(objects)}

	for _, o := range objects {
		if ResolveKind(o) != KindSpawn {
			continue
		}
		if ball != nil {
			cx, cy := o.Center()
			ball.Teleport(toWorld(cx, cy))
		}
		break
	}

	for _, o := range objects {
		var kind physics.Kind
		switch ResolveKind(o) {
		case KindWall:
			kind = physics.KindWall
		case KindGoal:
			kind = physics.KindGoal
		case KindStar:
			kind = physics.KindStar
		default:
			continue
		}
		if !o.HasArea() {
			continue
		}

		cx, cy := o.Center()
		world.CreateBox(
			toWorld(cx, cy),
			common.PxToM(o.Width),
			common.PxToM(o.Height),
			common.DegToRad(o.Rotation),
			physics.Tag{Kind: kind, Level: true, MapID: o.ID, Name: o.Name},
		)
		if kind == physics.KindStar {
			res.StarsTotal++
		}
	}

	return res
}

func toWorld(x, y float64) cp.Vector {
	return cp.Vector{X: common.PxToM(x), Y: common.PxToM(y)}
}
