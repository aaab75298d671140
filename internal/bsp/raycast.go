package bsp

import (
	"maze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raySlack widens plane pruning so rounding never skips a subtree holding
// the nearest hit.
const raySlack = 1e-4

// Raycast returns the nearest enabled collidable hit by ray with a distance
// in [0, maxDistance]. Children are visited near side first and the far side
// is skipped once a hit closer than the splitting plane is known.
func (t *Tree) Raycast(ray physics.Ray, maxDistance float32) (physics.RaycastHit, bool) {
	var best physics.RaycastHit
	best.Distance = maxDistance
	found := false
	if len(t.nodes) == 0 {
		return best, false
	}

	type entry struct {
		node int32
		// enter is the ray distance at which the node's half-space is reached.
		enter float32
	}
	var buf [32]entry
	stack := append(buf[:0], entry{})
	tests := 0

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.enter > best.Distance+raySlack {
			continue
		}

		n := &t.nodes[e.node]
		tests += len(n.Unsplittable)
		best, found = t.nearestHit(n.Unsplittable, ray, best, found)

		if n.IsLeaf() {
			tests += len(n.Objects)
			best, found = t.nearestHit(n.Objects, ray, best, found)
			continue
		}

		near, far := n.Front, n.Back
		side := n.Plane.Distance(ray.Origin)
		if side < 0 {
			near, far = far, near
		}

		denom := rl.Vector3DotProduct(n.Plane.Normal, ray.Direction)
		switch {
		case side == 0:
			stack = append(stack, entry{node: far, enter: e.enter}, entry{node: near, enter: e.enter})
		case denom == 0 || (side > 0) == (denom > 0):
			// Moving parallel to or away from the plane: the far side is
			// never reached.
			stack = append(stack, entry{node: near, enter: e.enter})
		default:
			cross := -side / denom
			if cross < e.enter {
				cross = e.enter
			}
			stack = append(stack, entry{node: far, enter: cross}, entry{node: near, enter: e.enter})
		}
	}

	instrumentRayQuery(tests)
	return best, found
}

func (t *Tree) nearestHit(indices []int32, ray physics.Ray, best physics.RaycastHit, found bool) (physics.RaycastHit, bool) {
	for _, i := range indices {
		obj := t.objects[i]
		if !obj.CollisionEnabled {
			continue
		}
		hit, ok := obj.Boundary.IntersectsRay(ray)
		if !ok || hit.Distance > best.Distance || (found && hit.Distance == best.Distance) {
			continue
		}
		best = physics.RaycastHit{Collidable: obj, RayHit: hit}
		found = true
	}
	return best, found
}
