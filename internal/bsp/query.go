package bsp

import "maze/internal/physics"

// OverlapsSphere returns every enabled collidable whose boundary overlaps s.
// The result matches a scan of all objects; each object appears once.
func (t *Tree) OverlapsSphere(s physics.Sphere) []*physics.Collidable {
	return t.AppendOverlapsSphere(nil, s)
}

// AppendOverlapsSphere is like OverlapsSphere but appends to dst, so callers
// can reuse a buffer across frames.
func (t *Tree) AppendOverlapsSphere(dst []*physics.Collidable, s physics.Sphere) []*physics.Collidable {
	if len(t.nodes) == 0 {
		return dst
	}

	var buf [32]int32
	stack := append(buf[:0], 0)
	tests := 0

	for len(stack) > 0 {
		n := &t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		dst = t.appendOverlaps(dst, n.Unsplittable, s)
		tests += len(n.Unsplittable)

		if n.IsLeaf() {
			dst = t.appendOverlaps(dst, n.Objects, s)
			tests += len(n.Objects)
			continue
		}

		switch d := n.Plane.Distance(s.Center); {
		case d > s.Radius:
			stack = append(stack, n.Front)
		case d < -s.Radius:
			stack = append(stack, n.Back)
		default:
			stack = append(stack, n.Back, n.Front)
		}
	}

	instrumentSphereQuery(tests)
	return dst
}

func (t *Tree) appendOverlaps(dst []*physics.Collidable, indices []int32, s physics.Sphere) []*physics.Collidable {
	for _, i := range indices {
		if obj := t.objects[i]; obj.Hits(s) {
			dst = append(dst, obj)
		}
	}
	return dst
}

// BruteForceOverlapsSphere scans objects without a tree.
func BruteForceOverlapsSphere(objects []*physics.Collidable, s physics.Sphere) []*physics.Collidable {
	var hits []*physics.Collidable
	for _, obj := range objects {
		if obj.Hits(s) {
			hits = append(hits, obj)
		}
	}
	return hits
}
