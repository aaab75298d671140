package bsp

import (
	"maze/internal/physics"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

const (
	ErrTypeInvalidDepth      = "bsp_invalid_depth"
	ErrTypeInvalidBound      = "bsp_invalid_bound"
	ErrTypeInvalidCollidable = "bsp_invalid_collidable"
)

// buildTask is a node waiting to be split.
type buildTask struct {
	node       int32
	candidates []int32
	box        physics.AABB
	axis       int
	depth      int
}

// Build indexes objects inside bound. maxDepth caps the number of split
// attempts along any root-to-leaf path; 0 gives a single leaf.
//
// Each node splits its box in half on the current axis, rotating X, Y, Z.
// Objects that straddle the plane, and every static object, stay at the node.
// When one side ends up empty the node tries again on the non-empty half with
// the next axis instead of creating an empty child.
func Build(objects []*physics.Collidable, bound physics.AABB, maxDepth int) (*Tree, error) {
	if maxDepth < 0 {
		return nil, errors.New("negative tree depth").
			WithType(ErrTypeInvalidDepth).
			WithTag("max_depth", maxDepth)
	}
	if !bound.Valid() {
		return nil, errors.New("tree bound is inverted").
			WithType(ErrTypeInvalidBound).
			WithTag("min", bound.Min).
			WithTag("max", bound.Max)
	}
	for i, obj := range objects {
		if obj == nil {
			return nil, errors.New("nil collidable").
				WithType(ErrTypeInvalidCollidable).
				WithTag("index", i)
		}
		if obj.Boundary.Kind() == 0 {
			return nil, errors.New("collidable has no boundary").
				WithType(ErrTypeInvalidCollidable).
				WithTag("index", i).
				WithTag("name", obj.Name)
		}
	}

	start := time.Now()
	t := &Tree{
		objects:  append([]*physics.Collidable(nil), objects...),
		bound:    bound,
		maxDepth: maxDepth,
	}

	all := make([]int32, len(objects))
	for i := range all {
		all[i] = int32(i)
	}

	t.nodes = append(t.nodes, Node{Front: noChild, Back: noChild})
	stack := []buildTask{{node: 0, candidates: all, box: bound, depth: maxDepth}}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = t.split(task, stack)
	}

	instrumentBuild(t, time.Since(start))
	logs.WithTag("objects", len(t.objects)).
		WithTag("nodes", len(t.nodes)).
		WithTag("max_depth", maxDepth).
		WithTag("duration", time.Since(start)).
		Debug("bsp tree built")

	return t, nil
}

// MustBuild is like Build but panics on invalid input.
func MustBuild(objects []*physics.Collidable, bound physics.AABB, maxDepth int) *Tree {
	t, err := Build(objects, bound, maxDepth)
	if err != nil {
		panic(err)
	}
	return t
}

// split fills in the task's node and appends any child tasks to stack.
func (t *Tree) split(task buildTask, stack []buildTask) []buildTask {
	candidates := task.candidates
	box, axis, depth := task.box, task.axis, task.depth

	for {
		if depth <= 0 {
			t.nodes[task.node].Objects = candidates
			t.nodes[task.node].Box = box
			return stack
		}

		at := (physics.AxisValue(box.Min, axis) + physics.AxisValue(box.Max, axis)) / 2
		plane := physics.AxisPlane(axis, at)

		var front, back, unsplittable []int32
		for _, i := range candidates {
			obj := t.objects[i]
			if obj.IsStatic {
				unsplittable = append(unsplittable, i)
				continue
			}
			switch obj.Boundary.ClassifyPlane(plane) {
			case physics.Front:
				front = append(front, i)
			case physics.Back:
				back = append(back, i)
			default:
				unsplittable = append(unsplittable, i)
			}
		}

		frontBox, backBox := box.Split(axis, at)
		depth--
		next := (axis + 1) % 3

		switch {
		case len(front) > 0 && len(back) > 0:
			frontIdx := int32(len(t.nodes))
			backIdx := frontIdx + 1
			t.nodes = append(t.nodes,
				Node{Front: noChild, Back: noChild},
				Node{Front: noChild, Back: noChild})

			n := &t.nodes[task.node]
			n.Box = box
			n.Plane = plane
			n.Axis = axis
			n.Front = frontIdx
			n.Back = backIdx
			n.Unsplittable = unsplittable
			n.Objects = make([]int32, 0, len(front)+len(back))
			n.Objects = append(append(n.Objects, front...), back...)

			return append(stack,
				buildTask{node: backIdx, candidates: back, box: backBox, axis: next, depth: depth},
				buildTask{node: frontIdx, candidates: front, box: frontBox, axis: next, depth: depth})

		case len(front) == 0 && len(back) == 0:
			n := &t.nodes[task.node]
			n.Box = box
			n.Plane = plane
			n.Axis = axis
			n.Unsplittable = unsplittable
			return stack

		default:
			// One side is empty: retry on the occupied half with the next
			// axis, giving straddling objects another chance to separate.
			occupied := front
			box = frontBox
			if len(front) == 0 {
				occupied = back
				box = backBox
			}
			candidates = append(occupied, unsplittable...)
			axis = next
		}
	}
}
