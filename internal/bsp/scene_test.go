package bsp

import (
	"math/rand"
	"maze/internal/physics"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var sceneBound = physics.AABB{
	Min: rl.Vector3{X: -50, Y: -50, Z: -50},
	Max: rl.Vector3{X: 50, Y: 50, Z: 50},
}

func randRange(r *rand.Rand, min, max float32) float32 {
	return min + r.Float32()*(max-min)
}

func randPoint(r *rand.Rand, b physics.AABB) rl.Vector3 {
	return rl.Vector3{
		X: randRange(r, b.Min.X, b.Max.X),
		Y: randRange(r, b.Min.Y, b.Max.Y),
		Z: randRange(r, b.Min.Z, b.Max.Z),
	}
}

func randUnit(r *rand.Rand) rl.Vector3 {
	for {
		v := rl.Vector3{X: randRange(r, -1, 1), Y: randRange(r, -1, 1), Z: randRange(r, -1, 1)}
		if l := rl.Vector3Length(v); l > 0.1 && l <= 1 {
			return rl.Vector3Scale(v, 1/l)
		}
	}
}

func randBoundary(r *rand.Rand) physics.Boundary {
	center := randPoint(r, sceneBound)

	switch r.Intn(3) {
	case 0:
		size := rl.Vector3{X: randRange(r, 0.1, 10), Y: randRange(r, 0.1, 10), Z: randRange(r, 0.1, 10)}
		return physics.BoxBoundary(physics.NewAABBFromCenter(center, size))
	case 1:
		return physics.SphereBoundary(physics.Sphere{Center: center, Radius: randRange(r, 0.1, 5)})
	default:
		u := randUnit(r)
		v := rl.Vector3Normalize(rl.Vector3CrossProduct(u, randUnit(r)))
		if rl.Vector3Length(v) == 0 {
			v = rl.Vector3Normalize(rl.Vector3CrossProduct(u, physics.Up))
		}
		return physics.QuadBoundary(physics.NewQuadAt(center,
			rl.Vector3Scale(u, randRange(r, 0.1, 5)),
			rl.Vector3Scale(v, randRange(r, 0.1, 5))))
	}
}

// randScene returns between 1 and max collidables, some static and some
// disabled.
func randScene(r *rand.Rand, max int) []*physics.Collidable {
	objects := make([]*physics.Collidable, 1+r.Intn(max))
	for i := range objects {
		obj := physics.NewCollidable("object", randBoundary(r))
		obj.IsStatic = r.Intn(10) == 0
		obj.CollisionEnabled = r.Intn(8) != 0
		objects[i] = obj
	}
	return objects
}

func randSphere(r *rand.Rand) physics.Sphere {
	return physics.Sphere{Center: randPoint(r, sceneBound), Radius: randRange(r, 0.1, 15)}
}

func collidableSet(objects []*physics.Collidable) map[*physics.Collidable]int {
	set := make(map[*physics.Collidable]int, len(objects))
	for _, obj := range objects {
		set[obj]++
	}
	return set
}

func iterations(full, short int) int {
	if testing.Short() {
		return short
	}
	return full
}
