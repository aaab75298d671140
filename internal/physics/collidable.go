package physics

// Collidable is a named piece of level geometry.
//
// CollisionEnabled may be toggled after a tree is built; queries check it on
// every test. IsStatic keeps the object out of partitioning: the tree stores
// it at the node where it is first seen instead of pushing it down.
type Collidable struct {
	Name             string
	Boundary         Boundary
	CollisionEnabled bool
	IsStatic         bool
}

// NewCollidable creates an enabled, non-static collidable.
func NewCollidable(name string, b Boundary) *Collidable {
	return &Collidable{Name: name, Boundary: b, CollisionEnabled: true}
}

// Hits reports whether the collidable takes part in collision and overlaps s.
func (c *Collidable) Hits(s Sphere) bool {
	return c.CollisionEnabled && c.Boundary.OverlapsSphere(s)
}
