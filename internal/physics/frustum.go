package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling. Plane normals
// point into the frustum.
type Frustum struct {
	Planes [6]Plane // left, right, bottom, top, near, far
}

// FrustumFromCamera builds the frustum of a camera for a viewport aspect ratio.
func FrustumFromCamera(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}

	// Combine view and projection: VP = P * V
	return FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// FrustumFromMatrix extracts frustum planes from a view-projection matrix
// Uses the Gribb/Hartmann method for plane extraction
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	var f Frustum

	// Left plane: row4 + row1
	f.Planes[0] = normalizePlane(Plane{
		Normal: rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8},
		D:      vp.M15 + vp.M12,
	})

	// Right plane: row4 - row1
	f.Planes[1] = normalizePlane(Plane{
		Normal: rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8},
		D:      vp.M15 - vp.M12,
	})

	// Bottom plane: row4 + row2
	f.Planes[2] = normalizePlane(Plane{
		Normal: rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9},
		D:      vp.M15 + vp.M13,
	})

	// Top plane: row4 - row2
	f.Planes[3] = normalizePlane(Plane{
		Normal: rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9},
		D:      vp.M15 - vp.M13,
	})

	// Near plane: row4 + row3
	f.Planes[4] = normalizePlane(Plane{
		Normal: rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10},
		D:      vp.M15 + vp.M14,
	})

	// Far plane: row4 - row3
	f.Planes[5] = normalizePlane(Plane{
		Normal: rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10},
		D:      vp.M15 - vp.M14,
	})

	return f
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.Planes {
		// If sphere is completely behind any plane, it's outside
		if f.Planes[i].Distance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := range f.Planes {
		if f.Planes[i].Distance(point) < 0 {
			return false
		}
	}
	return true
}

// outsidePoints reports whether every point lies behind a single plane.
func (f Frustum) outsidePoints(points []rl.Vector3) bool {
	for _, p := range f.Planes {
		behind := true
		for _, v := range points {
			if p.Distance(v) >= 0 {
				behind = false
				break
			}
		}
		if behind {
			return true
		}
	}
	return false
}
