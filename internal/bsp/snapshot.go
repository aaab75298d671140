package bsp

import (
	"io"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/segmentio/encoding/json"
)

// Snapshot is a serializable view of a tree, used for debugging dumps.
type Snapshot struct {
	LevelID  string           `json:"level_id,omitempty"`
	Bound    [2][3]float32    `json:"bound"`
	MaxDepth int              `json:"max_depth"`
	Stats    Stats            `json:"stats"`
	Objects  []SnapshotObject `json:"objects"`
	Nodes    []SnapshotNode   `json:"nodes"`
}

type SnapshotObject struct {
	Name             string        `json:"name"`
	Kind             string        `json:"kind"`
	Bounds           [2][3]float32 `json:"bounds"`
	CollisionEnabled bool          `json:"collision_enabled"`
	IsStatic         bool          `json:"is_static"`
}

// SnapshotNode mirrors Node. Leaf nodes have Front and Back set to -1.
type SnapshotNode struct {
	Axis         int           `json:"axis"`
	At           float32       `json:"at"`
	Box          [2][3]float32 `json:"box"`
	Front        int32         `json:"front"`
	Back         int32         `json:"back"`
	Objects      []int32       `json:"objects,omitempty"`
	Unsplittable []int32       `json:"unsplittable,omitempty"`
}

// Snapshot captures the tree. levelID is optional.
func (t *Tree) Snapshot(levelID string) Snapshot {
	s := Snapshot{
		LevelID:  levelID,
		Bound:    [2][3]float32{vec(t.bound.Min), vec(t.bound.Max)},
		MaxDepth: t.maxDepth,
		Stats:    t.Stats(),
		Objects:  make([]SnapshotObject, 0, len(t.objects)),
		Nodes:    make([]SnapshotNode, 0, len(t.nodes)),
	}

	for _, obj := range t.objects {
		b := obj.Boundary.Bounds()
		s.Objects = append(s.Objects, SnapshotObject{
			Name:             obj.Name,
			Kind:             obj.Boundary.Kind().String(),
			Bounds:           [2][3]float32{vec(b.Min), vec(b.Max)},
			CollisionEnabled: obj.CollisionEnabled,
			IsStatic:         obj.IsStatic,
		})
	}

	for _, n := range t.nodes {
		s.Nodes = append(s.Nodes, SnapshotNode{
			Axis:         n.Axis,
			At:           -n.Plane.D,
			Box:          [2][3]float32{vec(n.Box.Min), vec(n.Box.Max)},
			Front:        n.Front,
			Back:         n.Back,
			Objects:      n.Objects,
			Unsplittable: n.Unsplittable,
		})
	}
	return s
}

// WriteSnapshot encodes the tree snapshot as indented JSON.
func (t *Tree) WriteSnapshot(w io.Writer, levelID string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Snapshot(levelID))
}

func vec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
