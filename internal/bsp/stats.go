package bsp

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

const ErrTypeCorruptTree = "bsp_corrupt_tree"

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes        int `json:"nodes"`
	Leaves       int `json:"leaves"`
	Depth        int `json:"depth"`
	Objects      int `json:"objects"`
	Unsplittable int `json:"unsplittable"`
	MaxLeafSize  int `json:"max_leaf_size"`
}

func (t *Tree) Stats() Stats {
	s := Stats{Objects: len(t.objects)}

	t.Walk(func(n *Node, depth int) bool {
		s.Nodes++
		s.Unsplittable += len(n.Unsplittable)
		if depth > s.Depth {
			s.Depth = depth
		}
		if n.IsLeaf() {
			s.Leaves++
			if size := len(n.Objects) + len(n.Unsplittable); size > s.MaxLeafSize {
				s.MaxLeafSize = size
			}
		}
		return true
	})
	return s
}

// Validate checks that every object is stored exactly once in a list that
// queries test: a node's unsplittable list or a leaf's object list.
func (t *Tree) Validate() error {
	seen := make([]int, len(t.objects))
	var err error

	t.Walk(func(n *Node, depth int) bool {
		lists := [][]int32{n.Unsplittable}
		if n.IsLeaf() {
			lists = append(lists, n.Objects)
		} else if int(n.Front) >= len(t.nodes) || int(n.Back) >= len(t.nodes) {
			err = errors.New("child index out of range").
				WithType(ErrTypeCorruptTree).
				WithTag("front", n.Front).
				WithTag("back", n.Back)
			return false
		}

		for _, list := range lists {
			for _, i := range list {
				if i < 0 || int(i) >= len(t.objects) {
					err = errors.New("object index out of range").
						WithType(ErrTypeCorruptTree).
						WithTag("index", i)
					return false
				}
				seen[i]++
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	for i, count := range seen {
		if count != 1 {
			return errors.New("object not stored exactly once").
				WithType(ErrTypeCorruptTree).
				WithTag("name", t.objects[i].Name).
				WithTag("count", count)
		}
	}
	return nil
}
