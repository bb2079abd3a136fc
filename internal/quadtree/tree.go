package quadtree

import "voxelstream/internal/ivec"

// Handle is an index into a Tree's node arena. Index 0 holds an unused
// sentinel and the root is allocated at index 1; an absent parent or
// child is marked with noHandle (-1).
type Handle int

const noHandle Handle = -1

// NodeStatus tracks where a leaf sits in the generation pipeline: a leaf
// starts Pending, moves to Queued once the scheduler has accepted its
// task, and Ready once a mesh exists to show.
type NodeStatus int

const (
	StatusPending NodeStatus = iota
	StatusQueued
	StatusReady
)

// Node is one quadtree entry: either a leaf (awaiting or holding a
// generated chunk) or a branch with four children.
type Node struct {
	Parent   Handle
	Children [4]Handle // noHandle per slot until Subdivide
	Pos      LodPosition
	IsLeaf   bool
	Status   NodeStatus

	// ChildCount counts children that have reached StatusReady, matching
	// child_count in quad_tree_data.rs's add_to_parent. Once it reaches
	// 4, MeshHidden is set — this only tells the host to stop drawing
	// the branch's own coarser mesh in favor of its children's finer
	// ones. It has no bearing on whether the branch is structurally
	// eligible to Merge; that is a separate, distance-driven decision
	// (see mergePass).
	ChildCount int
	MeshHidden bool
}

// Tree is one horizontally-rooted quadtree, covering one ChunkTreePos
// column. Origin is the tree's absolute chunk-grid position at the
// tree's coarsest LOD (original_source's ChunkTreePos).
type Tree struct {
	Origin ivec.IVec2
	MaxLod int

	nodes []Node
	root  Handle
}

// NewTree creates a tree with a single root leaf at maxLod.
func NewTree(origin ivec.IVec2, maxLod int) *Tree {
	t := &Tree{Origin: origin, MaxLod: maxLod}
	t.nodes = append(t.nodes, Node{}) // index 0 unused sentinel
	root := t.alloc(Node{
		Parent: noHandle,
		Pos:    LodPosition{Lod: maxLod, X: 0, Z: 0},
		IsLeaf: true,
	})
	t.root = root
	return t
}

func (t *Tree) alloc(n Node) Handle {
	n.Children = [4]Handle{noHandle, noHandle, noHandle, noHandle}
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

// Root returns the tree's root handle.
func (t *Tree) Root() Handle { return t.root }

// Node returns a pointer to the node at h for in-place mutation. Only the
// main loop ever calls this — the tree is never touched from a worker
// goroutine.
func (t *Tree) Node(h Handle) *Node { return &t.nodes[h] }

// Leaves appends every current leaf handle to out and returns it, in
// depth-first order from the root (children in Quadrant order). The
// handles are not sorted by LOD; subdividePass sorts its own copy.
func (t *Tree) Leaves(out []Handle) []Handle {
	var walk func(h Handle)
	walk = func(h Handle) {
		n := &t.nodes[h]
		if n.IsLeaf {
			out = append(out, h)
			return
		}
		for _, c := range n.Children {
			if c != noHandle {
				walk(c)
			}
		}
	}
	walk(t.root)
	return out
}

// Subdivide turns a leaf into a branch with four finer leaf children.
// No-op if h is already a branch or at LOD 1 (the finest level).
func (t *Tree) Subdivide(h Handle) {
	n := &t.nodes[h]
	if !n.IsLeaf || n.Pos.Lod <= 1 {
		return
	}

	for q := Quadrant(0); q < 4; q++ {
		child := t.alloc(Node{
			Parent: h,
			Pos:    n.Pos.Child(q),
			IsLeaf: true,
		})
		t.nodes[h].Children[q] = child
	}
	t.nodes[h].IsLeaf = false
	t.nodes[h].ChildCount = 0
	t.nodes[h].MeshHidden = false
}

// Merge collapses a branch back into a single leaf, discarding its
// children. The caller (mergePass) is responsible for only calling this
// once the node's required LOD has risen back to its own — Merge itself
// only guards against merging a node that is already a leaf.
func (t *Tree) Merge(h Handle) {
	n := &t.nodes[h]
	if n.IsLeaf {
		return
	}
	n.Children = [4]Handle{noHandle, noHandle, noHandle, noHandle}
	n.IsLeaf = true
	n.Status = StatusPending
	n.ChildCount = 0
	n.MeshHidden = false
}

// ReportReady marks h Ready and, if h has a parent, increments the
// parent's ChildCount; once every child has reported in, the parent's
// coarser mesh is marked hidden in favor of its children's finer ones.
func (t *Tree) ReportReady(h Handle) {
	n := &t.nodes[h]
	n.Status = StatusReady
	if n.Parent == noHandle {
		return
	}
	parent := &t.nodes[n.Parent]
	parent.ChildCount++
	if parent.ChildCount >= 4 {
		parent.MeshHidden = true
	}
}
