package quadtree

// MinLodFunc returns the finest LOD any loader requires for the chunk at
// a given LodPosition — the caller closes over the active loaders and
// the tree's origin/chunk size.
type MinLodFunc func(pos LodPosition) int

// Tick runs one subdivide-then-merge pass over the tree, matching
// chunk_node.rs's recurse_chunk_nodes ascending-by-LOD subdivide order
// followed by quad_tree_data.rs's descending merge pass — both run
// within the same tick here rather than across separate Bevy systems,
// since this engine has one single-threaded tick loop instead of ECS
// scheduling.
func (t *Tree) Tick(minLod MinLodFunc) {
	t.subdividePass(minLod)
	t.mergePass(minLod)
}

// subdividePass visits leaves ascending by LOD (finest first) and
// subdivides any leaf whose required LOD is finer than its current LOD.
func (t *Tree) subdividePass(minLod MinLodFunc) {
	var leaves []Handle
	leaves = t.Leaves(leaves[:0])

	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			if t.nodes[leaves[j]].Pos.Lod < t.nodes[leaves[i]].Pos.Lod {
				leaves[i], leaves[j] = leaves[j], leaves[i]
			}
		}
	}

	for _, h := range leaves {
		n := &t.nodes[h]
		want := minLod(n.Pos)
		if want < n.Pos.Lod {
			t.Subdivide(h)
		}
	}
}

// mergePass visits branches descending by LOD (coarsest first, mirroring
// add_to_parent's recursive parent walk toward depth 1) and merges any
// branch whose required LOD (the finest any observer still wants there)
// has risen back to equal the branch's own LOD — i.e. no observer needs
// this node any finer than it already is. This is independent of
// whether the branch's children have finished generating; readiness
// only controls whether the branch's own coarser mesh is hidden (see
// ReportReady), not whether it structurally collapses.
func (t *Tree) mergePass(minLod MinLodFunc) {
	var branches []Handle
	t.collectBranches(t.root, &branches)

	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			if t.nodes[branches[j]].Pos.Lod > t.nodes[branches[i]].Pos.Lod {
				branches[i], branches[j] = branches[j], branches[i]
			}
		}
	}

	for _, h := range branches {
		n := &t.nodes[h]
		if minLod(n.Pos) == n.Pos.Lod {
			t.Merge(h)
		}
	}
}

func (t *Tree) collectBranches(h Handle, out *[]Handle) {
	n := &t.nodes[h]
	if n.IsLeaf {
		return
	}
	*out = append(*out, h)
	for _, c := range n.Children {
		if c != noHandle {
			t.collectBranches(c, out)
		}
	}
}
