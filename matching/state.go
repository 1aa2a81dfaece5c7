package matching

// levelState is the phase-local classification of a vertex.
type levelState uint8

const (
	// unleveled: not part of the current layering.
	unleveled levelState = iota
	// leveled: stored in exactly one level with a live predecessor count.
	leveled
	// pruned: removed from the layering for the rest of the phase.
	pruned
)

// phaseState is reset at the start of every phase and cleared when the
// computation ends. level and indegree are meaningful only while leveled.
type phaseState struct {
	state    levelState
	level    int
	indegree int
}

func (g *Graph) clearLevels() {
	for i := range g.vertices {
		g.vertices[i].phase = phaseState{}
	}
}

func (g *Graph) setLevel(id VertexID, level, indegree int) {
	g.vertices[id].phase = phaseState{state: leveled, level: level, indegree: indegree}
}

// level reports the level of id and whether it is currently leveled.
func (g *Graph) level(id VertexID) (int, bool) {
	ps := g.vertices[id].phase
	if ps.state != leveled {
		return 0, false
	}

	return ps.level, true
}

func (g *Graph) isUnleveled(id VertexID) bool {
	return g.vertices[id].phase.state == unleveled
}

func (g *Graph) prune(id VertexID) {
	g.vertices[id].phase = phaseState{state: pruned}
}
