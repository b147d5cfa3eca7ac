package adscene

// SceneNode is an element of a layer: either an *EntityNode or a
// *RegionNode. The set is closed; the traversal panics on anything else.
type SceneNode interface {
	sceneNode()
}

// EntityNode places an Entity in a layer.
type EntityNode struct {
	Entity Entity
}

// RegionNode places a Region in a layer.
type RegionNode struct {
	Region *Region
}

func (*EntityNode) sceneNode() {}
func (*RegionNode) sceneNode() {}

// Layer is an ordered list of scene nodes drawn together. Layers of different
// sizes scroll at different rates when parallax is enabled.
type Layer struct {
	Name   string
	Width  int
	Height int
	Active bool
	// Main marks the layer that defines the scene's size and walkability.
	Main bool
	// CloseUp layers are modal: a shield is drawn over everything before them.
	CloseUp bool

	nodes []SceneNode
}

// NewLayer creates an active, empty layer.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{Name: name, Width: width, Height: height, Active: true}
}

// AddEntity appends an entity node and returns it.
func (l *Layer) AddEntity(e Entity) *EntityNode {
	n := &EntityNode{Entity: e}
	l.nodes = append(l.nodes, n)
	return n
}

// AddRegion appends a region node and returns it.
func (l *Layer) AddRegion(r *Region) *RegionNode {
	n := &RegionNode{Region: r}
	l.nodes = append(l.nodes, n)
	return n
}

// InsertNode inserts a node at index, shifting later nodes back.
func (l *Layer) InsertNode(node SceneNode, index int) {
	if index < 0 || index > len(l.nodes) {
		panic("adscene: node index out of range")
	}
	l.nodes = append(l.nodes, nil)
	copy(l.nodes[index+1:], l.nodes[index:])
	l.nodes[index] = node
}

// RemoveNode detaches node from the layer. No-op if absent.
func (l *Layer) RemoveNode(node SceneNode) {
	for i, n := range l.nodes {
		if n == node {
			copy(l.nodes[i:], l.nodes[i+1:])
			l.nodes[len(l.nodes)-1] = nil
			l.nodes = l.nodes[:len(l.nodes)-1]
			return
		}
	}
}

// Nodes returns the node list. The returned slice MUST NOT be mutated.
func (l *Layer) Nodes() []SceneNode {
	return l.nodes
}

// Region returns the first region with the given name, or nil.
func (l *Layer) Region(name string) *Region {
	for _, n := range l.nodes {
		if rn, ok := n.(*RegionNode); ok && rn.Region.Name == name {
			return rn.Region
		}
	}
	return nil
}

// Entity returns the first entity with the given name, or nil.
func (l *Layer) Entity(name string) Entity {
	for _, n := range l.nodes {
		if en, ok := n.(*EntityNode); ok && en.Entity.Name() == name {
			return en.Entity
		}
	}
	return nil
}
