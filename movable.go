package adscene

// Movable is an object that moves around a scene: actors, props and anything
// else drawn in depth order rather than at a fixed layer position.
type Movable interface {
	Entity
	Spatial3D

	// Position is the object's feet position in scene coordinates.
	Position() Point
	// Height is the visual height, used to aim the camera at the object's
	// center instead of its feet.
	Height() int

	// StickRegion is the region whose content pass draws this object, or nil
	// for free objects sorted into the scene by Y.
	StickRegion() *Region
	// BlockRegion is the object's current exclusion polygon, or nil.
	BlockRegion() *Region
	// WaypointGroup is the object's current "walk around me" markers, or nil.
	WaypointGroup() *WaypointGroup
}

// sortByY stable-sorts objects ascending by Y position (insertion sort).
func sortByY(objs []Movable) {
	for i := 1; i < len(objs); i++ {
		key := objs[i]
		ky := key.Position().Y
		j := i - 1
		for j >= 0 && objs[j].Position().Y > ky {
			objs[j+1] = objs[j]
			j--
		}
		objs[j+1] = key
	}
}
