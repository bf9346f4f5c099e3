package reconcile

// FindCategory returns the id of the first category named exactly name.
func FindCategory(name string, snap *Snapshot) (string, bool) {
	return find(snap, func(r Resource) bool {
		return r.IsCategory() && r.Name == name
	})
}

// FindChannel returns the id of the first text channel named exactly name
// whose parent is categoryID.
func FindChannel(name, categoryID string, snap *Snapshot) (string, bool) {
	return find(snap, func(r Resource) bool {
		return r.IsTextChannel() && r.Name == name && r.ParentID == categoryID
	})
}

func find(snap *Snapshot, match func(Resource) bool) (string, bool) {
	for _, id := range snap.order {
		if match(snap.resources[id]) {
			return id, true
		}
	}
	return "", false
}
