package world

// Change is delivered to subscribers after the grid is modified.
type Change struct {
	Revision uint64 // Increases by one per notification
	At       Coord  // Edited cell when Bulk is false
	Bulk     bool   // Several cells changed, or the change came from a batch
}

type subscriber struct {
	id int
	fn func(Change)
}

// notifier delivers change signals in edit order and coalesces batched edits.
type notifier struct {
	subs     []subscriber
	nextID   int
	revision uint64
	depth    int
	pending  bool
}

// Subscribe registers fn to receive every change. The returned func unsubscribes.
func (g *Grid) Subscribe(fn func(Change)) (cancel func()) {
	n := &g.notes
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Revision returns the number of notifications raised so far.
func (g *Grid) Revision() uint64 {
	return g.notes.revision
}

// Batch runs fn and raises at most one notification for all edits inside it.
// Batches nest; only the outermost one notifies.
func (g *Grid) Batch(fn func()) {
	n := &g.notes
	n.depth++
	defer func() {
		n.depth--
		if n.depth == 0 && n.pending {
			n.pending = false
			g.emit(Change{Bulk: true})
		}
	}()
	fn()
}

// didChange records an edit at c, notifying now or at the end of the batch.
func (g *Grid) didChange(c Coord, bulk bool) {
	if g.notes.depth > 0 {
		g.notes.pending = true
		return
	}
	g.emit(Change{At: c, Bulk: bulk})
}

func (g *Grid) emit(change Change) {
	n := &g.notes
	n.revision++
	change.Revision = n.revision
	for _, s := range append([]subscriber(nil), n.subs...) {
		s.fn(change)
	}
}
