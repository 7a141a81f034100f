package muon

// poolItem maps an identifier to a retained-state slot. A pool is a
// fixed-capacity LRU: slots are recycled by oldest last-update frame.
type poolItem struct {
	id         ID
	lastUpdate int
}

// poolInit claims the least-recently-updated slot for id and stamps it with
// the current frame. Ties break on the lowest index. If every slot was
// already touched this frame the pool is exhausted and poolInit panics;
// callers must size the pool accordingly.
func (ctx *Context) poolInit(items []poolItem, id ID) int {
	n, f := -1, ctx.frame
	for i := range items {
		if items[i].lastUpdate < f {
			f = items[i].lastUpdate
			n = i
		}
	}
	expect(n > -1, "pool exhausted")
	items[n].id = id
	ctx.poolUpdate(items, n)
	return n
}

// poolGet returns the slot index holding id, or -1.
func (ctx *Context) poolGet(items []poolItem, id ID) int {
	for i := range items {
		if items[i].id == id {
			return i
		}
	}
	return -1
}

func (ctx *Context) poolUpdate(items []poolItem, idx int) {
	items[idx].lastUpdate = ctx.frame
}
