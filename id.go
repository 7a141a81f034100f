package muon

// ID is a 32-bit widget identifier. The zero value means "no widget".
// Identifiers are frame-stable: hashing the same bytes at the same id-stack
// state always yields the same value.
type ID uint32

// 32bit fnv-1a hash
const hashInitial ID = 2166136261

func fnv1a(h ID, data []byte) ID {
	for _, b := range data {
		h = (h ^ ID(b)) * 16777619
	}
	return h
}

// GetID hashes data seeded by the top of the id stack, so identical labels
// under different parents still produce distinct identifiers.
func (ctx *Context) GetID(data []byte) ID {
	res := hashInitial
	if n := len(ctx.idStack); n > 0 {
		res = ctx.idStack[n-1]
	}
	res = fnv1a(res, data)
	ctx.lastID = res
	return res
}

// GetIDString is GetID for a string seed, avoiding the byte-slice copy.
func (ctx *Context) GetIDString(s string) ID {
	res := hashInitial
	if n := len(ctx.idStack); n > 0 {
		res = ctx.idStack[n-1]
	}
	for i := 0; i < len(s); i++ {
		res = (res ^ ID(s[i])) * 16777619
	}
	ctx.lastID = res
	return res
}

// PushID pushes the id computed from data onto the id stack, scoping the
// identifiers of everything declared until the matching PopID.
func (ctx *Context) PushID(data []byte) {
	pushStack(&ctx.idStack, ctx.GetID(data), "id")
}

// PushIDString is PushID for a string seed.
func (ctx *Context) PushIDString(s string) {
	pushStack(&ctx.idStack, ctx.GetIDString(s), "id")
}

func (ctx *Context) PopID() {
	popStack(&ctx.idStack, "id")
}

// LastID returns the identifier computed by the most recent GetID call
// (every widget computes one).
func (ctx *Context) LastID() ID { return ctx.lastID }
