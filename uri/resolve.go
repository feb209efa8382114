package uri

// Resolve returns the target URI of ref relative to the base URI u,
// see RFC 3986 Section 5.2.2. A URI reference is returned unchanged.
//
// Unlike the RFC, a reference with the empty path and no fragment keeps the fragment of the base.
func (u *URI) Resolve(ref Reference) *URI {
	if r, ok := ref.(*URI); ok {
		return r
	}

	var t Parts
	var rq *Query
	if q, ok := ref.Query(); ok {
		rq = &q
	}
	var rf *Fragment
	if f, ok := ref.Fragment(); ok {
		rf = &f
	}
	rp := ref.Path()

	if a, ok := ref.Authority(); ok {
		t.Authority, t.Path, t.Query, t.Fragment = &a, rp, rq, rf
		return NewURI(u.scheme, &t)
	}

	if u.hasAuth {
		a := u.auth
		t.Authority = &a
	}
	switch {
	case rp.IsEmpty():
		t.Path = u.path
		t.Query, t.Fragment = rq, rf
		if rq == nil && u.hasQuery {
			q := u.query
			t.Query = &q
		}
		if rf == nil && u.hasFrag {
			f := u.frag
			t.Fragment = &f
		}
	case rp.IsAbsolute():
		t.Path, t.Query, t.Fragment = rp, rq, rf
	default:
		t.Path = merge(u.path, rp, u.hasAuth || u.path.abs)
		t.Query, t.Fragment = rq, rf
	}
	return NewURI(u.scheme, &t)
}
