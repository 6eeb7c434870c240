package resource

// Pool is the per-deserialization identity pool: an ordered arena of
// resources plus a (type,id) -> index lookup, local to one deserialization
// scope. It is not safe for concurrent use; a deserialization owns its pool
// exclusively (see the concurrency model).
type Pool struct {
	resources []Resource
	byTypeID  map[string]int
}

// NewPool creates an empty pool, optionally seeded with mapping targets
// (caller-supplied pre-existing resources a deserialization should map its
// result onto).
func NewPool(seed ...Resource) *Pool {
	p := &Pool{byTypeID: make(map[string]int)}
	for _, r := range seed {
		p.Add(r)
	}
	return p
}

func key(resourceType, id string) string {
	return resourceType + "\x00" + id
}

// Add appends r to the pool, indexing it by (type,id) if it already has an
// id.
func (p *Pool) Add(r Resource) {
	p.resources = append(p.resources, r)
	if r.ID() != "" {
		p.byTypeID[key(r.ResourceType(), r.ID())] = len(p.resources) - 1
	}
}

// index (re)records r's position under its current (type,id), used after a
// pooled mapping target is assigned a server-side id.
func (p *Pool) index(r Resource) {
	for i, existing := range p.resources {
		if existing == r {
			p.byTypeID[key(r.ResourceType(), r.ID())] = i
			return
		}
	}
}

// Get returns the pooled resource matching (resourceType, id), if any.
func (p *Pool) Get(resourceType, id string) (Resource, bool) {
	i, ok := p.byTypeID[key(resourceType, id)]
	if !ok {
		return nil, false
	}
	return p.resources[i], true
}

// NthOfType returns the index-th resource of resourceType in pool order
// (ignoring resources of other types), supporting the positional mapping
// of server responses onto caller-supplied targets whose ids aren't known
// yet.
func (p *Pool) NthOfType(resourceType string, index int) (Resource, bool) {
	n := -1
	for _, r := range p.resources {
		if r.ResourceType() != resourceType {
			continue
		}
		n++
		if n == index {
			return r, true
		}
	}
	return nil, false
}

// All returns every resource currently in the pool, in insertion order.
func (p *Pool) All() []Resource {
	return p.resources
}

// Len returns the number of resources in the pool.
func (p *Pool) Len() int {
	return len(p.resources)
}
