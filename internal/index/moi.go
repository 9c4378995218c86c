package index

import "github.com/zeebo/xxh3"

// MOI is the multi-object index: an open-addressed table keyed by the
// pair (predicate, subject), valued by the full set of objects recorded
// for that pair. It is populated lazily, on the second distinct object
// inserted for a (predicate, subject) pair (spec.md §4.3/§4.4).
//
// The bucket-chained design in restic's internal/repository.indexMap
// (composite key, power-of-two bucket count, grow-by-doubling) is
// adapted here to open addressing so it shares intern.Table's probing
// style within this module.
type MOI struct {
	buckets []moiEntry
	count   int
}

type moiEntry struct {
	used    bool
	pred    uint32
	subj    uint32
	objects map[uint32]struct{}
}

const moiInitialCapacity = 16
const moiMaxLoadFactor = 0.7

// NewMOI creates an empty multi-object index.
func NewMOI() *MOI {
	return &MOI{buckets: make([]moiEntry, moiInitialCapacity)}
}

func moiHash(pred, subj uint32) uint64 {
	var buf [8]byte
	buf[0] = byte(pred)
	buf[1] = byte(pred >> 8)
	buf[2] = byte(pred >> 16)
	buf[3] = byte(pred >> 24)
	buf[4] = byte(subj)
	buf[5] = byte(subj >> 8)
	buf[6] = byte(subj >> 16)
	buf[7] = byte(subj >> 24)
	return xxh3.Hash(buf[:])
}

func (m *MOI) find(pred, subj uint32) (idx int, found bool) {
	mask := uint64(len(m.buckets) - 1)
	i := moiHash(pred, subj) & mask
	for {
		e := &m.buckets[i]
		if !e.used {
			return int(i), false
		}
		if e.pred == pred && e.subj == subj {
			return int(i), true
		}
		i = (i + 1) & mask
	}
}

func (m *MOI) grow() {
	old := m.buckets
	m.buckets = make([]moiEntry, len(old)*2)
	mask := uint64(len(m.buckets) - 1)
	for _, e := range old {
		if !e.used {
			continue
		}
		i := moiHash(e.pred, e.subj) & mask
		for m.buckets[i].used {
			i = (i + 1) & mask
		}
		m.buckets[i] = e
	}
}

// EnsureSeeded returns the object set for (pred, subj), creating it
// (seeded with primary) if it does not already exist. Used on the
// second-distinct-object transition described in spec.md §4.4.
func (m *MOI) EnsureSeeded(pred, subj, primary uint32) map[uint32]struct{} {
	if float64(m.count+1) > float64(len(m.buckets))*moiMaxLoadFactor {
		m.grow()
	}
	idx, found := m.find(pred, subj)
	if found {
		return m.buckets[idx].objects
	}
	objs := map[uint32]struct{}{primary: {}}
	m.buckets[idx] = moiEntry{used: true, pred: pred, subj: subj, objects: objs}
	m.count++
	return objs
}

// Get returns the object set for (pred, subj), and whether one has been
// populated (i.e. a second distinct object was ever inserted).
func (m *MOI) Get(pred, subj uint32) (map[uint32]struct{}, bool) {
	idx, found := m.find(pred, subj)
	if !found {
		return nil, false
	}
	return m.buckets[idx].objects, true
}

// Add inserts obj into the set for (pred, subj), which must already
// exist (callers seed via EnsureSeeded first).
func (m *MOI) Add(pred, subj, obj uint32) {
	idx, found := m.find(pred, subj)
	if !found {
		return
	}
	m.buckets[idx].objects[obj] = struct{}{}
}
