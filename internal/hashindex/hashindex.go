// Package hashindex implements the extendible hash table used to build
// an in-memory probe side for hash joins (internal/executor's Grace
// hash join partitions).
package hashindex

const (
	// BucketSize mirrors include/cs165_api.h's BUCKET_SIZE.
	BucketSize     = 511
	initialNumBits = 2
)

// bucket holds up to BucketSize key/value pairs. numPtrs counts how
// many directory slots currently point at this bucket (more than one
// means the bucket hasn't been split since the last directory
// doubling).
type bucket struct {
	keys, vals []int32
	numPtrs    int
}

// Table is an extendible hash table: a directory of 2^numBits bucket
// pointers, where multiple directory slots may share one unsplit
// bucket.
type Table struct {
	numBits int
	buckets []*bucket
}

// New creates an extendible hash table with the original's initial
// directory size of 2^2 = 4 buckets.
func New() *Table {
	t := &Table{}
	t.Init()
	return t
}

func (t *Table) Init() {
	t.numBits = initialNumBits
	numBuckets := twoPower(t.numBits)
	t.buckets = make([]*bucket, numBuckets)
	for i := range t.buckets {
		t.buckets[i] = &bucket{numPtrs: 1}
	}
}

func twoPower(power int) int { return 1 << uint(power) }

// hashFunction is the sdbm-style hash from the original's hash_function,
// applied over the little-endian bytes of key rather than treating key
// as a NUL-terminated byte string as the C code's pointer cast did
// (that cast stopped at the first zero byte of a 4-byte int, an
// artifact of reusing a string-hash routine on binary data - not
// reproduced here since it would silently truncate every key whose
// low byte is zero).
func hashFunction(key int32) uint64 {
	var hash uint64
	u := uint32(key)
	for shift := 0; shift < 32; shift += 8 {
		b := byte(u >> shift)
		hash = uint64(b) + (hash << 6) + (hash << 16) - hash
	}
	return hash
}

func bucketNum(hashVal uint64, numBits int) int {
	mask := uint64(twoPower(numBits) - 1)
	return int(hashVal & mask)
}

func (t *Table) increaseNumBits() {
	oldNumBuckets := twoPower(t.numBits)
	newNumBuckets := 2 * oldNumBuckets

	buckets := make([]*bucket, newNumBuckets)
	copy(buckets, t.buckets)
	for i := oldNumBuckets; i < newNumBuckets; i++ {
		old := buckets[i-oldNumBuckets]
		buckets[i] = old
		old.numPtrs++
	}
	t.buckets = buckets
	t.numBits++
}

// splitBucket redistributes a full bucket's entries, doubling the
// directory first when the bucket is owned by exactly one slot (so
// there is no second slot to hand entries to) - grounded on
// split_bucket's num_ptrs == 1 check. Every further slot that shared
// the bucket gets a fresh bucket of its own.
func (t *Table) splitBucket(numBucket int) {
	b := t.buckets[numBucket]

	if b.numPtrs == 1 {
		t.increaseNumBits()
	}

	numBucketPtrs := 0
	for i := range t.buckets {
		if t.buckets[i] == b {
			numBucketPtrs++
			if numBucketPtrs > 1 {
				t.buckets[i] = &bucket{numPtrs: 1}
			}
		}
	}

	allKeys := append([]int32{}, b.keys...)
	allVals := append([]int32{}, b.vals...)

	b.keys = nil
	b.vals = nil
	b.numPtrs = 1

	for i := range allKeys {
		target := t.buckets[bucketNum(hashFunction(allKeys[i]), t.numBits)]
		target.keys = append(target.keys, allKeys[i])
		target.vals = append(target.vals, allVals[i])
	}
}

// getBucket returns the bucket key currently maps to. When inserting is
// true and the directory-resident bucket is full, it is split first
// and the post-split bucket (found at the same key with the new,
// larger numBits) is returned.
func (t *Table) getBucket(key int32, inserting bool) *bucket {
	hashVal := hashFunction(key)
	numBucket := bucketNum(hashVal, t.numBits)
	b := t.buckets[numBucket]

	if !inserting || len(b.keys) != BucketSize {
		return b
	}

	t.splitBucket(numBucket)
	newNumBucket := bucketNum(hashVal, t.numBits)
	return t.buckets[newNumBucket]
}

// Insert adds a key/val pair, splitting buckets as needed.
func (t *Table) Insert(key, val int32) {
	b := t.getBucket(key, true)
	b.keys = append(b.keys, key)
	b.vals = append(b.vals, val)
}

// Probe returns every value stored under key - duplicate keys are
// tolerated and all of their values are returned, matching hash_probe's
// accumulate-every-match behavior (a hash join's build side may legally
// contain repeated join-key values).
func (t *Table) Probe(key int32) []int32 {
	b := t.getBucket(key, false)

	var out []int32
	for i, k := range b.keys {
		if k == key {
			out = append(out, b.vals[i])
		}
	}
	return out
}
