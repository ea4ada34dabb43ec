package core

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/bits-and-blooms/bloom/v3"
)

// DuplicateReporter is notified of every document RemoveDuplicates deletes
// as a duplicate. Implementations typically write a line to a log or a
// collector; core depends only on this interface, never on a concrete sink.
type DuplicateReporter interface {
	ReportDuplicate(id int)
}

// RemoveDuplicates scans every indexed document in ascending id order and
// removes any whose surviving (non-stop) word set exactly matches one
// already seen at a smaller id, reporting each removal through reporter.
// The smallest id in a duplicate group always survives. A bloom filter
// gates the expensive exact-set comparison: most documents are not
// duplicates of anything, and a negative bloom test skips the comparison
// entirely.
func RemoveDuplicates(idx *Index, reporter DuplicateReporter) []int {
	ids := idx.DocIDs()
	filter := bloom.NewWithEstimates(uint(len(ids))+1, 0.01)
	seen := make(map[uint64][][]wordHandle)

	var removed []int
	for _, id := range ids {
		handles := idx.wordHandlesSorted(id)
		fp := fingerprint(handles)
		key := fingerprintBytes(fp)

		duplicate := false
		if filter.Test(key) {
			for _, candidate := range seen[fp] {
				if equalHandles(candidate, handles) {
					duplicate = true
					break
				}
			}
		}

		if duplicate {
			reporter.ReportDuplicate(id)
			idx.RemoveDocument(id)
			removed = append(removed, id)
			continue
		}

		filter.Add(key)
		seen[fp] = append(seen[fp], handles)
	}
	return removed
}

func fingerprint(handles []wordHandle) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, wh := range handles {
		binary.LittleEndian.PutUint32(buf, uint32(wh))
		h.Write(buf)
	}
	return h.Sum64()
}

func fingerprintBytes(fp uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, fp)
	return buf
}

func equalHandles(a, b []wordHandle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
