// Package party defines the identifiers used to address agents taking
// part in a cooperative fingerprinting round.
package party

import (
	"fmt"
	"sort"
)

// ID names a single agent. IDs are opaque, non-empty strings assigned
// out of band when a topology is provisioned; the fingerprinting
// protocol never interprets their contents beyond equality and
// ordering.
type ID string

// Scalar is the share index an agent's ID maps to when evaluating its
// Shamir polynomial share: x=1 for the first agent, x=2 for the
// second, and so on, assigned by an ID's rank within its topology.
// Index zero is reserved for the reconstructed secret itself and is
// never a valid agent scalar (§4.6).
type Scalar uint32

// Empty reports whether id carries no identifying content.
func (id ID) Empty() bool { return id == "" }

func (id ID) String() string { return string(id) }

// IDSlice is a set of party IDs kept in sorted order, the same
// canonical form every participant derives independently so quorum
// selection and Lagrange coefficient computation agree without
// further coordination.
type IDSlice []ID

func NewIDSlice(ids []ID) IDSlice {
	out := make(IDSlice, len(ids))
	copy(out, ids)
	sort.Sort(out)
	return out
}

func (s IDSlice) Len() int           { return len(s) }
func (s IDSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s IDSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Contains reports whether id appears in s.
func (s IDSlice) Contains(id ID) bool {
	for _, other := range s {
		if other == id {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants every topology and quorum
// must satisfy: no empty IDs, and no duplicates (§6).
func (s IDSlice) Validate() error {
	seen := make(map[ID]struct{}, len(s))
	for _, id := range s {
		if id.Empty() {
			return fmt.Errorf("party: empty party id")
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("party: duplicate party id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ScalarOf returns the 1-based rank of id within the sorted set s,
// which is also the x-coordinate that id's Shamir share was generated
// against. It panics if id is not a member of s, since the caller is
// expected to have validated membership already.
func (s IDSlice) ScalarOf(id ID) Scalar {
	for i, other := range s {
		if other == id {
			return Scalar(i + 1)
		}
	}
	panic(fmt.Sprintf("party: id %q is not a member of this set", id))
}
