package services

import (
	"cmp"
	"slices"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// mergeOutcome reports what Merge did with a candidate.
type mergeOutcome int

const (
	mergeInserted mergeOutcome = iota
	mergeReplaced
	mergeKept
)

// entry is one ledger slot. A dropped entry was absorbed by a GRAPH record.
type entry struct {
	cand    domain.Candidate
	name    string
	club    string
	dropped bool
}

// ledger is the dedup map of a single run. It is created per run and
// discarded afterwards, so identities never leak between runs.
// A ledger is owned by one goroutine and is not safe for concurrent use.
type ledger struct {
	byName map[string][]*entry
	order  []*entry
	live   int
}

func newLedger() *ledger {
	return &ledger{byName: make(map[string][]*entry)}
}

// sameHolder reports whether e and an incoming record with the given club
// and method may describe the same person.
// Records of different tiers match on name alone. Within a tier a club
// missing on either side matches, and two known clubs must agree.
func sameHolder(e *entry, club string, method domain.DiscoveryMethod) bool {
	if e.cand.DiscoveryMethod.Rank() != method.Rank() {
		return true
	}
	return e.club == "" || club == "" || e.club == club
}

// Merge adds c to the ledger. A record matching no entry is inserted.
// A GRAPH record absorbs every matching TEXT entry and takes the slot of
// the first one. Otherwise the existing entry is kept, so the first record
// of the highest tier wins.
func (l *ledger) Merge(c domain.Candidate) mergeOutcome {
	if c.Identity == "" {
		c.Identity = domain.IdentityFor(c.Name, c.Club)
	}
	name, club := domain.NameKey(c.Name), domain.ClubKey(c.Club)

	var matches []*entry
	for _, e := range l.byName[name] {
		if sameHolder(e, club, c.DiscoveryMethod) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		e := &entry{cand: c, name: name, club: club}
		l.byName[name] = append(l.byName[name], e)
		l.order = append(l.order, e)
		l.live++
		return mergeInserted
	}

	for _, e := range matches {
		if e.cand.DiscoveryMethod.Rank() >= c.DiscoveryMethod.Rank() {
			return mergeKept
		}
	}

	slot := matches[0]
	slot.cand, slot.club = c, club
	for _, e := range matches[1:] {
		e.dropped = true
		l.live--
	}
	l.byName[name] = slices.DeleteFunc(l.byName[name], func(e *entry) bool { return e.dropped })
	return mergeReplaced
}

// Len returns the number of unique candidates.
func (l *ledger) Len() int {
	return l.live
}

// Ranked returns the merged candidates in final order: GRAPH before TEXT,
// then descending birth year within a tier. Unparseable years sort last.
// Ties keep arrival order.
func (l *ledger) Ranked() []domain.Candidate {
	out := make([]domain.Candidate, 0, l.live)
	for _, e := range l.order {
		if !e.dropped {
			out = append(out, e.cand)
		}
	}
	RankCandidates(out)
	return out
}

// RankCandidates sorts candidates in place into the final result order.
func RankCandidates(cands []domain.Candidate) {
	slices.SortStableFunc(cands, func(a, b domain.Candidate) int {
		if c := cmp.Compare(b.DiscoveryMethod.Rank(), a.DiscoveryMethod.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(sortYear(b), sortYear(a))
	})
}

// sortYear treats an unknown birth year as the oldest possible.
func sortYear(c domain.Candidate) int {
	if y, ok := c.BirthYear(); ok {
		return y
	}
	return 0
}
