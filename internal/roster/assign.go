package roster

import (
	"teamgen/internal/shuffle"
)

// Assign partitions the attendees in s into s.NumTeams teams, each led by one
// uniformly selected leader candidate, with the remaining attendees spread
// across teams so sizes differ by at most one. All randomness comes from src:
// which candidates lead, which team slot each leader occupies, which team each
// remaining attendee joins, and which teams absorb the remainder when the
// member count does not divide evenly.
//
// Assign fails with an AssignmentError when the settings violate a semantic
// invariant; it never returns a partial roster.
func Assign(s Settings, src shuffle.Source) (Roster, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	eligible := s.leaderEligible()

	// Sample order doubles as the leader-to-slot mapping, so both the set of
	// leaders and their team indices are uniformly random.
	picked := src.Sample(len(eligible), s.NumTeams)

	isLeader := make([]bool, len(s.Attendees))
	teams := make(Roster, s.NumTeams)
	for slot, p := range picked {
		i := eligible[p]
		isLeader[i] = true
		teams[slot].Leader = s.Attendees[i]
	}

	// Unselected leader candidates fall back to being regular members.
	rest := make([]Attendee, 0, len(s.Attendees)-s.NumTeams)
	for i, a := range s.Attendees {
		if !isLeader[i] {
			rest = append(rest, a)
		}
	}
	src.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	// Balanced sizes: every team gets floor(rest/k) members and a uniformly
	// sampled subset of teams absorbs the remainder, so no fixed team slot is
	// favored with the extra seat.
	base := len(rest) / s.NumTeams
	sizes := make([]int, s.NumTeams)
	for i := range sizes {
		sizes[i] = base
	}
	if extra := len(rest) % s.NumTeams; extra > 0 {
		for _, slot := range src.Sample(s.NumTeams, extra) {
			sizes[slot]++
		}
	}

	next := 0
	for slot := range teams {
		if sizes[slot] == 0 {
			continue
		}
		teams[slot].Members = append([]Attendee(nil), rest[next:next+sizes[slot]]...)
		next += sizes[slot]
	}

	return teams, nil
}
