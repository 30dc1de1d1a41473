package roster

import (
	"teamgen/internal/errors"
)

// Attendee is a single participant. Leader marks whether they may be selected
// as a team leader; the flag is ignored when Settings.Flat is set.
// Attendees are immutable value records.
type Attendee struct {
	Name   string
	Leader bool
}

// Settings configures one assignment run. It is assumed schema-valid (names
// present and unique); Validate covers only the semantic invariants.
type Settings struct {
	NumTeams  int        // Number of teams to form
	Flat      bool       // When true, every attendee is leader-eligible
	Attendees []Attendee // All participants, in source order
}

// LeaderCandidates returns the attendees eligible to lead a team.
// In flat mode everyone is a candidate.
func (s Settings) LeaderCandidates() []Attendee {
	if s.Flat {
		return s.Attendees
	}
	var candidates []Attendee
	for _, a := range s.Attendees {
		if a.Leader {
			candidates = append(candidates, a)
		}
	}
	return candidates
}

// leaderEligible returns the indices into s.Attendees of the leader pool.
func (s Settings) leaderEligible() []int {
	eligible := make([]int, 0, len(s.Attendees))
	for i, a := range s.Attendees {
		if s.Flat || a.Leader {
			eligible = append(eligible, i)
		}
	}
	return eligible
}

// Validate checks the semantic invariants the assigner requires. It reports
// the first violated constraint with the observed and required values.
func (s Settings) Validate() error {
	if s.NumTeams < 1 {
		return errors.NewAssignmentError("num_of_teams must be at least 1", errors.ErrInvalidTeamCount).
			WithObserved(s.NumTeams).
			WithRequired(1)
	}
	if s.NumTeams > len(s.Attendees) {
		return errors.NewAssignmentError("num_of_teams exceeds the attendee count", errors.ErrInvalidTeamCount).
			WithObserved(s.NumTeams).
			WithRequired(len(s.Attendees))
	}
	if candidates := len(s.leaderEligible()); candidates < s.NumTeams {
		return errors.NewAssignmentError("fewer leader candidates than teams", errors.ErrInsufficientLeaders).
			WithObserved(candidates).
			WithRequired(s.NumTeams)
	}
	return nil
}

// Team is one assigned team: a single leader plus its members. Member order
// carries no meaning but is preserved so output is deterministic for a fixed
// randomness source.
type Team struct {
	Leader  Attendee
	Members []Attendee
}

// Size returns the total head count including the leader.
func (t Team) Size() int {
	return 1 + len(t.Members)
}

// Roster is the ordered result of one assignment run, indexed by team slot.
type Roster []Team

// Attendees returns every attendee in the roster, leaders first within each
// team, in team order.
func (r Roster) Attendees() []Attendee {
	var all []Attendee
	for _, t := range r {
		all = append(all, t.Leader)
		all = append(all, t.Members...)
	}
	return all
}
