// Package roster implements the team assignment algorithm: selecting one
// leader per team from the leader-eligible pool, distributing the remaining
// attendees across teams with sizes balanced to within one, and returning the
// resulting roster.
//
// The assigner is a pure function over a Settings value and a shuffle.Source.
// It owns no state, performs no I/O, and is deterministic for a fixed source,
// so callers substitute a seeded source to make runs reproducible.
//
// Configuration loading and roster serialization live elsewhere (the config
// and output packages); this package only enforces the semantic invariants a
// schema-valid configuration can still violate: enough leader candidates for
// the requested team count, and a team count within [1, attendee count].
package roster
