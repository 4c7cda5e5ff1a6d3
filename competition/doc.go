// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package competition implements the judging workflow behind the API.

An organizer ("user") enters judges, stages and teams, and assigns each judge
to a stage. Issuing links gives every judge an unguessable token; the judge
opens the link, ranks the teams of their stage and submits. Results sum each
team's places across stages, lowest total first.

# Documents

All state is kept as one JSON document per (collection, user) in a Documents
store. Each mutation rewrites the whole document while holding a per-user lock,
so concurrent requests in one process do not lose updates.

# Invalidation

  - Saving stages clears the submission registry and the manual placement
  - Saving judges, teams or the distribution clears the manual placement
  - Any submission update clears the manual placement
  - ResetSubmissions clears both

# Scoring

	total(team) = Σ place(team, stage) over stages with a numeric place

Missing or non-numeric places count as 0. Equal totals keep team-list order
and places are 1..N without sharing.

# Manual Placement

An organizer may replace computed places with a full permutation of 1..N.
The overlay changes places only; totals stay as computed.
*/
package competition
