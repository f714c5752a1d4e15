package state

// Cost is a link or path metric. Scenario costs are small non-negative
// integers; an unreachable destination is represented by the absence of a
// distance vector entry, never by a stored value.
type Cost int

// RemoveLink is the scripted-update cost sentinel that deletes a link
// instead of setting a cost. The endpoints survive, possibly isolated.
const RemoveLink Cost = -1
