// Package collection provides an ordered key/value container addressed by
// dotted paths.
//
// A Collection stores scalars, object references and nested *Map values. Keys
// are either strings or non-negative integer indices; string segments that are
// canonical decimals ("0", "12") address indices, so "list.1" reaches the
// second element of the sequence stored under "list".
//
// # Addressing modes
//
// With dotted notation enabled (the default) a path such as "a.b.c" is split
// on the path separator and walked one segment at a time:
//
//	c := collection.New()
//	c.SetPath("menu.primary.location", "header")
//	c.GetPath("menu.primary")          // *Map{location: header}
//	c.HasKey("menu.secondary")         // false
//
// With dotted notation disabled the whole string is one literal key:
//
//	c.DisableDottedNotation().SetPath("a.b", 1)
//	c.GetPath("a")                     // nil
//
// Writing through a segment that holds a scalar replaces the scalar with an
// empty map before descending. Reading through a scalar yields the absent
// value (nil).
//
// # Error regime
//
// Collection methods never return errors and never panic on odd input: an
// unsupported argument turns the call into a no-op or an absent result, so
// calls can be chained without checks at each step.
//
// # Concurrency
//
// A Collection is not safe for concurrent mutation. Callers sharing one
// instance across goroutines must serialize access themselves. Iteration via
// All works on a snapshot taken when All is called; later mutations are not
// observed by that sequence.
package collection
