// Package dataset provides the in-memory tabular representation shared by
// the file handlers.
//
// A [Table] is an ordered set of named columns with rows of arbitrary
// values. It is the canonical form that the CSV and Excel handlers
// normalize their inputs into before touching disk, and the form they
// produce when loading.
//
// Construction:
//
//	t := dataset.New("name", "score")
//	t.Append("alice", 12)
//	t.Append("bob", 7)
//
// or from a column map (columns are sorted for deterministic output):
//
//	t, err := dataset.FromMap(map[string][]any{
//	    "col1": {1, 2, 3},
//	    "col2": {4, 5, 6},
//	})
//
// Every row holds exactly one value per column; Append enforces this.
package dataset
