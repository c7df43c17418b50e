// Package graphio reads and writes graphs in the text and JSON formats
// used by the CLI and the HTTP API.
//
// # Text format
//
// The text format is line-based. The first significant line holds the
// vertex count, each following line one edge as two vertex indices:
//
//	// a triangle with a pendant
//	4
//	0 1
//	1 2
//	2 0
//	0 3
//
// Everything from "//" to the end of a line is a comment; blank lines are
// skipped.
//
// # JSON format
//
// The JSON format is an object with the vertex count and an edge array:
//
//	{"n": 4, "edges": [{"from": 0, "to": 1}, {"from": 1, "to": 2}]}
//
// Embeddings use a second JSON form that spells out every neighbor
// sequence, since there the order is the result:
//
//	{"n": 3, "adjacency": [[1, 2], [2, 0], [0, 1]]}
//
// All formats round-trip: output written by this package can be read
// back with the same vertices and edges. The adjacency form also keeps each
// vertex's neighbor order; the text and edge-list JSON forms do not.
package graphio
