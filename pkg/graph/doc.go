// Package graph defines the core dataflow model for Xylem: typed sockets
// connected by edges, nodes with lazily recomputed and cached output
// buckets, and the dirty/invalid propagation rules between them.
package graph
