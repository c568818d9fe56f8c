// Package mcl implements Markov Clustering (MCL) two ways.
//
// MarkovClustering runs the flow simulation in process on gonum matrices:
//
//  1. M ← column-normalized (adjacency + I).
//  2. Repeat until M stops changing or the iteration cap is hit:
//     expansion M ← M^e, inflation M ← M∘r (elementwise power),
//     pruning of negligible entries, column normalization.
//  3. Every vertex joins the attractor row holding the largest share of its
//     column (ties go to the smaller index), so the output is a partition.
//
// External delegates to the reference mcl executable: the graph is written
// in ABC format (one "u<TAB>v<TAB>weight" line per edge) to the process's
// stdin and each stdout line is read back as one cluster. Vertices absent
// from the output, typically isolated ones, become singleton clusters.
package mcl
