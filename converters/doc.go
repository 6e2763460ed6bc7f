// Package converters provides two-way adapters between phylo.Tree and the
// gotree phylogenetics library (github.com/evolbioinfo/gotree):
//   - ToGotree / FromGotree convert the tree structure
//   - Newick / ParseNewick read and write Newick text over gotree nodes
//
// Node labels are mutation names; a loss carries LossSuffix after the name
// and the root is labelled "germline". UIDs are not part of the Newick text:
// FromGotree assigns "n1", "n2", ... in pre-order. Internal labels are
// always names, so the default numeric names "1".."m" round-trip.
package converters
