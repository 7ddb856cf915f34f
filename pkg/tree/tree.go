// Package tree defines the language-agnostic syntax model shared by every
// guest language: text positions, tokens, comments and annotations, the
// per-file metadata index, and the tree variants produced by converters.
//
// Trees are immutable once built. Each node knows its children, in source
// order, and its MetaData, which resolves the tokens, comments and
// annotations covered by the node's range through the file's
// MetaDataProvider.
package tree

import (
	"reflect"
	"slices"
)

// Tree is a node of the common syntax model.
type Tree interface {
	// Kind returns the concrete variant.
	Kind() Kind

	// Children returns the direct children in source order. It never
	// contains nil.
	Children() []Tree

	// MetaData returns the node's metadata.
	MetaData() *MetaData

	// TextRange returns the node's range.
	TextRange() TextRange
}

// node carries the metadata shared by all variants.
type node struct {
	metaData *MetaData
}

// MetaData returns the node's metadata.
func (n *node) MetaData() *MetaData {
	return n.metaData
}

// TextRange returns the node's range.
func (n *node) TextRange() TextRange {
	return n.metaData.TextRange()
}

// IsNil reports whether t is nil, including a typed nil pointer stored in
// the interface.
func IsNil(t Tree) bool {
	if t == nil {
		return true
	}
	value := reflect.ValueOf(t)
	return value.Kind() == reflect.Pointer && value.IsNil()
}

// optional normalises a typed nil pointer to a nil interface.
func optional(t Tree) Tree {
	if IsNil(t) {
		return nil
	}
	return t
}

// compact drops nil entries.
func compact(trees []Tree) []Tree {
	result := make([]Tree, 0, len(trees))
	for _, t := range trees {
		if !IsNil(t) {
			result = append(result, t)
		}
	}
	return result
}

// children assembles a child list from optional singles and lists.
type children []Tree

func (c *children) add(t Tree) {
	if !IsNil(t) {
		*c = append(*c, t)
	}
}

func (c *children) addAll(trees []Tree) {
	for _, t := range trees {
		c.add(t)
	}
}

// sorted returns the list ordered by start position, for variants whose
// fields do not follow source order in every guest language.
func (c children) sorted() []Tree {
	result := []Tree(c)
	slices.SortStableFunc(result, func(a, b Tree) int {
		return a.TextRange().Start.Compare(b.TextRange().Start)
	})
	return result
}

func toTrees[T Tree](items []T) []Tree {
	result := make([]Tree, 0, len(items))
	for _, item := range items {
		if !IsNil(item) {
			result = append(result, item)
		}
	}
	return result
}
