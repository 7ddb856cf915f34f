package tree

// Walk visits root and its descendants in pre-order. Returning false from
// fn skips the children of the visited node.
func Walk(root Tree, fn func(Tree) bool) {
	if IsNil(root) {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children() {
		Walk(child, fn)
	}
}

// Descendants returns every node below root in pre-order, root excluded.
func Descendants(root Tree) []Tree {
	var result []Tree
	Walk(root, func(t Tree) bool {
		if t != root {
			result = append(result, t)
		}
		return true
	})
	return result
}

// FindAll returns the nodes of type T in the subtree of root, root
// included, in pre-order.
func FindAll[T Tree](root Tree) []T {
	var result []T
	Walk(root, func(t Tree) bool {
		if match, ok := t.(T); ok {
			result = append(result, match)
		}
		return true
	})
	return result
}

// Contains reports whether any node of the subtree of root satisfies
// predicate.
func Contains(root Tree, predicate func(Tree) bool) bool {
	found := false
	Walk(root, func(t Tree) bool {
		if found {
			return false
		}
		if predicate(t) {
			found = true
			return false
		}
		return true
	})
	return found
}
