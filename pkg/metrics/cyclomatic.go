package metrics

import (
	"github.com/yaklabco/goslang/pkg/tree"
	"github.com/yaklabco/goslang/pkg/visit"
)

// CyclomaticComplexity returns the locations that each open one more
// execution path in root: named functions with a body, if keywords,
// loops, guarded match cases and conditional boolean operators. The
// complexity is the number of locations.
func CyclomaticComplexity(root tree.Tree) []tree.HasTextRange {
	var points []tree.HasTextRange

	v := visit.NewVisitor()
	visit.On(v, func(_ *visit.Context, t *tree.FunctionDeclarationTree) {
		if t.Name != nil && t.Body != nil {
			points = append(points, t)
		}
	})
	visit.On(v, func(_ *visit.Context, t *tree.IfTree) {
		if t.IfKeyword != nil {
			points = append(points, t.IfKeyword)
			return
		}
		points = append(points, t)
	})
	visit.On(v, func(_ *visit.Context, t *tree.LoopTree) {
		points = append(points, t)
	})
	visit.On(v, func(_ *visit.Context, t *tree.MatchCaseTree) {
		if t.Expression != nil {
			points = append(points, t)
		}
	})
	visit.On(v, func(_ *visit.Context, t *tree.BinaryExpressionTree) {
		if t.Operator.IsLogical() {
			points = append(points, t)
		}
	})

	v.Scan(visit.NewContext(), root)
	return points
}
