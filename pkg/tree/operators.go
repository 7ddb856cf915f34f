package tree

// BinaryOperator is the operator of a BinaryExpressionTree.
type BinaryOperator uint8

const (
	OperatorConditionalAnd BinaryOperator = iota
	OperatorConditionalOr
	OperatorEqualTo
	OperatorNotEqualTo
	OperatorGreaterThan
	OperatorGreaterThanOrEqualTo
	OperatorLessThan
	OperatorLessThanOrEqualTo
	OperatorPlus
	OperatorMinus
	OperatorTimes
	OperatorDividedBy
	OperatorModulo
)

// String returns the operator's conventional spelling.
func (o BinaryOperator) String() string {
	switch o {
	case OperatorConditionalAnd:
		return "&&"
	case OperatorConditionalOr:
		return "||"
	case OperatorEqualTo:
		return "=="
	case OperatorNotEqualTo:
		return "!="
	case OperatorGreaterThan:
		return ">"
	case OperatorGreaterThanOrEqualTo:
		return ">="
	case OperatorLessThan:
		return "<"
	case OperatorLessThanOrEqualTo:
		return "<="
	case OperatorPlus:
		return "+"
	case OperatorMinus:
		return "-"
	case OperatorTimes:
		return "*"
	case OperatorDividedBy:
		return "/"
	case OperatorModulo:
		return "%"
	default:
		return "?"
	}
}

// IsLogical reports whether o is && or ||.
func (o BinaryOperator) IsLogical() bool {
	return o == OperatorConditionalAnd || o == OperatorConditionalOr
}

// IsComparison reports whether o compares its operands.
func (o BinaryOperator) IsComparison() bool {
	switch o {
	case OperatorEqualTo, OperatorNotEqualTo,
		OperatorGreaterThan, OperatorGreaterThanOrEqualTo,
		OperatorLessThan, OperatorLessThanOrEqualTo:
		return true
	default:
		return false
	}
}

// UnaryOperator is the operator of a UnaryExpressionTree.
type UnaryOperator uint8

const (
	UnaryNegate UnaryOperator = iota
	UnaryPlus
	UnaryMinus
	UnaryIncrement
	UnaryDecrement
)

// String returns the operator's conventional spelling.
func (o UnaryOperator) String() string {
	switch o {
	case UnaryNegate:
		return "!"
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryIncrement:
		return "++"
	case UnaryDecrement:
		return "--"
	default:
		return "?"
	}
}

// AssignmentOperator is the operator of an AssignmentExpressionTree.
type AssignmentOperator uint8

const (
	AssignEqual AssignmentOperator = iota
	AssignPlusEqual
	AssignMinusEqual
	AssignTimesEqual
	AssignDividedByEqual
	AssignModuloEqual
)

// String returns the operator's conventional spelling.
func (o AssignmentOperator) String() string {
	switch o {
	case AssignEqual:
		return "="
	case AssignPlusEqual:
		return "+="
	case AssignMinusEqual:
		return "-="
	case AssignTimesEqual:
		return "*="
	case AssignDividedByEqual:
		return "/="
	case AssignModuloEqual:
		return "%="
	default:
		return "?"
	}
}

// LoopKind distinguishes loop forms.
type LoopKind uint8

const (
	LoopFor LoopKind = iota
	LoopWhile
	LoopDoWhile
)

// String returns the loop form name.
func (k LoopKind) String() string {
	switch k {
	case LoopFor:
		return "for"
	case LoopWhile:
		return "while"
	case LoopDoWhile:
		return "do-while"
	default:
		return "?"
	}
}

// JumpKind distinguishes break from continue.
type JumpKind uint8

const (
	JumpBreak JumpKind = iota
	JumpContinue
)

// String returns the jump keyword.
func (k JumpKind) String() string {
	if k == JumpContinue {
		return "continue"
	}
	return "break"
}

// ModifierKind is the modifier carried by a ModifierTree.
type ModifierKind uint8

const (
	ModifierPublic ModifierKind = iota
	ModifierPrivate
	ModifierProtected
	ModifierInternal
	ModifierAbstract
	ModifierOverride
	ModifierStatic
)

// String returns the modifier name.
func (k ModifierKind) String() string {
	switch k {
	case ModifierPublic:
		return "public"
	case ModifierPrivate:
		return "private"
	case ModifierProtected:
		return "protected"
	case ModifierInternal:
		return "internal"
	case ModifierAbstract:
		return "abstract"
	case ModifierOverride:
		return "override"
	case ModifierStatic:
		return "static"
	default:
		return "?"
	}
}
