package tree

// Kind identifies the concrete variant of a Tree.
type Kind uint8

const (
	KindTopLevel Kind = iota
	KindPackageDeclaration
	KindImportDeclaration
	KindClassDeclaration
	KindFunctionDeclaration
	KindParameter
	KindVariableDeclaration
	KindModifier
	KindBlock
	KindIf
	KindLoop
	KindMatch
	KindMatchCase
	KindExceptionHandling
	KindCatch
	KindJump
	KindReturn
	KindThrow
	KindAssignmentExpression
	KindBinaryExpression
	KindUnaryExpression
	KindParenthesizedExpression
	KindFunctionInvocation
	KindMemberSelect
	KindIdentifier
	KindPlaceHolder
	KindLiteral
	KindIntegerLiteral
	KindStringLiteral
	KindNative

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	KindTopLevel:                "TopLevel",
	KindPackageDeclaration:      "PackageDeclaration",
	KindImportDeclaration:       "ImportDeclaration",
	KindClassDeclaration:        "ClassDeclaration",
	KindFunctionDeclaration:     "FunctionDeclaration",
	KindParameter:               "Parameter",
	KindVariableDeclaration:     "VariableDeclaration",
	KindModifier:                "Modifier",
	KindBlock:                   "Block",
	KindIf:                      "If",
	KindLoop:                    "Loop",
	KindMatch:                   "Match",
	KindMatchCase:               "MatchCase",
	KindExceptionHandling:       "ExceptionHandling",
	KindCatch:                   "Catch",
	KindJump:                    "Jump",
	KindReturn:                  "Return",
	KindThrow:                   "Throw",
	KindAssignmentExpression:    "AssignmentExpression",
	KindBinaryExpression:        "BinaryExpression",
	KindUnaryExpression:         "UnaryExpression",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindFunctionInvocation:      "FunctionInvocation",
	KindMemberSelect:            "MemberSelect",
	KindIdentifier:              "Identifier",
	KindPlaceHolder:             "PlaceHolder",
	KindLiteral:                 "Literal",
	KindIntegerLiteral:          "IntegerLiteral",
	KindStringLiteral:           "StringLiteral",
	KindNative:                  "Native",
}

// String returns the variant name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(unknown)"
}

// Kinds returns every tree kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for kind := range kindCount {
		kinds = append(kinds, kind)
	}
	return kinds
}
