package treesitter

import (
	"unicode"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/yaklabco/goslang/pkg/langdetect"
	"github.com/yaklabco/goslang/pkg/tree"
)

// NewGo returns the converter for Go sources.
func NewGo() *Converter {
	return newConverter(goGrammar())
}

func goGrammar() *grammar {
	g := &grammar{
		name:     langdetect.Go,
		language: sitter.NewLanguage(tree_sitter_go.Language()),
		keywords: set(
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select",
			"struct", "switch", "type", "var",
		),
		identifierKinds: set(
			"identifier", "field_identifier", "type_identifier",
			"package_identifier", "label_name",
		),
		stringKinds:  set("interpreted_string_literal", "raw_string_literal"),
		commentKinds: set("comment"),
		atomic: func(n *sitter.Node) bool {
			return n.Kind() == "rune_literal"
		},
		topLevel: goTopLevel,
	}
	g.handlers = map[string]handler{
		"package_clause":     goPackage,
		"import_declaration": goImport,

		"function_declaration": goFunction,
		"method_declaration":   goFunction,
		"func_literal":         goFunction,
		"type_spec":            goTypeSpec,
		"var_spec":             goVarSpec,
		"const_spec":           goVarSpec,

		"block":                       goBlock,
		"expression_statement":        goUnwrap,
		"if_statement":                goIf,
		"for_statement":               goFor,
		"expression_switch_statement": goSwitch,
		"type_switch_statement":       goSwitch,
		"select_statement":            goSwitch,
		"break_statement":             goJump,
		"continue_statement":          goJump,
		"return_statement":            goReturn,
		"inc_statement":               goIncDec,
		"dec_statement":               goIncDec,
		"assignment_statement":        goAssignment,
		"short_var_declaration":       goShortVar,

		"binary_expression":        goBinary,
		"unary_expression":         goUnary,
		"parenthesized_expression": parenthesizedHandler,
		"call_expression":          goCall,
		"selector_expression":      goSelector,

		"identifier":         identifierHandler,
		"field_identifier":   identifierHandler,
		"type_identifier":    identifierHandler,
		"package_identifier": identifierHandler,
		"label_name":         identifierHandler,
		"iota":               identifierHandler,

		"int_literal":                integerHandler,
		"float_literal":              literalHandler,
		"imaginary_literal":          literalHandler,
		"rune_literal":               literalHandler,
		"true":                       literalHandler,
		"false":                      literalHandler,
		"nil":                        literalHandler,
		"interpreted_string_literal": stringHandler,
		"raw_string_literal":         stringHandler,
	}
	return g
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func identifierHandler(b *builder, n *sitter.Node) tree.Tree {
	return b.identifier(n)
}

func literalHandler(b *builder, n *sitter.Node) tree.Tree {
	return tree.NewLiteralTree(b.meta(n), b.text(n))
}

func integerHandler(b *builder, n *sitter.Node) tree.Tree {
	return tree.NewIntegerLiteralTree(b.meta(n), b.text(n))
}

// stringHandler maps a quoted literal; its content is the text between
// the delimiters.
func stringHandler(b *builder, n *sitter.Node) tree.Tree {
	value := b.text(n)
	content := value
	if len(value) >= 2 {
		content = value[1 : len(value)-1]
	}
	return tree.NewStringLiteralTree(b.meta(n), value, content)
}

func goTopLevel(b *builder, root *sitter.Node) *tree.TopLevelTree {
	var declarations []tree.Tree
	var header *sitter.Node
	for _, child := range b.named(root) {
		switch child.Kind() {
		case "package_clause", "import_declaration":
			header = child
		}
		if t := b.convert(child); !tree.IsNil(t) {
			declarations = append(declarations, t)
		}
	}
	return tree.NewTopLevelTree(b.fileMeta(), declarations, b.provider.AllComments(), b.firstTokenAfter(header))
}

// fileMeta covers the whole content.
func (b *builder) fileMeta() *tree.MetaData {
	last := len(b.lineStarts) - 1
	end := tree.NewTextPointer(last+1, utf8.RuneCount(b.content[b.lineStarts[last]:]))
	return b.provider.MetaData(tree.NewTextRange(tree.NewTextPointer(1, 0), end))
}

// firstTokenAfter returns the first token after header, or the first token
// of the file when header is nil.
func (b *builder) firstTokenAfter(header *sitter.Node) *tree.Token {
	tokens := b.provider.AllTokens()
	if header == nil {
		if len(tokens) == 0 {
			return nil
		}
		return tokens[0]
	}
	end := b.rangeOf(header).End
	for _, token := range tokens {
		if !token.Range.Start.Before(end) {
			return token
		}
	}
	return nil
}

func goPackage(b *builder, n *sitter.Node) tree.Tree {
	return tree.NewPackageDeclarationTree(b.meta(n), b.convertAll(b.named(n)))
}

func goImport(b *builder, n *sitter.Node) tree.Tree {
	return tree.NewImportDeclarationTree(b.meta(n), b.convertAll(b.named(n)))
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// goFunction maps declarations, methods and literals. Unexported names
// carry a private modifier; receivers and type parameters stay native.
func goFunction(b *builder, n *sitter.Node) tree.Tree {
	parts := tree.FunctionParts{
		Name:             b.identifier(n.ChildByFieldName("name")),
		FormalParameters: b.goParameters(n.ChildByFieldName("parameters")),
		ReturnType:       b.convert(n.ChildByFieldName("result")),
		Body:             b.block(n.ChildByFieldName("body")),
	}
	if parts.Name != nil && !isExported(parts.Name.Name) {
		parts.Modifiers = append(parts.Modifiers, b.syntheticModifier(n, tree.ModifierPrivate))
	}
	if receiver := n.ChildByFieldName("receiver"); receiver != nil {
		parts.NativeChildren = append(parts.NativeChildren, b.native(receiver))
	}
	if typeParameters := n.ChildByFieldName("type_parameters"); typeParameters != nil {
		parts.NativeChildren = append(parts.NativeChildren, b.native(typeParameters))
	}
	return tree.NewFunctionDeclarationTree(b.meta(n), parts)
}

func (b *builder) goParameters(list *sitter.Node) []tree.Tree {
	var parameters []tree.Tree
	for _, declaration := range b.named(list) {
		switch declaration.Kind() {
		case "parameter_declaration", "variadic_parameter_declaration":
			parameters = append(parameters, b.goParameterDeclaration(declaration)...)
		default:
			parameters = append(parameters, b.convert(declaration))
		}
	}
	return parameters
}

// goParameterDeclaration splits `a, b int` into one parameter per name.
// The type belongs to the last one, so sibling ranges stay disjoint.
func (b *builder) goParameterDeclaration(declaration *sitter.Node) []tree.Tree {
	names := fieldChildren(declaration, "name")
	typ := b.convert(declaration.ChildByFieldName("type"))
	if len(names) == 0 {
		return []tree.Tree{tree.NewParameterTree(b.meta(declaration), nil, typ, nil, nil)}
	}
	parameters := make([]tree.Tree, 0, len(names))
	for i, name := range names {
		identifier := b.identifier(name)
		if i < len(names)-1 {
			parameters = append(parameters, tree.NewParameterTree(b.meta(name), identifier, nil, nil, nil))
			continue
		}
		textRange := tree.NewTextRange(b.rangeOf(name).Start, b.rangeOf(declaration).End)
		parameters = append(parameters, tree.NewParameterTree(b.provider.MetaData(textRange), identifier, typ, nil, nil))
	}
	return parameters
}

func goBlock(b *builder, n *sitter.Node) tree.Tree {
	return b.block(n)
}

// block maps a brace-delimited block, or returns nil when n is nil.
func (b *builder) block(n *sitter.Node) *tree.BlockTree {
	if n == nil {
		return nil
	}
	if n.Kind() != "block" && n.Kind() != "statement_block" {
		// Expression bodies, as in arrow functions, become one-statement
		// blocks.
		return tree.NewBlockTree(b.meta(n), []tree.Tree{b.convert(n)})
	}
	return tree.NewBlockTree(b.meta(n), b.statements(n))
}

// statements converts the statements held by n, looking through
// statement lists.
func (b *builder) statements(n *sitter.Node) []tree.Tree {
	var statements []tree.Tree
	for _, child := range b.unfielded(n) {
		if child.Kind() == "statement_list" {
			statements = append(statements, b.convertAll(b.named(child))...)
			continue
		}
		if t := b.convert(child); !tree.IsNil(t) {
			statements = append(statements, t)
		}
	}
	return statements
}

func goUnwrap(b *builder, n *sitter.Node) tree.Tree {
	named := b.named(n)
	if len(named) != 1 {
		return b.native(n)
	}
	return b.convert(named[0])
}

// goIf keeps an initializer next to the condition, under a native header.
func goIf(b *builder, n *sitter.Node) tree.Tree {
	condition := b.wrap("if_header",
		b.convert(n.ChildByFieldName("initializer")),
		b.convert(n.ChildByFieldName("condition")))
	consequence := n.ChildByFieldName("consequence")

	var elseBranch tree.Tree
	var elseKeyword *tree.Token
	if alternative := n.ChildByFieldName("alternative"); alternative != nil {
		elseBranch = b.convert(alternative)
		elseKeyword = b.keywordBetween(consequence, alternative)
	}
	return tree.NewIfTree(b.meta(n), condition, b.block(consequence), elseBranch, b.firstToken(n), elseKeyword)
}

// goFor maps the three loop forms: a clause or range loop is a for loop,
// a bare condition or no header at all is a while loop.
func goFor(b *builder, n *sitter.Node) tree.Tree {
	kind := tree.LoopWhile
	var condition tree.Tree
	for _, child := range b.unfielded(n) {
		switch child.Kind() {
		case "for_clause", "range_clause":
			kind = tree.LoopFor
			condition = b.native(child)
		default:
			condition = b.convert(child)
		}
	}
	return tree.NewLoopTree(b.meta(n), condition, b.block(n.ChildByFieldName("body")), kind, b.firstToken(n))
}

// goSwitch maps expression switches, type switches and selects. Whatever
// precedes the cases forms the matched expression.
func goSwitch(b *builder, n *sitter.Node) tree.Tree {
	header := []tree.Tree{b.convert(n.ChildByFieldName("initializer"))}
	if alias := n.ChildByFieldName("alias"); alias != nil {
		header = append(header, b.native(alias))
	}
	header = append(header, b.convert(n.ChildByFieldName("value")))

	var cases []*tree.MatchCaseTree
	for _, child := range b.unfielded(n) {
		switch child.Kind() {
		case "expression_case", "type_case", "communication_case", "default_case":
			cases = append(cases, b.goCase(child))
		}
	}
	return tree.NewMatchTree(b.meta(n), b.wrap(n.Kind()+"_header", header...), cases, b.firstToken(n))
}

func (b *builder) goCase(n *sitter.Node) *tree.MatchCaseTree {
	var expression tree.Tree
	switch n.Kind() {
	case "expression_case":
		expression = b.goExpressionList(n.ChildByFieldName("value"))
	case "type_case":
		expression = b.wrap("type_case_types", b.convertAll(fieldChildren(n, "type"))...)
	case "communication_case":
		expression = b.convert(n.ChildByFieldName("communication"))
	}
	return tree.NewMatchCaseTree(b.meta(n), expression, b.statementBlock(b.statements(n)))
}

// goExpressionList returns the only expression of list, or the list as a
// native tree.
func (b *builder) goExpressionList(list *sitter.Node) tree.Tree {
	if list == nil {
		return nil
	}
	if list.Kind() != "expression_list" {
		return b.convert(list)
	}
	if named := b.named(list); len(named) == 1 {
		return b.convert(named[0])
	}
	return b.native(list)
}

func goJump(b *builder, n *sitter.Node) tree.Tree {
	kind := tree.JumpBreak
	if n.Kind() == "continue_statement" {
		kind = tree.JumpContinue
	}
	return tree.NewJumpTree(b.meta(n), b.identifier(childOfKind(n, "label_name")), kind, b.firstToken(n))
}

func goReturn(b *builder, n *sitter.Node) tree.Tree {
	var body tree.Tree
	if named := b.named(n); len(named) == 1 {
		body = b.goExpressionList(named[0])
	}
	return tree.NewReturnTree(b.meta(n), body, b.firstToken(n))
}

func goIncDec(b *builder, n *sitter.Node) tree.Tree {
	operator := tree.UnaryIncrement
	if n.Kind() == "dec_statement" {
		operator = tree.UnaryDecrement
	}
	named := b.named(n)
	if len(named) != 1 {
		return b.native(n)
	}
	return tree.NewUnaryExpressionTree(b.meta(n), operator, b.convert(named[0]))
}

var assignmentOperators = map[string]tree.AssignmentOperator{
	"=":  tree.AssignEqual,
	"+=": tree.AssignPlusEqual,
	"-=": tree.AssignMinusEqual,
	"*=": tree.AssignTimesEqual,
	"/=": tree.AssignDividedByEqual,
	"%=": tree.AssignModuloEqual,
}

// goAssignment maps single assignments; tuple assignments stay native.
func goAssignment(b *builder, n *sitter.Node) tree.Tree {
	left, right := single(b, n.ChildByFieldName("left")), single(b, n.ChildByFieldName("right"))
	operator, ok := assignmentOperators[b.text(n.ChildByFieldName("operator"))]
	if !ok || left == nil || right == nil {
		return b.native(n)
	}
	return tree.NewAssignmentExpressionTree(b.meta(n), operator, b.convert(left), b.convert(right))
}

// goShortVar maps `x := v`; several names stay native.
func goShortVar(b *builder, n *sitter.Node) tree.Tree {
	left, right := single(b, n.ChildByFieldName("left")), single(b, n.ChildByFieldName("right"))
	if left == nil || right == nil || left.Kind() != "identifier" {
		return b.native(n)
	}
	return tree.NewVariableDeclarationTree(b.meta(n), b.identifier(left), nil, b.convert(right), false)
}

// single returns the only element of an expression list.
func single(b *builder, list *sitter.Node) *sitter.Node {
	if list == nil {
		return nil
	}
	if list.Kind() != "expression_list" {
		return list
	}
	if named := b.named(list); len(named) == 1 {
		return named[0]
	}
	return nil
}

// goVarSpec maps a var or const spec declaring one name.
func goVarSpec(b *builder, n *sitter.Node) tree.Tree {
	names := fieldChildren(n, "name")
	if len(names) != 1 {
		return b.native(n)
	}
	var initializer tree.Tree
	if value := n.ChildByFieldName("value"); value != nil {
		initializer = b.goExpressionList(value)
	}
	return tree.NewVariableDeclarationTree(b.meta(n), b.identifier(names[0]),
		b.convert(n.ChildByFieldName("type")), initializer, n.Kind() == "const_spec")
}

// goTypeSpec maps struct types to class declarations.
func goTypeSpec(b *builder, n *sitter.Node) tree.Tree {
	typ := n.ChildByFieldName("type")
	if typ == nil || typ.Kind() != "struct_type" {
		return b.native(n)
	}
	name := b.identifier(n.ChildByFieldName("name"))
	elements := []tree.Tree{name, b.convert(n.ChildByFieldName("type_parameters")), b.native(typ)}
	classTree := tree.NewNativeTree(b.meta(n), tree.NewNativeKind("struct_type_spec"), elements)
	return tree.NewClassDeclarationTree(b.meta(n), name, classTree)
}

var binaryOperators = map[string]tree.BinaryOperator{
	"&&": tree.OperatorConditionalAnd,
	"||": tree.OperatorConditionalOr,
	"==": tree.OperatorEqualTo,
	"!=": tree.OperatorNotEqualTo,
	">":  tree.OperatorGreaterThan,
	">=": tree.OperatorGreaterThanOrEqualTo,
	"<":  tree.OperatorLessThan,
	"<=": tree.OperatorLessThanOrEqualTo,
	"+":  tree.OperatorPlus,
	"-":  tree.OperatorMinus,
	"*":  tree.OperatorTimes,
	"/":  tree.OperatorDividedBy,
	"%":  tree.OperatorModulo,
}

func goBinary(b *builder, n *sitter.Node) tree.Tree {
	return b.binary(n, binaryOperators)
}

func (b *builder) binary(n *sitter.Node, operators map[string]tree.BinaryOperator) tree.Tree {
	operatorNode := n.ChildByFieldName("operator")
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if operatorNode == nil || left == nil || right == nil {
		return b.native(n)
	}
	operator, ok := operators[b.text(operatorNode)]
	if !ok {
		return b.native(n)
	}
	return tree.NewBinaryExpressionTree(b.meta(n), operator, b.firstToken(operatorNode), b.convert(left), b.convert(right))
}

var unaryOperators = map[string]tree.UnaryOperator{
	"!": tree.UnaryNegate,
	"+": tree.UnaryPlus,
	"-": tree.UnaryMinus,
}

func goUnary(b *builder, n *sitter.Node) tree.Tree {
	return b.unary(n, "operand")
}

func (b *builder) unary(n *sitter.Node, operandField string) tree.Tree {
	operatorNode, operand := n.ChildByFieldName("operator"), n.ChildByFieldName(operandField)
	if operatorNode == nil || operand == nil {
		return b.native(n)
	}
	operator, ok := unaryOperators[b.text(operatorNode)]
	if !ok {
		return b.native(n)
	}
	return tree.NewUnaryExpressionTree(b.meta(n), operator, b.convert(operand))
}

func parenthesizedHandler(b *builder, n *sitter.Node) tree.Tree {
	named := b.named(n)
	if len(named) != 1 {
		return b.native(n)
	}
	return tree.NewParenthesizedExpressionTree(b.meta(n), b.convert(named[0]), b.firstToken(n), b.lastToken(n))
}

// goCall maps calls; explicit type arguments keep the call native.
func goCall(b *builder, n *sitter.Node) tree.Tree {
	if n.ChildByFieldName("type_arguments") != nil {
		return b.native(n)
	}
	return tree.NewFunctionInvocationTree(b.meta(n),
		b.convert(n.ChildByFieldName("function")),
		b.convertAll(b.named(n.ChildByFieldName("arguments"))))
}

func goSelector(b *builder, n *sitter.Node) tree.Tree {
	return tree.NewMemberSelectTree(b.meta(n),
		b.convert(n.ChildByFieldName("operand")),
		b.identifier(n.ChildByFieldName("field")))
}
