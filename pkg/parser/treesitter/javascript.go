package treesitter

import (
	"regexp"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/yaklabco/goslang/pkg/langdetect"
	"github.com/yaklabco/goslang/pkg/tree"
)

// NewJavaScript returns the converter for JavaScript sources, JSX
// included.
func NewJavaScript() *Converter {
	return newConverter(javaScriptGrammar())
}

func javaScriptGrammar() *grammar {
	g := &grammar{
		name:     langdetect.JavaScript,
		language: sitter.NewLanguage(tree_sitter_javascript.Language()),
		keywords: set(
			"await", "break", "case", "catch", "class", "const", "continue",
			"debugger", "default", "delete", "do", "else", "enum", "export",
			"extends", "false", "finally", "for", "function", "if", "import",
			"in", "instanceof", "let", "new", "null", "return", "super",
			"switch", "this", "throw", "true", "try", "typeof", "var", "void",
			"while", "with", "yield",
		),
		contextualKeywords: set("of", "get", "set", "static", "async", "from", "as"),
		identifierKinds: set(
			"identifier", "property_identifier", "private_property_identifier",
			"shorthand_property_identifier", "shorthand_property_identifier_pattern",
			"statement_identifier",
		),
		stringKinds:   set("string"),
		templateKinds: set("template_string"),
		commentKinds:  set("comment", "html_comment", "hash_bang_line"),
		atomic:        jsAtomic,
		annotation:    jsDecorator,
		topLevel:      jsTopLevel,
	}
	g.handlers = map[string]handler{
		"import_statement": jsImport,
		"empty_statement":  func(*builder, *sitter.Node) tree.Tree { return nil },

		"function_declaration":           jsFunction,
		"generator_function_declaration": jsFunction,
		"function_expression":            jsFunction,
		"function":                       jsFunction,
		"generator_function":             jsFunction,
		"arrow_function":                 jsFunction,
		"method_definition":              jsFunction,
		"class_declaration":              jsClass,
		"lexical_declaration":            jsDeclaration,
		"variable_declaration":           jsDeclaration,
		"variable_declarator":            jsDeclarator,

		"statement_block":      goBlock,
		"expression_statement": goUnwrap,
		"if_statement":         jsIf,
		"for_statement":        jsFor,
		"for_in_statement":     jsForIn,
		"while_statement":      jsWhile,
		"do_statement":         jsWhile,
		"switch_statement":     jsSwitch,
		"try_statement":        jsTry,
		"throw_statement":      jsThrow,
		"return_statement":     jsReturn,
		"break_statement":      jsJump,
		"continue_statement":   jsJump,

		"ternary_expression":              jsTernary,
		"binary_expression":               jsBinary,
		"unary_expression":                jsUnary,
		"update_expression":               jsUpdate,
		"assignment_expression":           jsAssignment,
		"augmented_assignment_expression": jsAssignment,
		"parenthesized_expression":        parenthesizedHandler,
		"call_expression":                 jsCall,
		"member_expression":               jsMember,

		"identifier":                            identifierHandler,
		"property_identifier":                   identifierHandler,
		"private_property_identifier":           identifierHandler,
		"shorthand_property_identifier":         identifierHandler,
		"shorthand_property_identifier_pattern": identifierHandler,
		"statement_identifier":                  identifierHandler,
		"this":                                  identifierHandler,
		"super":                                 identifierHandler,

		"number":          jsNumber,
		"string":          stringHandler,
		"template_string": jsTemplate,
		"regex":           literalHandler,
		"true":            literalHandler,
		"false":           literalHandler,
		"null":            literalHandler,
		"undefined":       literalHandler,
	}
	return g
}

// jsAtomic keeps regular expressions and templates without substitutions
// as single tokens.
func jsAtomic(n *sitter.Node) bool {
	switch n.Kind() {
	case "regex":
		return true
	case "template_string":
		return childOfKind(n, "template_substitution") == nil
	}
	return false
}

// jsDecorator turns `@name`, `@a.name` and `@name(args)` into an
// annotation named after the last identifier.
func jsDecorator(b *builder, n *sitter.Node) *tree.Annotation {
	if n.Kind() != "decorator" {
		return nil
	}
	named := b.named(n)
	if len(named) == 0 {
		return nil
	}
	expression := named[0]
	var arguments []string
	switch expression.Kind() {
	case "call_expression", "decorator_call_expression":
		if list := expression.ChildByFieldName("arguments"); list != nil {
			for _, argument := range b.named(list) {
				arguments = append(arguments, b.text(argument))
			}
		}
		expression = expression.ChildByFieldName("function")
	}
	if expression != nil {
		switch expression.Kind() {
		case "member_expression", "decorator_member_expression":
			expression = expression.ChildByFieldName("property")
		}
	}
	if expression == nil {
		return nil
	}
	return tree.NewAnnotation(b.text(expression), arguments, b.rangeOf(n))
}

func jsTopLevel(b *builder, root *sitter.Node) *tree.TopLevelTree {
	var declarations []tree.Tree
	var header *sitter.Node
	for _, child := range b.named(root) {
		if child.Kind() == "import_statement" {
			header = child
		}
		if t := b.convert(child); !tree.IsNil(t) {
			declarations = append(declarations, t)
		}
	}
	return tree.NewTopLevelTree(b.fileMeta(), declarations, b.provider.AllComments(), b.firstTokenAfter(header))
}

func jsImport(b *builder, n *sitter.Node) tree.Tree {
	return tree.NewImportDeclarationTree(b.meta(n), b.convertAll(b.named(n)))
}

// jsFunction maps every function form. Arrow functions with an expression
// body get a one-statement block.
func jsFunction(b *builder, n *sitter.Node) tree.Tree {
	var parts tree.FunctionParts
	if name := n.ChildByFieldName("name"); name != nil {
		switch name.Kind() {
		case "identifier", "property_identifier", "private_property_identifier":
			parts.Name = b.identifier(name)
		default:
			parts.NativeChildren = append(parts.NativeChildren, b.convert(name))
		}
	}
	if parameter := n.ChildByFieldName("parameter"); parameter != nil {
		parts.FormalParameters = []tree.Tree{b.jsParameter(parameter)}
	} else {
		for _, parameter := range b.named(n.ChildByFieldName("parameters")) {
			parts.FormalParameters = append(parts.FormalParameters, b.jsParameter(parameter))
		}
	}
	parts.Body = b.block(n.ChildByFieldName("body"))

	if n.Kind() == "method_definition" {
		parts.IsConstructor = parts.Name != nil && parts.Name.Name == "constructor"
		if static := childOfKind(n, "static"); static != nil {
			parts.Modifiers = append(parts.Modifiers, tree.NewModifierTree(b.meta(static), tree.ModifierStatic))
		}
		if parts.Name != nil && len(parts.Name.Name) > 0 && parts.Name.Name[0] == '#' {
			parts.Modifiers = append(parts.Modifiers, b.syntheticModifier(n, tree.ModifierPrivate))
		}
	}
	for _, decorator := range fieldChildren(n, "decorator") {
		parts.NativeChildren = append(parts.NativeChildren, b.native(decorator))
	}
	return tree.NewFunctionDeclarationTree(b.meta(n), parts)
}

// jsParameter maps plain, defaulted and rest parameters; destructuring
// patterns stay native.
func (b *builder) jsParameter(n *sitter.Node) tree.Tree {
	switch n.Kind() {
	case "identifier":
		return tree.NewParameterTree(b.meta(n), b.identifier(n), nil, nil, nil)
	case "assignment_pattern":
		left := n.ChildByFieldName("left")
		if left != nil && left.Kind() == "identifier" {
			return tree.NewParameterTree(b.meta(n), b.identifier(left), nil, b.convert(n.ChildByFieldName("right")), nil)
		}
	case "rest_pattern":
		if named := b.named(n); len(named) == 1 && named[0].Kind() == "identifier" {
			return tree.NewParameterTree(b.meta(n), b.identifier(named[0]), nil, nil, nil)
		}
	}
	return b.convert(n)
}

// jsClass maps named class declarations. The class tree holds the name,
// the heritage and the members.
func jsClass(b *builder, n *sitter.Node) tree.Tree {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return b.native(n)
	}
	name := b.identifier(nameNode)
	var elements []tree.Tree
	for _, child := range b.named(n) {
		if child.Id() == nameNode.Id() {
			elements = append(elements, name)
			continue
		}
		elements = append(elements, b.convert(child))
	}
	classTree := tree.NewNativeTree(b.meta(n), tree.NewNativeKind("class"), elements)
	return tree.NewClassDeclarationTree(b.meta(n), name, classTree)
}

// jsDeclaration maps `let`, `const` and `var` declarations. A single
// declarator becomes the declaration itself.
func jsDeclaration(b *builder, n *sitter.Node) tree.Tree {
	declarators := b.unfielded(n)
	if len(declarators) == 1 && declarators[0].Kind() == "variable_declarator" {
		name := declarators[0].ChildByFieldName("name")
		if name != nil && name.Kind() == "identifier" {
			return tree.NewVariableDeclarationTree(b.meta(n), b.identifier(name), nil,
				b.convert(declarators[0].ChildByFieldName("value")), isConstDeclaration(b, n))
		}
	}
	return b.native(n)
}

func jsDeclarator(b *builder, n *sitter.Node) tree.Tree {
	name := n.ChildByFieldName("name")
	if name == nil || name.Kind() != "identifier" {
		return b.native(n)
	}
	isConst := false
	if parent := n.Parent(); parent != nil {
		isConst = isConstDeclaration(b, parent)
	}
	return tree.NewVariableDeclarationTree(b.meta(n), b.identifier(name), nil, b.convert(n.ChildByFieldName("value")), isConst)
}

func isConstDeclaration(b *builder, n *sitter.Node) bool {
	kind := n.ChildByFieldName("kind")
	return kind != nil && b.text(kind) == "const"
}

// condition maps a parenthesized control-flow condition without its
// parentheses.
func (b *builder) condition(n *sitter.Node) tree.Tree {
	if n != nil && n.Kind() == "parenthesized_expression" {
		if named := b.named(n); len(named) == 1 {
			return b.convert(named[0])
		}
	}
	return b.convert(n)
}

func jsIf(b *builder, n *sitter.Node) tree.Tree {
	var elseBranch tree.Tree
	var elseKeyword *tree.Token
	if clause := n.ChildByFieldName("alternative"); clause != nil {
		elseKeyword = b.firstToken(clause)
		if named := b.named(clause); len(named) == 1 {
			elseBranch = b.convert(named[0])
		}
	}
	return tree.NewIfTree(b.meta(n),
		b.condition(n.ChildByFieldName("condition")),
		b.convert(n.ChildByFieldName("consequence")),
		elseBranch, b.firstToken(n), elseKeyword)
}

func jsFor(b *builder, n *sitter.Node) tree.Tree {
	header := b.wrap("for_header",
		b.convert(n.ChildByFieldName("initializer")),
		b.convert(n.ChildByFieldName("condition")),
		b.convert(n.ChildByFieldName("increment")))
	return tree.NewLoopTree(b.meta(n), header, b.convert(n.ChildByFieldName("body")), tree.LoopFor, b.firstToken(n))
}

// jsForIn maps for-in and for-of loops; the operator tells them apart.
func jsForIn(b *builder, n *sitter.Node) tree.Tree {
	left, right := b.convert(n.ChildByFieldName("left")), b.convert(n.ChildByFieldName("right"))
	var header tree.Tree
	if !tree.IsNil(left) && !tree.IsNil(right) {
		operator := "in"
		if op := n.ChildByFieldName("operator"); op != nil {
			operator = b.text(op)
		}
		header = tree.NewNativeTree(b.span(left, right), tree.NewNativeKind("for_in_header", operator), []tree.Tree{left, right})
	}
	return tree.NewLoopTree(b.meta(n), header, b.convert(n.ChildByFieldName("body")), tree.LoopFor, b.firstToken(n))
}

func jsWhile(b *builder, n *sitter.Node) tree.Tree {
	kind := tree.LoopWhile
	if n.Kind() == "do_statement" {
		kind = tree.LoopDoWhile
	}
	return tree.NewLoopTree(b.meta(n),
		b.condition(n.ChildByFieldName("condition")),
		b.convert(n.ChildByFieldName("body")), kind, b.firstToken(n))
}

func jsSwitch(b *builder, n *sitter.Node) tree.Tree {
	var cases []*tree.MatchCaseTree
	for _, clause := range b.named(n.ChildByFieldName("body")) {
		switch clause.Kind() {
		case "switch_case", "switch_default":
			body := b.statementBlock(b.convertAll(fieldChildren(clause, "body")))
			cases = append(cases, tree.NewMatchCaseTree(b.meta(clause), b.convert(clause.ChildByFieldName("value")), body))
		}
	}
	return tree.NewMatchTree(b.meta(n), b.condition(n.ChildByFieldName("value")), cases, b.firstToken(n))
}

func jsTry(b *builder, n *sitter.Node) tree.Tree {
	var catches []*tree.CatchTree
	if handler := n.ChildByFieldName("handler"); handler != nil {
		catches = append(catches, tree.NewCatchTree(b.meta(handler),
			b.convert(handler.ChildByFieldName("parameter")),
			b.block(handler.ChildByFieldName("body")),
			b.firstToken(handler)))
	}
	var finallyBlock tree.Tree
	if finalizer := n.ChildByFieldName("finalizer"); finalizer != nil {
		finallyBlock = b.block(finalizer.ChildByFieldName("body"))
	}
	return tree.NewExceptionHandlingTree(b.meta(n), b.block(n.ChildByFieldName("body")), catches, finallyBlock, b.firstToken(n))
}

func jsThrow(b *builder, n *sitter.Node) tree.Tree {
	var body tree.Tree
	if named := b.named(n); len(named) == 1 {
		body = b.convert(named[0])
	}
	return tree.NewThrowTree(b.meta(n), body, b.firstToken(n))
}

func jsReturn(b *builder, n *sitter.Node) tree.Tree {
	var body tree.Tree
	if named := b.named(n); len(named) == 1 {
		body = b.convert(named[0])
	}
	return tree.NewReturnTree(b.meta(n), body, b.firstToken(n))
}

func jsJump(b *builder, n *sitter.Node) tree.Tree {
	kind := tree.JumpBreak
	if n.Kind() == "continue_statement" {
		kind = tree.JumpContinue
	}
	return tree.NewJumpTree(b.meta(n), b.identifier(n.ChildByFieldName("label")), kind, b.firstToken(n))
}

// jsTernary maps `c ? a : b` to an if whose keywords are `?` and `:`.
func jsTernary(b *builder, n *sitter.Node) tree.Tree {
	condition := n.ChildByFieldName("condition")
	consequence := n.ChildByFieldName("consequence")
	alternative := n.ChildByFieldName("alternative")
	if condition == nil || consequence == nil || alternative == nil {
		return b.native(n)
	}
	return tree.NewIfTree(b.meta(n),
		b.convert(condition), b.convert(consequence), b.convert(alternative),
		b.tokenWithText(condition, consequence, "?"),
		b.tokenWithText(consequence, alternative, ":"))
}

var jsBinaryOperators = map[string]tree.BinaryOperator{
	"&&":  tree.OperatorConditionalAnd,
	"||":  tree.OperatorConditionalOr,
	"==":  tree.OperatorEqualTo,
	"===": tree.OperatorEqualTo,
	"!=":  tree.OperatorNotEqualTo,
	"!==": tree.OperatorNotEqualTo,
	">":   tree.OperatorGreaterThan,
	">=":  tree.OperatorGreaterThanOrEqualTo,
	"<":   tree.OperatorLessThan,
	"<=":  tree.OperatorLessThanOrEqualTo,
	"+":   tree.OperatorPlus,
	"-":   tree.OperatorMinus,
	"*":   tree.OperatorTimes,
	"/":   tree.OperatorDividedBy,
	"%":   tree.OperatorModulo,
}

func jsBinary(b *builder, n *sitter.Node) tree.Tree {
	return b.binary(n, jsBinaryOperators)
}

func jsUnary(b *builder, n *sitter.Node) tree.Tree {
	return b.unary(n, "argument")
}

func jsUpdate(b *builder, n *sitter.Node) tree.Tree {
	operatorNode, argument := n.ChildByFieldName("operator"), n.ChildByFieldName("argument")
	if operatorNode == nil || argument == nil {
		return b.native(n)
	}
	operator := tree.UnaryIncrement
	if b.text(operatorNode) == "--" {
		operator = tree.UnaryDecrement
	}
	return tree.NewUnaryExpressionTree(b.meta(n), operator, b.convert(argument))
}

func jsAssignment(b *builder, n *sitter.Node) tree.Tree {
	operator := tree.AssignEqual
	if operatorNode := n.ChildByFieldName("operator"); operatorNode != nil {
		var ok bool
		if operator, ok = assignmentOperators[b.text(operatorNode)]; !ok {
			return b.native(n)
		}
	}
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if left == nil || right == nil {
		return b.native(n)
	}
	return tree.NewAssignmentExpressionTree(b.meta(n), operator, b.convert(left), b.convert(right))
}

// jsCall maps calls with an argument list; tagged templates stay native.
func jsCall(b *builder, n *sitter.Node) tree.Tree {
	arguments := n.ChildByFieldName("arguments")
	if arguments == nil || arguments.Kind() != "arguments" {
		return b.native(n)
	}
	return tree.NewFunctionInvocationTree(b.meta(n), b.convert(n.ChildByFieldName("function")), b.convertAll(b.named(arguments)))
}

func jsMember(b *builder, n *sitter.Node) tree.Tree {
	property := n.ChildByFieldName("property")
	if property == nil || (property.Kind() != "property_identifier" && property.Kind() != "private_property_identifier") {
		return b.native(n)
	}
	return tree.NewMemberSelectTree(b.meta(n), b.convert(n.ChildByFieldName("object")), b.identifier(property))
}

var decimalInteger = regexp.MustCompile(`^(0|[1-9][0-9_]*|0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+)n?$`)

func jsNumber(b *builder, n *sitter.Node) tree.Tree {
	if text := b.text(n); decimalInteger.MatchString(text) {
		return tree.NewIntegerLiteralTree(b.meta(n), text)
	}
	return literalHandler(b, n)
}

// jsTemplate maps a template without substitutions to a string literal.
func jsTemplate(b *builder, n *sitter.Node) tree.Tree {
	if jsAtomic(n) {
		return stringHandler(b, n)
	}
	return b.native(n)
}
