package tree

// TopLevelTree is the root of a file.
type TopLevelTree struct {
	node
	Declarations  []Tree
	AllComments   []*Comment
	FirstCpdToken *Token
}

// NewTopLevelTree returns a file root. firstCpdToken is the first token
// after package and import declarations, or nil.
func NewTopLevelTree(meta *MetaData, declarations []Tree, allComments []*Comment, firstCpdToken *Token) *TopLevelTree {
	return &TopLevelTree{
		node:          node{metaData: meta},
		Declarations:  compact(declarations),
		AllComments:   allComments,
		FirstCpdToken: firstCpdToken,
	}
}

func (*TopLevelTree) Kind() Kind { return KindTopLevel }

func (t *TopLevelTree) Children() []Tree {
	var c children
	c.addAll(t.Declarations)
	return c
}

// PackageDeclarationTree is a package or namespace clause.
type PackageDeclarationTree struct {
	node
	Elements []Tree
}

// NewPackageDeclarationTree returns a package declaration.
func NewPackageDeclarationTree(meta *MetaData, elements []Tree) *PackageDeclarationTree {
	return &PackageDeclarationTree{node: node{metaData: meta}, Elements: compact(elements)}
}

func (*PackageDeclarationTree) Kind() Kind { return KindPackageDeclaration }

func (t *PackageDeclarationTree) Children() []Tree {
	var c children
	c.addAll(t.Elements)
	return c
}

// ImportDeclarationTree is an import statement.
type ImportDeclarationTree struct {
	node
	Elements []Tree
}

// NewImportDeclarationTree returns an import declaration.
func NewImportDeclarationTree(meta *MetaData, elements []Tree) *ImportDeclarationTree {
	return &ImportDeclarationTree{node: node{metaData: meta}, Elements: compact(elements)}
}

func (*ImportDeclarationTree) Kind() Kind { return KindImportDeclaration }

func (t *ImportDeclarationTree) Children() []Tree {
	var c children
	c.addAll(t.Elements)
	return c
}

// ClassDeclarationTree is a class or record-like type declaration.
// Identifier is a descendant of ClassTree, which holds the whole declaration.
type ClassDeclarationTree struct {
	node
	Identifier *IdentifierTree
	ClassTree  Tree
}

// NewClassDeclarationTree returns a class declaration.
func NewClassDeclarationTree(meta *MetaData, identifier *IdentifierTree, classTree Tree) *ClassDeclarationTree {
	return &ClassDeclarationTree{
		node:       node{metaData: meta},
		Identifier: identifier,
		ClassTree:  optional(classTree),
	}
}

func (*ClassDeclarationTree) Kind() Kind { return KindClassDeclaration }

func (t *ClassDeclarationTree) Children() []Tree {
	var c children
	c.add(t.ClassTree)
	return c
}

// FunctionDeclarationTree is a function, method, constructor or function
// literal. Name is nil for anonymous functions, Body is nil for
// declarations without implementation. NativeChildren holds the parts with
// no common-model equivalent, such as receivers or type parameters.
type FunctionDeclarationTree struct {
	node
	Modifiers        []Tree
	ReturnType       Tree
	Name             *IdentifierTree
	FormalParameters []Tree
	Body             *BlockTree
	NativeChildren   []Tree
	IsConstructor    bool
}

// FunctionParts groups the fields of a function declaration.
type FunctionParts struct {
	Modifiers        []Tree
	ReturnType       Tree
	Name             *IdentifierTree
	FormalParameters []Tree
	Body             *BlockTree
	NativeChildren   []Tree
	IsConstructor    bool
}

// NewFunctionDeclarationTree returns a function declaration.
func NewFunctionDeclarationTree(meta *MetaData, parts FunctionParts) *FunctionDeclarationTree {
	return &FunctionDeclarationTree{
		node:             node{metaData: meta},
		Modifiers:        compact(parts.Modifiers),
		ReturnType:       optional(parts.ReturnType),
		Name:             parts.Name,
		FormalParameters: compact(parts.FormalParameters),
		Body:             parts.Body,
		NativeChildren:   compact(parts.NativeChildren),
		IsConstructor:    parts.IsConstructor,
	}
}

func (*FunctionDeclarationTree) Kind() Kind { return KindFunctionDeclaration }

func (t *FunctionDeclarationTree) Children() []Tree {
	var c children
	c.addAll(t.Modifiers)
	c.add(t.ReturnType)
	c.add(t.Name)
	c.addAll(t.FormalParameters)
	c.add(t.Body)
	c.addAll(t.NativeChildren)
	return c.sorted()
}

// RangeToHighlight returns the range issues about the function point at:
// the name when present, otherwise the first token of the declaration.
func (t *FunctionDeclarationTree) RangeToHighlight() TextRange {
	if t.Name != nil {
		return t.Name.TextRange()
	}
	if first := t.MetaData().Provider().FirstToken(t.TextRange()); first != nil {
		return first.Range
	}
	return t.TextRange()
}

// HasModifier reports whether the function carries modifier kind.
func (t *FunctionDeclarationTree) HasModifier(kind ModifierKind) bool {
	for _, m := range t.Modifiers {
		if modifier, ok := m.(*ModifierTree); ok && modifier.Modifier == kind {
			return true
		}
	}
	return false
}

// ParameterTree is a formal parameter.
type ParameterTree struct {
	node
	Identifier   *IdentifierTree
	Type         Tree
	DefaultValue Tree
	Modifiers    []Tree
}

// NewParameterTree returns a parameter.
func NewParameterTree(meta *MetaData, identifier *IdentifierTree, typ Tree, defaultValue Tree, modifiers []Tree) *ParameterTree {
	return &ParameterTree{
		node:         node{metaData: meta},
		Identifier:   identifier,
		Type:         optional(typ),
		DefaultValue: optional(defaultValue),
		Modifiers:    compact(modifiers),
	}
}

func (*ParameterTree) Kind() Kind { return KindParameter }

func (t *ParameterTree) Children() []Tree {
	var c children
	c.addAll(t.Modifiers)
	c.add(t.Identifier)
	c.add(t.Type)
	c.add(t.DefaultValue)
	return c.sorted()
}

// VariableDeclarationTree declares one variable or constant.
type VariableDeclarationTree struct {
	node
	Identifier  *IdentifierTree
	Type        Tree
	Initializer Tree
	IsVal       bool
}

// NewVariableDeclarationTree returns a variable declaration. isVal marks
// constants and single-assignment bindings.
func NewVariableDeclarationTree(meta *MetaData, identifier *IdentifierTree, typ, initializer Tree, isVal bool) *VariableDeclarationTree {
	return &VariableDeclarationTree{
		node:        node{metaData: meta},
		Identifier:  identifier,
		Type:        optional(typ),
		Initializer: optional(initializer),
		IsVal:       isVal,
	}
}

func (*VariableDeclarationTree) Kind() Kind { return KindVariableDeclaration }

func (t *VariableDeclarationTree) Children() []Tree {
	var c children
	c.add(t.Identifier)
	c.add(t.Type)
	c.add(t.Initializer)
	return c.sorted()
}

// ModifierTree is a declaration modifier such as visibility.
type ModifierTree struct {
	node
	Modifier ModifierKind
}

// NewModifierTree returns a modifier.
func NewModifierTree(meta *MetaData, modifier ModifierKind) *ModifierTree {
	return &ModifierTree{node: node{metaData: meta}, Modifier: modifier}
}

func (*ModifierTree) Kind() Kind { return KindModifier }

func (*ModifierTree) Children() []Tree { return nil }
