// Package ast defines the lossless abstract syntax tree for a Kotlin-shaped
// source language: an immutable, closed hierarchy of node types, the extras
// side table that preserves whitespace and comments by node identity, and the
// traversal and copy-based rewrite engines that operate over both.
//
// Nodes are plain pointer structs and are never mutated after construction.
// Pointer identity is node identity: two structurally equal nodes at
// different tree positions remain distinct keys in an ExtrasMap.
package ast

import "fmt"

// Node is implemented by every AST node. The hierarchy is closed; dispatch
// sites (EachChild, Rewrite, the writer) are exhaustive and panic on a node
// type they do not know.
type Node interface {
	node()
}

// Stmt is anything usable as a statement inside a block or script. Every
// expression and every declaration is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node.
type Expr interface {
	Stmt
	exprNode()
}

// Decl represents a declaration node.
type Decl interface {
	Stmt
	declNode()
}

// Type represents a type reference.
type Type interface {
	Node
	typeNode()
}

// Modifier is a declaration modifier: a keyword or an annotation set.
type Modifier interface {
	Node
	modifierNode()
}

// FuncBody is a function or accessor body: a block or a single expression.
type FuncBody interface {
	Node
	funcBodyNode()
}

// WhenCond is one condition of a when branch.
type WhenCond interface {
	Node
	whenCondNode()
}

// StringTemplateEntry is one piece of a string template.
type StringTemplateEntry interface {
	Node
	templateEntryNode()
}

// ShortTemplateTarget restricts short interpolation entries ($name, $this) to
// the two expression forms the grammar allows. The restriction holds by
// construction: only NameExpr and ThisExpr implement it.
type ShortTemplateTarget interface {
	Expr
	shortTargetNode()
}

// BinaryOper is a binary operator: a fixed symbol keyword or, for infix
// function calls, a name.
type BinaryOper interface {
	Node
	binaryOperNode()
}

// ExtraNode is trivia: whitespace, comments, semicolons, trailing commas.
type ExtraNode interface {
	Node
	extraNode()
}

// Accessor is a property getter or setter.
type Accessor interface {
	Node
	accessorNode()
}

// InvariantError reports an inconsistent field combination handed to a node
// constructor. It is always fatal to that construction call.
type InvariantError struct {
	Kind    string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ast: invalid %s: %s", e.Kind, e.Message)
}

func invariant(kind, format string, args ...any) error {
	return &InvariantError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// File is a whole compilation unit.
type File struct {
	Anns    []*AnnotationSet
	Package *PackageDirective
	Imports []*ImportDirective
	Decls   []Decl
}

// NewFile constructs a file node.
func NewFile(anns []*AnnotationSet, pkg *PackageDirective, imports []*ImportDirective, decls []Decl) *File {
	return &File{Anns: anns, Package: pkg, Imports: imports, Decls: decls}
}

func (*File) node() {}

// Script is the alternate top-level form whose body is a statement sequence
// rather than a declaration list.
type Script struct {
	Anns    []*AnnotationSet
	Package *PackageDirective
	Imports []*ImportDirective
	Stmts   []Stmt
}

// NewScript constructs a script node.
func NewScript(anns []*AnnotationSet, pkg *PackageDirective, imports []*ImportDirective, stmts []Stmt) *Script {
	return &Script{Anns: anns, Package: pkg, Imports: imports, Stmts: stmts}
}

func (*Script) node() {}

// PackageDirective is the package clause; Names holds the dot-joined pieces.
type PackageDirective struct {
	Names []*NameExpr
}

// NewPackageDirective constructs a package clause node.
func NewPackageDirective(names []*NameExpr) *PackageDirective {
	return &PackageDirective{Names: names}
}

func (*PackageDirective) node() {}

// ImportDirective is a single import, optionally a wildcard or aliased.
type ImportDirective struct {
	Names    []*NameExpr
	Wildcard bool
	Alias    *ImportAlias
}

// NewImportDirective constructs an import node. A wildcard import cannot also
// carry an alias.
func NewImportDirective(names []*NameExpr, wildcard bool, alias *ImportAlias) (*ImportDirective, error) {
	if wildcard && alias != nil {
		return nil, invariant("ImportDirective", "wildcard import cannot have an alias")
	}
	return &ImportDirective{Names: names, Wildcard: wildcard, Alias: alias}, nil
}

func (*ImportDirective) node() {}

// ImportAlias is the "as name" tail of an import.
type ImportAlias struct {
	Name *NameExpr
}

// NewImportAlias constructs an import alias node.
func NewImportAlias(name *NameExpr) *ImportAlias {
	return &ImportAlias{Name: name}
}

func (*ImportAlias) node() {}
