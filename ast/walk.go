package ast

import (
	"fmt"
	"reflect"
)

// Path is one step of a traversal: the current node plus the chain back to
// the root. Callbacks receive paths rather than bare nodes so parent context
// is available without a separate upward search.
type Path struct {
	Node   Node
	Parent *Path
}

// ParentNode returns the parent node, or nil at the root.
func (p *Path) ParentNode() Node {
	if p.Parent == nil {
		return nil
	}
	return p.Parent.Node
}

// Ancestors returns the chain of ancestor nodes, nearest first.
func (p *Path) Ancestors() []Node {
	var out []Node
	for q := p.Parent; q != nil; q = q.Parent {
		out = append(out, q.Node)
	}
	return out
}

// Root returns the path of the traversal root.
func (p *Path) Root() *Path {
	q := p
	for q.Parent != nil {
		q = q.Parent
	}
	return q
}

// Visit traverses the tree rooted at root in depth-first pre-order, calling
// fn for every node. Returning false prunes the node's subtree. Child order
// follows EachChild, the same table the rewriter, writer and dumper use.
func Visit(root Node, fn func(*Path) bool) {
	if isNilNode(root) {
		return
	}
	visit(&Path{Node: root}, fn)
}

func visit(p *Path, fn func(*Path) bool) {
	if !fn(p) {
		return
	}
	EachChild(p.Node, func(c Node) {
		visit(&Path{Node: c, Parent: p}, fn)
	})
}

// IsNil reports whether n is nil or a typed nil pointer boxed in an
// interface. Optional child slots hold typed nils, so dispatch sites use this
// rather than a bare comparison.
func IsNil(n Node) bool { return isNilNode(n) }

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func visitChild(fn func(Node), n Node) {
	if isNilNode(n) {
		return
	}
	fn(n)
}

func visitList[T Node](fn func(Node), list []T) {
	for _, e := range list {
		visitChild(fn, e)
	}
}

// EachChild calls fn for every significant child of n, in exact source
// left-to-right order. This table is the single enumeration contract the
// writer replays to regenerate text; a node kind missing here is an internal
// consistency error and panics.
func EachChild(n Node, fn func(Node)) {
	switch x := n.(type) {
	case *File:
		visitList(fn, x.Anns)
		visitChild(fn, x.Package)
		visitList(fn, x.Imports)
		visitList(fn, x.Decls)

	case *Script:
		visitList(fn, x.Anns)
		visitChild(fn, x.Package)
		visitList(fn, x.Imports)
		visitList(fn, x.Stmts)

	case *PackageDirective:
		visitList(fn, x.Names)

	case *ImportDirective:
		visitList(fn, x.Names)
		visitChild(fn, x.Alias)

	case *ImportAlias:
		visitChild(fn, x.Name)

	case *ClassDecl:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Keyword)
		visitChild(fn, x.Name)
		visitChild(fn, x.TypeParams)
		visitChild(fn, x.PrimaryCtor)
		visitList(fn, x.Parents)
		visitChild(fn, x.Constraints)
		visitChild(fn, x.Body)

	case *ClassParent:
		visitChild(fn, x.Type)
		visitChild(fn, x.Args)
		visitChild(fn, x.Delegate)

	case *PrimaryConstructor:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Keyword)
		visitChild(fn, x.Params)

	case *ClassBody:
		visitList(fn, x.EnumEntries)
		visitList(fn, x.Decls)

	case *EnumEntry:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Name)
		visitChild(fn, x.Args)
		visitChild(fn, x.Body)

	case *InitBlock:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Block)

	case *FuncDecl:
		visitChild(fn, x.Mods)
		visitChild(fn, x.TypeParams)
		visitChild(fn, x.Receiver)
		visitChild(fn, x.Name)
		visitChild(fn, x.Params)
		visitChild(fn, x.ReturnType)
		visitChild(fn, x.Constraints)
		visitChild(fn, x.Contract)
		visitChild(fn, x.Body)

	case *BlockBody:
		visitChild(fn, x.Block)

	case *ExprBody:
		visitChild(fn, x.Expr)

	case *FuncParam:
		visitChild(fn, x.Mods)
		visitChild(fn, x.ValOrVar)
		visitChild(fn, x.Name)
		visitChild(fn, x.Type)
		visitChild(fn, x.Default)

	case *FuncParamList:
		visitList(fn, x.Params)

	case *PropertyDecl:
		visitChild(fn, x.Mods)
		visitChild(fn, x.ValOrVar)
		visitChild(fn, x.TypeParams)
		visitChild(fn, x.Receiver)
		visitList(fn, x.Vars)
		visitChild(fn, x.Constraints)
		visitChild(fn, x.Initializer)
		visitChild(fn, x.Delegate)
		visitList(fn, x.Accessors)

	case *Getter:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Type)
		visitChild(fn, x.Body)

	case *Setter:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Param)
		visitChild(fn, x.Body)

	case *Variable:
		visitChild(fn, x.Name)
		visitChild(fn, x.Type)

	case *TypeAliasDecl:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Name)
		visitChild(fn, x.TypeParams)
		visitChild(fn, x.Type)

	case *SecondaryConstructor:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Keyword)
		visitChild(fn, x.Params)
		visitChild(fn, x.DelegationCall)
		visitChild(fn, x.Block)

	case *ConstructorDelegationCall:
		visitChild(fn, x.Target)
		visitChild(fn, x.Args)

	case *SimpleType:
		visitList(fn, x.Pieces)

	case *SimpleTypePiece:
		visitChild(fn, x.Name)
		visitChild(fn, x.TypeArgs)

	case *NullableType:
		visitChild(fn, x.Inner)

	case *ParenType:
		visitChild(fn, x.Inner)

	case *FuncType:
		visitChild(fn, x.Receiver)
		visitList(fn, x.Params)
		visitChild(fn, x.Return)

	case *FuncTypeParam:
		visitChild(fn, x.Name)
		visitChild(fn, x.Type)

	case *DynamicType:

	case *TypeParam:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Name)
		visitChild(fn, x.Type)

	case *TypeParamList:
		visitList(fn, x.Params)

	case *TypeArg:
		visitChild(fn, x.Mods)
		visitChild(fn, x.Type)

	case *TypeArgList:
		visitList(fn, x.Args)

	case *ValueArg:
		visitChild(fn, x.Name)
		visitChild(fn, x.Expr)

	case *ValueArgList:
		visitList(fn, x.Args)

	case *TypeConstraint:
		visitList(fn, x.Anns)
		visitChild(fn, x.Name)
		visitChild(fn, x.Type)

	case *TypeConstraintList:
		visitList(fn, x.Constraints)

	case *Contract:
		visitList(fn, x.Effects)

	case *Modifiers:
		visitList(fn, x.Elems)

	case *AnnotationSet:
		visitChild(fn, x.Target)
		visitList(fn, x.Anns)

	case *Annotation:
		visitChild(fn, x.Type)
		visitChild(fn, x.Args)

	case *IfExpr:
		visitChild(fn, x.Cond)
		visitChild(fn, x.Then)
		visitChild(fn, x.Else)

	case *WhenExpr:
		visitChild(fn, x.Subject)
		visitList(fn, x.Branches)

	case *WhenSubject:
		visitList(fn, x.Anns)
		visitChild(fn, x.Var)
		visitChild(fn, x.Expr)

	case *WhenBranch:
		visitList(fn, x.Conds)
		visitChild(fn, x.Else)
		visitChild(fn, x.Body)

	case *WhenCondExpr:
		visitChild(fn, x.Expr)

	case *WhenCondIn:
		visitChild(fn, x.Expr)

	case *WhenCondIs:
		visitChild(fn, x.Type)

	case *TryExpr:
		visitChild(fn, x.Block)
		visitList(fn, x.Catches)
		visitChild(fn, x.Finally)

	case *CatchClause:
		visitChild(fn, x.Params)
		visitChild(fn, x.Block)

	case *ForExpr:
		visitChild(fn, x.Param)
		visitChild(fn, x.Range)
		visitChild(fn, x.Body)

	case *WhileExpr:
		if x.DoWhile {
			visitChild(fn, x.Body)
			visitChild(fn, x.Cond)
		} else {
			visitChild(fn, x.Cond)
			visitChild(fn, x.Body)
		}

	case *BinaryExpr:
		visitChild(fn, x.LHS)
		visitChild(fn, x.Oper)
		visitChild(fn, x.RHS)

	case *UnaryExpr:
		if x.Prefix {
			visitChild(fn, x.Oper)
			visitChild(fn, x.Expr)
		} else {
			visitChild(fn, x.Expr)
			visitChild(fn, x.Oper)
		}

	case *BinaryTypeExpr:
		visitChild(fn, x.LHS)
		visitChild(fn, x.Oper)
		visitChild(fn, x.RHS)

	case *CallableRefExpr:
		visitChild(fn, x.Recv)
		visitChild(fn, x.Name)

	case *ClassLitExpr:
		visitChild(fn, x.Recv)

	case *ParenExpr:
		visitChild(fn, x.Expr)

	case *StringTemplateExpr:
		visitList(fn, x.Entries)

	case *LiteralEntry:

	case *EscapeEntry:

	case *ShortTemplateEntry:
		visitChild(fn, x.Target)

	case *LongTemplateEntry:
		visitChild(fn, x.Expr)

	case *ConstantExpr:

	case *LambdaExpr:
		visitList(fn, x.Params)
		visitList(fn, x.Stmts)

	case *LambdaParam:
		visitList(fn, x.Vars)
		visitChild(fn, x.Type)

	case *ThisExpr:
		visitChild(fn, x.Label)

	case *SuperExpr:
		visitChild(fn, x.TypeArg)
		visitChild(fn, x.Label)

	case *ObjectLitExpr:
		visitChild(fn, x.Decl)

	case *ThrowExpr:
		visitChild(fn, x.Expr)

	case *ReturnExpr:
		visitChild(fn, x.Label)
		visitChild(fn, x.Expr)

	case *ContinueExpr:
		visitChild(fn, x.Label)

	case *BreakExpr:
		visitChild(fn, x.Label)

	case *CollLitExpr:
		visitList(fn, x.Exprs)

	case *NameExpr:

	case *LabeledExpr:
		visitChild(fn, x.Label)
		visitChild(fn, x.Stmt)

	case *AnnotatedExpr:
		visitList(fn, x.Anns)
		visitChild(fn, x.Stmt)

	case *CallExpr:
		visitChild(fn, x.Callee)
		visitChild(fn, x.TypeArgs)
		visitChild(fn, x.Args)
		visitChild(fn, x.Lambda)

	case *TrailingLambda:
		visitList(fn, x.Anns)
		visitChild(fn, x.Label)
		visitChild(fn, x.Expr)

	case *IndexExpr:
		visitChild(fn, x.Expr)
		visitList(fn, x.Indices)

	case *AnonFuncExpr:
		visitChild(fn, x.Func)

	case *BlockExpr:
		visitList(fn, x.Stmts)

	case *Keyword:

	case *Whitespace, *BlankLines, *Comment, *Semicolon, *TrailingComma:

	default:
		panic(fmt.Sprintf("ast: EachChild: unknown node kind %T", n))
	}
}
