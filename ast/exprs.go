package ast

import "strings"

// IfExpr is an if/else expression.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// NewIfExpr constructs an if expression node.
func NewIfExpr(cond, then, els Expr) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els}
}

func (*IfExpr) node()     {}
func (*IfExpr) stmtNode() {}
func (*IfExpr) exprNode() {}

// WhenExpr is a when expression with an optional subject.
type WhenExpr struct {
	Subject  *WhenSubject
	Branches []*WhenBranch
}

// NewWhenExpr constructs a when expression node.
func NewWhenExpr(subject *WhenSubject, branches []*WhenBranch) *WhenExpr {
	return &WhenExpr{Subject: subject, Branches: branches}
}

func (*WhenExpr) node()     {}
func (*WhenExpr) stmtNode() {}
func (*WhenExpr) exprNode() {}

// WhenSubject is the parenthesized subject of a when, optionally binding a
// variable ("when (val x = f())").
type WhenSubject struct {
	Anns []*AnnotationSet
	Var  *Variable
	Expr Expr
}

// NewWhenSubject constructs a when subject node.
func NewWhenSubject(anns []*AnnotationSet, v *Variable, expr Expr) *WhenSubject {
	return &WhenSubject{Anns: anns, Var: v, Expr: expr}
}

func (*WhenSubject) node() {}

// WhenBranch is one arm of a when. A branch either carries at least one
// condition or the else keyword, never both; an else branch cannot carry a
// trailing comma.
type WhenBranch struct {
	Conds         []WhenCond
	Else          *Keyword
	TrailingComma bool
	Body          Expr
}

// NewWhenBranch constructs a when branch node.
func NewWhenBranch(conds []WhenCond, elseKeyword *Keyword, trailingComma bool, body Expr) (*WhenBranch, error) {
	if elseKeyword != nil && elseKeyword.Kind != KwElse {
		return nil, invariant("WhenBranch", "else marker must be the else keyword, got %q", elseKeyword.Text())
	}
	if len(conds) > 0 && elseKeyword != nil {
		return nil, invariant("WhenBranch", "a branch with conditions cannot also carry an else marker")
	}
	if len(conds) == 0 && elseKeyword == nil {
		return nil, invariant("WhenBranch", "a branch without conditions must carry an else marker")
	}
	if elseKeyword != nil && trailingComma {
		return nil, invariant("WhenBranch", "an else branch cannot carry a trailing separator")
	}
	return &WhenBranch{Conds: conds, Else: elseKeyword, TrailingComma: trailingComma, Body: body}, nil
}

// IsElse reports whether the branch is the else arm.
func (b *WhenBranch) IsElse() bool { return b.Else != nil }

func (*WhenBranch) node() {}

// WhenCondExpr is a plain expression condition.
type WhenCondExpr struct {
	Expr Expr
}

// NewWhenCondExpr constructs an expression condition.
func NewWhenCondExpr(expr Expr) *WhenCondExpr { return &WhenCondExpr{Expr: expr} }

func (*WhenCondExpr) node()         {}
func (*WhenCondExpr) whenCondNode() {}

// WhenCondIn is an "in"/"!in" range condition.
type WhenCondIn struct {
	Not  bool
	Expr Expr
}

// NewWhenCondIn constructs a range condition.
func NewWhenCondIn(not bool, expr Expr) *WhenCondIn { return &WhenCondIn{Not: not, Expr: expr} }

func (*WhenCondIn) node()         {}
func (*WhenCondIn) whenCondNode() {}

// WhenCondIs is an "is"/"!is" type condition.
type WhenCondIs struct {
	Not  bool
	Type Type
}

// NewWhenCondIs constructs a type condition.
func NewWhenCondIs(not bool, typ Type) *WhenCondIs { return &WhenCondIs{Not: not, Type: typ} }

func (*WhenCondIs) node()         {}
func (*WhenCondIs) whenCondNode() {}

// TryExpr is a try expression with catch clauses and an optional finally.
type TryExpr struct {
	Block   *BlockExpr
	Catches []*CatchClause
	Finally *BlockExpr
}

// NewTryExpr constructs a try expression node.
func NewTryExpr(block *BlockExpr, catches []*CatchClause, finally *BlockExpr) *TryExpr {
	return &TryExpr{Block: block, Catches: catches, Finally: finally}
}

func (*TryExpr) node()     {}
func (*TryExpr) stmtNode() {}
func (*TryExpr) exprNode() {}

// CatchClause is one catch arm of a try expression.
type CatchClause struct {
	Params *FuncParamList
	Block  *BlockExpr
}

// NewCatchClause constructs a catch clause node.
func NewCatchClause(params *FuncParamList, block *BlockExpr) *CatchClause {
	return &CatchClause{Params: params, Block: block}
}

func (*CatchClause) node() {}

// ForExpr is a for loop.
type ForExpr struct {
	Param *LambdaParam
	Range Expr
	Body  Expr
}

// NewForExpr constructs a for loop node.
func NewForExpr(param *LambdaParam, rng Expr, body Expr) *ForExpr {
	return &ForExpr{Param: param, Range: rng, Body: body}
}

func (*ForExpr) node()     {}
func (*ForExpr) stmtNode() {}
func (*ForExpr) exprNode() {}

// WhileExpr is a while or do-while loop.
type WhileExpr struct {
	Cond    Expr
	Body    Expr
	DoWhile bool
}

// NewWhileExpr constructs a while loop node.
func NewWhileExpr(cond, body Expr, doWhile bool) *WhileExpr {
	return &WhileExpr{Cond: cond, Body: body, DoWhile: doWhile}
}

func (*WhileExpr) node()     {}
func (*WhileExpr) stmtNode() {}
func (*WhileExpr) exprNode() {}

// BinaryExpr is a binary operation; the operator is a symbol keyword or, for
// infix calls, a name.
type BinaryExpr struct {
	LHS  Expr
	Oper BinaryOper
	RHS  Expr
}

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(lhs Expr, oper BinaryOper, rhs Expr) *BinaryExpr {
	return &BinaryExpr{LHS: lhs, Oper: oper, RHS: rhs}
}

func (*BinaryExpr) node()     {}
func (*BinaryExpr) stmtNode() {}
func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix or postfix unary operation.
type UnaryExpr struct {
	Expr   Expr
	Oper   *Keyword
	Prefix bool
}

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(expr Expr, oper *Keyword, prefix bool) *UnaryExpr {
	return &UnaryExpr{Expr: expr, Oper: oper, Prefix: prefix}
}

func (*UnaryExpr) node()     {}
func (*UnaryExpr) stmtNode() {}
func (*UnaryExpr) exprNode() {}

// BinaryTypeExpr is an operation whose right operand is a type (as, as?, is,
// !is).
type BinaryTypeExpr struct {
	LHS  Expr
	Oper *Keyword
	RHS  Type
}

// NewBinaryTypeExpr constructs a binary type operation node.
func NewBinaryTypeExpr(lhs Expr, oper *Keyword, rhs Type) *BinaryTypeExpr {
	return &BinaryTypeExpr{LHS: lhs, Oper: oper, RHS: rhs}
}

func (*BinaryTypeExpr) node()     {}
func (*BinaryTypeExpr) stmtNode() {}
func (*BinaryTypeExpr) exprNode() {}

// CallableRefExpr is a "recv::name" callable reference. Recv is an expression
// or a type, or nil.
type CallableRefExpr struct {
	Recv Node
	Name *NameExpr
}

// NewCallableRefExpr constructs a callable reference node.
func NewCallableRefExpr(recv Node, name *NameExpr) (*CallableRefExpr, error) {
	if err := checkDoubleColonRecv("CallableRefExpr", recv); err != nil {
		return nil, err
	}
	return &CallableRefExpr{Recv: recv, Name: name}, nil
}

func (*CallableRefExpr) node()     {}
func (*CallableRefExpr) stmtNode() {}
func (*CallableRefExpr) exprNode() {}

// ClassLitExpr is a "recv::class" literal.
type ClassLitExpr struct {
	Recv Node
}

// NewClassLitExpr constructs a class literal node.
func NewClassLitExpr(recv Node) (*ClassLitExpr, error) {
	if err := checkDoubleColonRecv("ClassLitExpr", recv); err != nil {
		return nil, err
	}
	return &ClassLitExpr{Recv: recv}, nil
}

func (*ClassLitExpr) node()     {}
func (*ClassLitExpr) stmtNode() {}
func (*ClassLitExpr) exprNode() {}

func checkDoubleColonRecv(kind string, recv Node) error {
	if recv == nil {
		return nil
	}
	switch recv.(type) {
	case Expr, Type:
		return nil
	}
	return invariant(kind, "receiver must be an expression or a type, got %T", recv)
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Expr Expr
}

// NewParenExpr constructs a parenthesized expression node.
func NewParenExpr(expr Expr) *ParenExpr { return &ParenExpr{Expr: expr} }

func (*ParenExpr) node()     {}
func (*ParenExpr) stmtNode() {}
func (*ParenExpr) exprNode() {}

// StringTemplateExpr is a string literal, raw or escaped, made of entries.
type StringTemplateExpr struct {
	Raw     bool
	Entries []StringTemplateEntry
}

// NewStringTemplateExpr constructs a string template node.
func NewStringTemplateExpr(raw bool, entries []StringTemplateEntry) *StringTemplateExpr {
	return &StringTemplateExpr{Raw: raw, Entries: entries}
}

func (*StringTemplateExpr) node()     {}
func (*StringTemplateExpr) stmtNode() {}
func (*StringTemplateExpr) exprNode() {}

// LiteralEntry is a run of literal string content.
type LiteralEntry struct {
	Text string
}

// NewLiteralEntry constructs a literal template entry.
func NewLiteralEntry(text string) *LiteralEntry { return &LiteralEntry{Text: text} }

func (*LiteralEntry) node()              {}
func (*LiteralEntry) templateEntryNode() {}

// EscapeEntry is an escape sequence; its text always begins with a backslash.
type EscapeEntry struct {
	Text string
}

// NewEscapeEntry constructs an escape-sequence entry.
func NewEscapeEntry(text string) (*EscapeEntry, error) {
	if !strings.HasPrefix(text, `\`) {
		return nil, invariant("EscapeEntry", "escape text must begin with a backslash, got %q", text)
	}
	return &EscapeEntry{Text: text}, nil
}

func (*EscapeEntry) node()              {}
func (*EscapeEntry) templateEntryNode() {}

// ShortTemplateEntry is a "$name" or "$this" interpolation. The target type
// restricts it to those two forms.
type ShortTemplateEntry struct {
	Target ShortTemplateTarget
}

// NewShortTemplateEntry constructs a short interpolation entry.
func NewShortTemplateEntry(target ShortTemplateTarget) *ShortTemplateEntry {
	return &ShortTemplateEntry{Target: target}
}

func (*ShortTemplateEntry) node()              {}
func (*ShortTemplateEntry) templateEntryNode() {}

// LongTemplateEntry is a "${expr}" interpolation.
type LongTemplateEntry struct {
	Expr Expr
}

// NewLongTemplateEntry constructs a long interpolation entry.
func NewLongTemplateEntry(expr Expr) *LongTemplateEntry { return &LongTemplateEntry{Expr: expr} }

func (*LongTemplateEntry) node()              {}
func (*LongTemplateEntry) templateEntryNode() {}

// ConstantForm classifies a literal constant.
type ConstantForm int

const (
	ConstBool ConstantForm = iota
	ConstChar
	ConstInt
	ConstFloat
	ConstNull
)

// String names the constant form for diagnostics and dumps.
func (f ConstantForm) String() string {
	switch f {
	case ConstBool:
		return "bool"
	case ConstChar:
		return "char"
	case ConstInt:
		return "int"
	case ConstFloat:
		return "float"
	case ConstNull:
		return "null"
	}
	return "unknown"
}

// ConstantExpr is a literal constant, kept as its exact source text.
type ConstantExpr struct {
	Value string
	Form  ConstantForm
}

// NewConstantExpr constructs a constant literal node.
func NewConstantExpr(value string, form ConstantForm) *ConstantExpr {
	return &ConstantExpr{Value: value, Form: form}
}

func (*ConstantExpr) node()     {}
func (*ConstantExpr) stmtNode() {}
func (*ConstantExpr) exprNode() {}

// LambdaExpr is a brace lambda. The arrow is implied by a non-empty
// parameter list.
type LambdaExpr struct {
	Params []*LambdaParam
	Stmts  []Stmt
}

// NewLambdaExpr constructs a lambda node.
func NewLambdaExpr(params []*LambdaParam, stmts []Stmt) *LambdaExpr {
	return &LambdaExpr{Params: params, Stmts: stmts}
}

func (*LambdaExpr) node()     {}
func (*LambdaExpr) stmtNode() {}
func (*LambdaExpr) exprNode() {}

// LambdaParam is one lambda (or for-loop) parameter, possibly destructured.
// Type is the destructuring type annotation when Destructured is set,
// otherwise the single binding's type lives on the variable itself.
type LambdaParam struct {
	Vars         []*Variable
	Destructured bool
	Type         Type
}

// NewLambdaParam constructs a lambda parameter node.
func NewLambdaParam(vars []*Variable, destructured bool, typ Type) (*LambdaParam, error) {
	if len(vars) == 0 {
		return nil, invariant("LambdaParam", "at least one binding is required")
	}
	if len(vars) >= 2 && !destructured {
		return nil, invariant("LambdaParam", "%d bindings require destructuring delimiters", len(vars))
	}
	if typ != nil && !destructured {
		return nil, invariant("LambdaParam", "a destructuring type requires destructuring delimiters")
	}
	return &LambdaParam{Vars: vars, Destructured: destructured, Type: typ}, nil
}

func (*LambdaParam) node() {}

// ThisExpr is a this reference with an optional label.
type ThisExpr struct {
	Label *NameExpr
}

// NewThisExpr constructs a this reference.
func NewThisExpr(label *NameExpr) *ThisExpr { return &ThisExpr{Label: label} }

func (*ThisExpr) node()            {}
func (*ThisExpr) stmtNode()        {}
func (*ThisExpr) exprNode()        {}
func (*ThisExpr) shortTargetNode() {}

// SuperExpr is a super reference with optional type argument and label.
type SuperExpr struct {
	TypeArg Type
	Label   *NameExpr
}

// NewSuperExpr constructs a super reference.
func NewSuperExpr(typeArg Type, label *NameExpr) *SuperExpr {
	return &SuperExpr{TypeArg: typeArg, Label: label}
}

func (*SuperExpr) node()     {}
func (*SuperExpr) stmtNode() {}
func (*SuperExpr) exprNode() {}

// ObjectLitExpr is an anonymous object expression wrapping a name-less object
// declaration.
type ObjectLitExpr struct {
	Decl *ClassDecl
}

// NewObjectLitExpr constructs an object literal node.
func NewObjectLitExpr(decl *ClassDecl) (*ObjectLitExpr, error) {
	if decl == nil {
		return nil, invariant("ObjectLitExpr", "missing object declaration")
	}
	if !decl.IsObject() {
		return nil, invariant("ObjectLitExpr", "declaration must use the object keyword")
	}
	if decl.Name != nil {
		return nil, invariant("ObjectLitExpr", "an object literal cannot be named")
	}
	return &ObjectLitExpr{Decl: decl}, nil
}

func (*ObjectLitExpr) node()     {}
func (*ObjectLitExpr) stmtNode() {}
func (*ObjectLitExpr) exprNode() {}

// ThrowExpr is a throw expression.
type ThrowExpr struct {
	Expr Expr
}

// NewThrowExpr constructs a throw node.
func NewThrowExpr(expr Expr) *ThrowExpr { return &ThrowExpr{Expr: expr} }

func (*ThrowExpr) node()     {}
func (*ThrowExpr) stmtNode() {}
func (*ThrowExpr) exprNode() {}

// ReturnExpr is a return with optional label and value.
type ReturnExpr struct {
	Label *NameExpr
	Expr  Expr
}

// NewReturnExpr constructs a return node.
func NewReturnExpr(label *NameExpr, expr Expr) *ReturnExpr {
	return &ReturnExpr{Label: label, Expr: expr}
}

func (*ReturnExpr) node()     {}
func (*ReturnExpr) stmtNode() {}
func (*ReturnExpr) exprNode() {}

// ContinueExpr is a continue with optional label.
type ContinueExpr struct {
	Label *NameExpr
}

// NewContinueExpr constructs a continue node.
func NewContinueExpr(label *NameExpr) *ContinueExpr { return &ContinueExpr{Label: label} }

func (*ContinueExpr) node()     {}
func (*ContinueExpr) stmtNode() {}
func (*ContinueExpr) exprNode() {}

// BreakExpr is a break with optional label.
type BreakExpr struct {
	Label *NameExpr
}

// NewBreakExpr constructs a break node.
func NewBreakExpr(label *NameExpr) *BreakExpr { return &BreakExpr{Label: label} }

func (*BreakExpr) node()     {}
func (*BreakExpr) stmtNode() {}
func (*BreakExpr) exprNode() {}

// CollLitExpr is a bracketed collection literal (annotation arguments).
type CollLitExpr struct {
	Exprs []Expr
}

// NewCollLitExpr constructs a collection literal node.
func NewCollLitExpr(exprs []Expr) *CollLitExpr { return &CollLitExpr{Exprs: exprs} }

func (*CollLitExpr) node()     {}
func (*CollLitExpr) stmtNode() {}
func (*CollLitExpr) exprNode() {}

// NameExpr is an identifier reference.
type NameExpr struct {
	Name string
}

// NewNameExpr constructs a name reference.
func NewNameExpr(name string) *NameExpr { return &NameExpr{Name: name} }

func (*NameExpr) node()            {}
func (*NameExpr) stmtNode()        {}
func (*NameExpr) exprNode()        {}
func (*NameExpr) shortTargetNode() {}
func (*NameExpr) binaryOperNode()  {}

// LabeledExpr is a "label@ stmt" wrapper.
type LabeledExpr struct {
	Label *NameExpr
	Stmt  Stmt
}

// NewLabeledExpr constructs a labeled statement wrapper.
func NewLabeledExpr(label *NameExpr, stmt Stmt) *LabeledExpr {
	return &LabeledExpr{Label: label, Stmt: stmt}
}

func (*LabeledExpr) node()     {}
func (*LabeledExpr) stmtNode() {}
func (*LabeledExpr) exprNode() {}

// AnnotatedExpr is an annotation-decorated statement wrapper.
type AnnotatedExpr struct {
	Anns []*AnnotationSet
	Stmt Stmt
}

// NewAnnotatedExpr constructs an annotated statement wrapper.
func NewAnnotatedExpr(anns []*AnnotationSet, stmt Stmt) *AnnotatedExpr {
	return &AnnotatedExpr{Anns: anns, Stmt: stmt}
}

func (*AnnotatedExpr) node()     {}
func (*AnnotatedExpr) stmtNode() {}
func (*AnnotatedExpr) exprNode() {}

// CallExpr is a call with optional type arguments, value arguments and a
// trailing lambda.
type CallExpr struct {
	Callee   Expr
	TypeArgs *TypeArgList
	Args     *ValueArgList
	Lambda   *TrailingLambda
}

// NewCallExpr constructs a call node.
func NewCallExpr(callee Expr, typeArgs *TypeArgList, args *ValueArgList, lambda *TrailingLambda) *CallExpr {
	return &CallExpr{Callee: callee, TypeArgs: typeArgs, Args: args, Lambda: lambda}
}

func (*CallExpr) node()     {}
func (*CallExpr) stmtNode() {}
func (*CallExpr) exprNode() {}

// TrailingLambda is the lambda argument written after a call's closing paren.
type TrailingLambda struct {
	Anns  []*AnnotationSet
	Label *NameExpr
	Expr  *LambdaExpr
}

// NewTrailingLambda constructs a trailing lambda argument node.
func NewTrailingLambda(anns []*AnnotationSet, label *NameExpr, expr *LambdaExpr) *TrailingLambda {
	return &TrailingLambda{Anns: anns, Label: label, Expr: expr}
}

func (*TrailingLambda) node() {}

// IndexExpr is an index access "expr[indices]".
type IndexExpr struct {
	Expr    Expr
	Indices []Expr
}

// NewIndexExpr constructs an index access node.
func NewIndexExpr(expr Expr, indices []Expr) *IndexExpr {
	return &IndexExpr{Expr: expr, Indices: indices}
}

func (*IndexExpr) node()     {}
func (*IndexExpr) stmtNode() {}
func (*IndexExpr) exprNode() {}

// AnonFuncExpr is an anonymous function used as an expression.
type AnonFuncExpr struct {
	Func *FuncDecl
}

// NewAnonFuncExpr constructs an anonymous function expression.
func NewAnonFuncExpr(fn *FuncDecl) (*AnonFuncExpr, error) {
	if fn == nil {
		return nil, invariant("AnonFuncExpr", "missing function declaration")
	}
	if fn.Name != nil {
		return nil, invariant("AnonFuncExpr", "an anonymous function cannot be named")
	}
	return &AnonFuncExpr{Func: fn}, nil
}

func (*AnonFuncExpr) node()     {}
func (*AnonFuncExpr) stmtNode() {}
func (*AnonFuncExpr) exprNode() {}

// BlockExpr is a brace-delimited statement sequence.
type BlockExpr struct {
	Stmts []Stmt
}

// NewBlockExpr constructs a block node.
func NewBlockExpr(stmts []Stmt) *BlockExpr { return &BlockExpr{Stmts: stmts} }

func (*BlockExpr) node()     {}
func (*BlockExpr) stmtNode() {}
func (*BlockExpr) exprNode() {}
