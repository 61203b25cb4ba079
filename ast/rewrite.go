package ast

import "fmt"

// Transform maps a visited path to a replacement node. Returning the path's
// own node leaves it untouched.
type Transform func(*Path) Node

type rewriteOptions struct {
	pre    Transform
	post   Transform
	extras *ExtrasMap
}

// RewriteOption configures a Rewrite run.
type RewriteOption func(*rewriteOptions)

// WithPre installs the pre-order hook: it receives each node before its
// children are rebuilt and may replace it wholesale, in which case the
// replacement's children are rebuilt instead.
func WithPre(fn Transform) RewriteOption {
	return func(o *rewriteOptions) { o.pre = fn }
}

// WithPost installs the post-order hook: it receives each node after its
// children have been rebuilt.
func WithPost(fn Transform) RewriteOption {
	return func(o *rewriteOptions) { o.post = fn }
}

// WithExtras attaches the extras map built against the input tree. Whenever a
// node is replaced during the rewrite its extras are re-keyed to the
// replacement, so they are not orphaned on the next write. The map is mutated
// in place and must be exclusively owned by this traversal.
func WithExtras(m *ExtrasMap) RewriteOption {
	return func(o *rewriteOptions) { o.extras = m }
}

// Rewrite rebuilds the tree rooted at root bottom-up by structural copy,
// applying the configured hooks at every node. Subtrees in which nothing
// changed are reused as-is, preserving their identity and therefore their
// extras associations. With no hooks configured the result is root itself.
func Rewrite(root Node, opts ...RewriteOption) Node {
	var o rewriteOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := &rewriter{opts: o}
	out, _ := r.node(root, nil)
	return out
}

type rewriter struct {
	opts rewriteOptions
}

func (r *rewriter) node(n Node, parent *Path) (Node, bool) {
	if isNilNode(n) {
		return n, false
	}
	orig := n
	p := &Path{Node: n, Parent: parent}
	if r.opts.pre != nil {
		w := r.opts.pre(p)
		if w == nil {
			panic(fmt.Sprintf("ast: rewrite pre hook returned nil for %T", n))
		}
		if w != n {
			p = &Path{Node: w, Parent: parent}
		}
	}
	out := r.rebuild(p.Node, p)
	if r.opts.post != nil {
		w := r.opts.post(&Path{Node: out, Parent: parent})
		if w == nil {
			panic(fmt.Sprintf("ast: rewrite post hook returned nil for %T", out))
		}
		out = w
	}
	if out == orig {
		return out, false
	}
	if r.opts.extras != nil {
		r.opts.extras.Move(orig, out)
	}
	return out, true
}

func rwChild[T Node](r *rewriter, v T, p *Path, changed *bool) T {
	if isNilNode(v) {
		return v
	}
	out, ch := r.node(v, p)
	if ch {
		*changed = true
	}
	t, ok := out.(T)
	if !ok {
		panic(fmt.Sprintf("ast: rewrite produced %T where %T is required", out, v))
	}
	return t
}

func rwList[T Node](r *rewriter, list []T, p *Path, changed *bool) []T {
	var rebuilt []T
	mutated := false
	for i, e := range list {
		ch := false
		ne := rwChild(r, e, p, &ch)
		if ch && !mutated {
			rebuilt = make([]T, len(list))
			copy(rebuilt, list[:i])
			mutated = true
		}
		if mutated {
			rebuilt[i] = ne
		}
	}
	if mutated {
		*changed = true
		return rebuilt
	}
	return list
}

// rebuild reconstructs n with its significant children rewritten, reusing n
// itself when no child changed. The case list mirrors EachChild exactly; an
// unknown kind is an internal consistency error.
func (r *rewriter) rebuild(n Node, p *Path) Node {
	switch x := n.(type) {
	case *File:
		ch := false
		anns := rwList(r, x.Anns, p, &ch)
		pkg := rwChild(r, x.Package, p, &ch)
		imports := rwList(r, x.Imports, p, &ch)
		decls := rwList(r, x.Decls, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Anns, c.Package, c.Imports, c.Decls = anns, pkg, imports, decls
		return &c

	case *Script:
		ch := false
		anns := rwList(r, x.Anns, p, &ch)
		pkg := rwChild(r, x.Package, p, &ch)
		imports := rwList(r, x.Imports, p, &ch)
		stmts := rwList(r, x.Stmts, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Anns, c.Package, c.Imports, c.Stmts = anns, pkg, imports, stmts
		return &c

	case *PackageDirective:
		ch := false
		names := rwList(r, x.Names, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Names = names
		return &c

	case *ImportDirective:
		ch := false
		names := rwList(r, x.Names, p, &ch)
		alias := rwChild(r, x.Alias, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Names, c.Alias = names, alias
		return &c

	case *ImportAlias:
		ch := false
		name := rwChild(r, x.Name, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Name = name
		return &c

	case *ClassDecl:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		kw := rwChild(r, x.Keyword, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		tps := rwChild(r, x.TypeParams, p, &ch)
		ctor := rwChild(r, x.PrimaryCtor, p, &ch)
		parents := rwList(r, x.Parents, p, &ch)
		cons := rwChild(r, x.Constraints, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Keyword, c.Name, c.TypeParams = mods, kw, name, tps
		c.PrimaryCtor, c.Parents, c.Constraints, c.Body = ctor, parents, cons, body
		return &c

	case *ClassParent:
		ch := false
		typ := rwChild(r, x.Type, p, &ch)
		args := rwChild(r, x.Args, p, &ch)
		del := rwChild(r, x.Delegate, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Type, c.Args, c.Delegate = typ, args, del
		return &c

	case *PrimaryConstructor:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		kw := rwChild(r, x.Keyword, p, &ch)
		params := rwChild(r, x.Params, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Keyword, c.Params = mods, kw, params
		return &c

	case *ClassBody:
		ch := false
		entries := rwList(r, x.EnumEntries, p, &ch)
		decls := rwList(r, x.Decls, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.EnumEntries, c.Decls = entries, decls
		return &c

	case *EnumEntry:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		args := rwChild(r, x.Args, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Name, c.Args, c.Body = mods, name, args, body
		return &c

	case *InitBlock:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		block := rwChild(r, x.Block, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Block = mods, block
		return &c

	case *FuncDecl:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		tps := rwChild(r, x.TypeParams, p, &ch)
		recv := rwChild(r, x.Receiver, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		params := rwChild(r, x.Params, p, &ch)
		ret := rwChild(r, x.ReturnType, p, &ch)
		cons := rwChild(r, x.Constraints, p, &ch)
		contract := rwChild(r, x.Contract, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.TypeParams, c.Receiver, c.Name = mods, tps, recv, name
		c.Params, c.ReturnType, c.Constraints, c.Contract, c.Body = params, ret, cons, contract, body
		return &c

	case *BlockBody:
		ch := false
		block := rwChild(r, x.Block, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Block = block
		return &c

	case *ExprBody:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr = expr
		return &c

	case *FuncParam:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		vv := rwChild(r, x.ValOrVar, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		def := rwChild(r, x.Default, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.ValOrVar, c.Name, c.Type, c.Default = mods, vv, name, typ, def
		return &c

	case *FuncParamList:
		ch := false
		params := rwList(r, x.Params, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Params = params
		return &c

	case *PropertyDecl:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		vv := rwChild(r, x.ValOrVar, p, &ch)
		tps := rwChild(r, x.TypeParams, p, &ch)
		recv := rwChild(r, x.Receiver, p, &ch)
		vars := rwList(r, x.Vars, p, &ch)
		cons := rwChild(r, x.Constraints, p, &ch)
		init := rwChild(r, x.Initializer, p, &ch)
		del := rwChild(r, x.Delegate, p, &ch)
		accs := rwList(r, x.Accessors, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.ValOrVar, c.TypeParams, c.Receiver, c.Vars = mods, vv, tps, recv, vars
		c.Constraints, c.Initializer, c.Delegate, c.Accessors = cons, init, del, accs
		return &c

	case *Getter:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Type, c.Body = mods, typ, body
		return &c

	case *Setter:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		param := rwChild(r, x.Param, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Param, c.Body = mods, param, body
		return &c

	case *Variable:
		ch := false
		name := rwChild(r, x.Name, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Name, c.Type = name, typ
		return &c

	case *TypeAliasDecl:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		tps := rwChild(r, x.TypeParams, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Name, c.TypeParams, c.Type = mods, name, tps, typ
		return &c

	case *SecondaryConstructor:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		kw := rwChild(r, x.Keyword, p, &ch)
		params := rwChild(r, x.Params, p, &ch)
		del := rwChild(r, x.DelegationCall, p, &ch)
		block := rwChild(r, x.Block, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Keyword, c.Params, c.DelegationCall, c.Block = mods, kw, params, del, block
		return &c

	case *ConstructorDelegationCall:
		ch := false
		target := rwChild(r, x.Target, p, &ch)
		args := rwChild(r, x.Args, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Target, c.Args = target, args
		return &c

	case *SimpleType:
		ch := false
		pieces := rwList(r, x.Pieces, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Pieces = pieces
		return &c

	case *SimpleTypePiece:
		ch := false
		name := rwChild(r, x.Name, p, &ch)
		args := rwChild(r, x.TypeArgs, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Name, c.TypeArgs = name, args
		return &c

	case *NullableType:
		ch := false
		inner := rwChild(r, x.Inner, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Inner = inner
		return &c

	case *ParenType:
		ch := false
		inner := rwChild(r, x.Inner, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Inner = inner
		return &c

	case *FuncType:
		ch := false
		recv := rwChild(r, x.Receiver, p, &ch)
		params := rwList(r, x.Params, p, &ch)
		ret := rwChild(r, x.Return, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Receiver, c.Params, c.Return = recv, params, ret
		return &c

	case *FuncTypeParam:
		ch := false
		name := rwChild(r, x.Name, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Name, c.Type = name, typ
		return &c

	case *TypeParam:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Name, c.Type = mods, name, typ
		return &c

	case *TypeParamList:
		ch := false
		params := rwList(r, x.Params, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Params = params
		return &c

	case *TypeArg:
		ch := false
		mods := rwChild(r, x.Mods, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Mods, c.Type = mods, typ
		return &c

	case *TypeArgList:
		ch := false
		args := rwList(r, x.Args, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Args = args
		return &c

	case *ValueArg:
		ch := false
		name := rwChild(r, x.Name, p, &ch)
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Name, c.Expr = name, expr
		return &c

	case *ValueArgList:
		ch := false
		args := rwList(r, x.Args, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Args = args
		return &c

	case *TypeConstraint:
		ch := false
		anns := rwList(r, x.Anns, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Anns, c.Name, c.Type = anns, name, typ
		return &c

	case *TypeConstraintList:
		ch := false
		cons := rwList(r, x.Constraints, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Constraints = cons
		return &c

	case *Contract:
		ch := false
		effects := rwList(r, x.Effects, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Effects = effects
		return &c

	case *Modifiers:
		ch := false
		elems := rwList(r, x.Elems, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Elems = elems
		return &c

	case *AnnotationSet:
		ch := false
		target := rwChild(r, x.Target, p, &ch)
		anns := rwList(r, x.Anns, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Target, c.Anns = target, anns
		return &c

	case *Annotation:
		ch := false
		typ := rwChild(r, x.Type, p, &ch)
		args := rwChild(r, x.Args, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Type, c.Args = typ, args
		return &c

	case *IfExpr:
		ch := false
		cond := rwChild(r, x.Cond, p, &ch)
		then := rwChild(r, x.Then, p, &ch)
		els := rwChild(r, x.Else, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Cond, c.Then, c.Else = cond, then, els
		return &c

	case *WhenExpr:
		ch := false
		subject := rwChild(r, x.Subject, p, &ch)
		branches := rwList(r, x.Branches, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Subject, c.Branches = subject, branches
		return &c

	case *WhenSubject:
		ch := false
		anns := rwList(r, x.Anns, p, &ch)
		v := rwChild(r, x.Var, p, &ch)
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Anns, c.Var, c.Expr = anns, v, expr
		return &c

	case *WhenBranch:
		ch := false
		conds := rwList(r, x.Conds, p, &ch)
		els := rwChild(r, x.Else, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Conds, c.Else, c.Body = conds, els, body
		return &c

	case *WhenCondExpr:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr = expr
		return &c

	case *WhenCondIn:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr = expr
		return &c

	case *WhenCondIs:
		ch := false
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Type = typ
		return &c

	case *TryExpr:
		ch := false
		block := rwChild(r, x.Block, p, &ch)
		catches := rwList(r, x.Catches, p, &ch)
		finally := rwChild(r, x.Finally, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Block, c.Catches, c.Finally = block, catches, finally
		return &c

	case *CatchClause:
		ch := false
		params := rwChild(r, x.Params, p, &ch)
		block := rwChild(r, x.Block, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Params, c.Block = params, block
		return &c

	case *ForExpr:
		ch := false
		param := rwChild(r, x.Param, p, &ch)
		rng := rwChild(r, x.Range, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Param, c.Range, c.Body = param, rng, body
		return &c

	case *WhileExpr:
		ch := false
		cond := rwChild(r, x.Cond, p, &ch)
		body := rwChild(r, x.Body, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Cond, c.Body = cond, body
		return &c

	case *BinaryExpr:
		ch := false
		lhs := rwChild(r, x.LHS, p, &ch)
		oper := rwChild(r, x.Oper, p, &ch)
		rhs := rwChild(r, x.RHS, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.LHS, c.Oper, c.RHS = lhs, oper, rhs
		return &c

	case *UnaryExpr:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		oper := rwChild(r, x.Oper, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr, c.Oper = expr, oper
		return &c

	case *BinaryTypeExpr:
		ch := false
		lhs := rwChild(r, x.LHS, p, &ch)
		oper := rwChild(r, x.Oper, p, &ch)
		rhs := rwChild(r, x.RHS, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.LHS, c.Oper, c.RHS = lhs, oper, rhs
		return &c

	case *CallableRefExpr:
		ch := false
		recv := rwChild(r, x.Recv, p, &ch)
		name := rwChild(r, x.Name, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Recv, c.Name = recv, name
		return &c

	case *ClassLitExpr:
		ch := false
		recv := rwChild(r, x.Recv, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Recv = recv
		return &c

	case *ParenExpr:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr = expr
		return &c

	case *StringTemplateExpr:
		ch := false
		entries := rwList(r, x.Entries, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Entries = entries
		return &c

	case *ShortTemplateEntry:
		ch := false
		target := rwChild(r, x.Target, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Target = target
		return &c

	case *LongTemplateEntry:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr = expr
		return &c

	case *LambdaExpr:
		ch := false
		params := rwList(r, x.Params, p, &ch)
		stmts := rwList(r, x.Stmts, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Params, c.Stmts = params, stmts
		return &c

	case *LambdaParam:
		ch := false
		vars := rwList(r, x.Vars, p, &ch)
		typ := rwChild(r, x.Type, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Vars, c.Type = vars, typ
		return &c

	case *ThisExpr:
		ch := false
		label := rwChild(r, x.Label, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Label = label
		return &c

	case *SuperExpr:
		ch := false
		ta := rwChild(r, x.TypeArg, p, &ch)
		label := rwChild(r, x.Label, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.TypeArg, c.Label = ta, label
		return &c

	case *ObjectLitExpr:
		ch := false
		decl := rwChild(r, x.Decl, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Decl = decl
		return &c

	case *ThrowExpr:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr = expr
		return &c

	case *ReturnExpr:
		ch := false
		label := rwChild(r, x.Label, p, &ch)
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Label, c.Expr = label, expr
		return &c

	case *ContinueExpr:
		ch := false
		label := rwChild(r, x.Label, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Label = label
		return &c

	case *BreakExpr:
		ch := false
		label := rwChild(r, x.Label, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Label = label
		return &c

	case *CollLitExpr:
		ch := false
		exprs := rwList(r, x.Exprs, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Exprs = exprs
		return &c

	case *LabeledExpr:
		ch := false
		label := rwChild(r, x.Label, p, &ch)
		stmt := rwChild(r, x.Stmt, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Label, c.Stmt = label, stmt
		return &c

	case *AnnotatedExpr:
		ch := false
		anns := rwList(r, x.Anns, p, &ch)
		stmt := rwChild(r, x.Stmt, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Anns, c.Stmt = anns, stmt
		return &c

	case *CallExpr:
		ch := false
		callee := rwChild(r, x.Callee, p, &ch)
		tas := rwChild(r, x.TypeArgs, p, &ch)
		args := rwChild(r, x.Args, p, &ch)
		lambda := rwChild(r, x.Lambda, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Callee, c.TypeArgs, c.Args, c.Lambda = callee, tas, args, lambda
		return &c

	case *TrailingLambda:
		ch := false
		anns := rwList(r, x.Anns, p, &ch)
		label := rwChild(r, x.Label, p, &ch)
		expr := rwChild(r, x.Expr, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Anns, c.Label, c.Expr = anns, label, expr
		return &c

	case *IndexExpr:
		ch := false
		expr := rwChild(r, x.Expr, p, &ch)
		indices := rwList(r, x.Indices, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Expr, c.Indices = expr, indices
		return &c

	case *AnonFuncExpr:
		ch := false
		fn := rwChild(r, x.Func, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Func = fn
		return &c

	case *BlockExpr:
		ch := false
		stmts := rwList(r, x.Stmts, p, &ch)
		if !ch {
			return x
		}
		c := *x
		c.Stmts = stmts
		return &c

	// Leaves: nothing to rebuild.
	case *NameExpr, *Keyword, *ConstantExpr, *LiteralEntry, *EscapeEntry,
		*DynamicType, *Whitespace, *BlankLines, *Comment, *Semicolon, *TrailingComma:
		return x

	default:
		panic(fmt.Sprintf("ast: rewrite: unknown node kind %T", n))
	}
}
