package ast

// ClassDecl is a class, interface or object declaration. The introducing
// keyword is stored rather than an enum so trivia around it survives; the
// form queries below are derived from it.
type ClassDecl struct {
	Mods        *Modifiers
	Keyword     *Keyword
	Name        *NameExpr
	TypeParams  *TypeParamList
	PrimaryCtor *PrimaryConstructor
	Parents     []*ClassParent
	Constraints *TypeConstraintList
	Body        *ClassBody
}

// NewClassDecl constructs a class-like declaration. The keyword must be
// class, interface or object.
func NewClassDecl(mods *Modifiers, keyword *Keyword, name *NameExpr, typeParams *TypeParamList, primaryCtor *PrimaryConstructor, parents []*ClassParent, constraints *TypeConstraintList, body *ClassBody) (*ClassDecl, error) {
	if keyword == nil {
		return nil, invariant("ClassDecl", "missing declaration keyword")
	}
	switch keyword.Kind {
	case KwClass, KwInterface, KwObject:
	default:
		return nil, invariant("ClassDecl", "declaration keyword must be class, interface or object, got %q", keyword.Text())
	}
	return &ClassDecl{
		Mods:        mods,
		Keyword:     keyword,
		Name:        name,
		TypeParams:  typeParams,
		PrimaryCtor: primaryCtor,
		Parents:     parents,
		Constraints: constraints,
		Body:        body,
	}, nil
}

// IsClass reports whether the declaration was introduced with "class".
func (d *ClassDecl) IsClass() bool { return d.Keyword.Kind == KwClass }

// IsInterface reports whether the declaration was introduced with "interface".
func (d *ClassDecl) IsInterface() bool { return d.Keyword.Kind == KwInterface }

// IsObject reports whether the declaration was introduced with "object".
func (d *ClassDecl) IsObject() bool { return d.Keyword.Kind == KwObject }

// IsCompanion reports whether the declaration carries the companion modifier.
func (d *ClassDecl) IsCompanion() bool {
	if d.Mods == nil {
		return false
	}
	for _, m := range d.Mods.Elems {
		if kw, ok := m.(*Keyword); ok && kw.Kind == KwCompanion {
			return true
		}
	}
	return false
}

func (*ClassDecl) node()     {}
func (*ClassDecl) stmtNode() {}
func (*ClassDecl) declNode() {}

// ClassParent is one supertype entry: a constructor call, a plain type, or a
// type implemented by delegation. Args and Delegate are mutually exclusive.
type ClassParent struct {
	Type     Type
	Args     *ValueArgList
	Delegate Expr
}

// NewClassParent constructs a supertype entry.
func NewClassParent(typ Type, args *ValueArgList, delegate Expr) (*ClassParent, error) {
	if typ == nil {
		return nil, invariant("ClassParent", "missing parent type")
	}
	if args != nil && delegate != nil {
		return nil, invariant("ClassParent", "cannot have both constructor arguments and a by-delegation expression")
	}
	return &ClassParent{Type: typ, Args: args, Delegate: delegate}, nil
}

func (*ClassParent) node() {}

// PrimaryConstructor is a class header constructor. Keyword is the optional
// explicit "constructor" keyword; it must be present whenever modifiers are.
type PrimaryConstructor struct {
	Mods    *Modifiers
	Keyword *Keyword
	Params  *FuncParamList
}

// NewPrimaryConstructor constructs a primary constructor node.
func NewPrimaryConstructor(mods *Modifiers, keyword *Keyword, params *FuncParamList) (*PrimaryConstructor, error) {
	if mods != nil && len(mods.Elems) > 0 && keyword == nil {
		return nil, invariant("PrimaryConstructor", "modifiers require an explicit constructor keyword")
	}
	return &PrimaryConstructor{Mods: mods, Keyword: keyword, Params: params}, nil
}

func (*PrimaryConstructor) node() {}

// ClassBody is the brace-delimited member list, with enum entries kept apart
// from ordinary declarations.
type ClassBody struct {
	EnumEntries []*EnumEntry
	Decls       []Decl
}

// NewClassBody constructs a class body node.
func NewClassBody(enumEntries []*EnumEntry, decls []Decl) *ClassBody {
	return &ClassBody{EnumEntries: enumEntries, Decls: decls}
}

func (*ClassBody) node() {}

// EnumEntry is one enum constant, optionally with arguments and a body.
type EnumEntry struct {
	Mods *Modifiers
	Name *NameExpr
	Args *ValueArgList
	Body *ClassBody
}

// NewEnumEntry constructs an enum entry node.
func NewEnumEntry(mods *Modifiers, name *NameExpr, args *ValueArgList, body *ClassBody) *EnumEntry {
	return &EnumEntry{Mods: mods, Name: name, Args: args, Body: body}
}

func (*EnumEntry) node()     {}
func (*EnumEntry) stmtNode() {}
func (*EnumEntry) declNode() {}

// InitBlock is an init { ... } member.
type InitBlock struct {
	Mods  *Modifiers
	Block *BlockExpr
}

// NewInitBlock constructs an initializer block node.
func NewInitBlock(mods *Modifiers, block *BlockExpr) *InitBlock {
	return &InitBlock{Mods: mods, Block: block}
}

func (*InitBlock) node()     {}
func (*InitBlock) stmtNode() {}
func (*InitBlock) declNode() {}

// FuncDecl is a function declaration. Name is nil for anonymous functions.
type FuncDecl struct {
	Mods        *Modifiers
	TypeParams  *TypeParamList
	Receiver    Type
	Name        *NameExpr
	Params      *FuncParamList
	ReturnType  Type
	Constraints *TypeConstraintList
	Contract    *Contract
	Body        FuncBody
}

// NewFuncDecl constructs a function declaration node.
func NewFuncDecl(mods *Modifiers, typeParams *TypeParamList, receiver Type, name *NameExpr, params *FuncParamList, returnType Type, constraints *TypeConstraintList, contract *Contract, body FuncBody) *FuncDecl {
	return &FuncDecl{
		Mods:        mods,
		TypeParams:  typeParams,
		Receiver:    receiver,
		Name:        name,
		Params:      params,
		ReturnType:  returnType,
		Constraints: constraints,
		Contract:    contract,
		Body:        body,
	}
}

func (*FuncDecl) node()     {}
func (*FuncDecl) stmtNode() {}
func (*FuncDecl) declNode() {}

// BlockBody is a brace-delimited function body.
type BlockBody struct {
	Block *BlockExpr
}

// NewBlockBody constructs a block function body.
func NewBlockBody(block *BlockExpr) *BlockBody { return &BlockBody{Block: block} }

func (*BlockBody) node()         {}
func (*BlockBody) funcBodyNode() {}

// ExprBody is a single-expression function body ("= expr").
type ExprBody struct {
	Expr Expr
}

// NewExprBody constructs an expression function body.
func NewExprBody(expr Expr) *ExprBody { return &ExprBody{Expr: expr} }

func (*ExprBody) node()         {}
func (*ExprBody) funcBodyNode() {}

// FuncParam is a function (or catch, or setter) parameter. ValOrVar is only
// populated for primary constructor properties.
type FuncParam struct {
	Mods     *Modifiers
	ValOrVar *Keyword
	Name     *NameExpr
	Type     Type
	Default  Expr
}

// NewFuncParam constructs a function parameter node.
func NewFuncParam(mods *Modifiers, valOrVar *Keyword, name *NameExpr, typ Type, def Expr) (*FuncParam, error) {
	if valOrVar != nil && valOrVar.Kind != KwVal && valOrVar.Kind != KwVar {
		return nil, invariant("FuncParam", "binding keyword must be val or var, got %q", valOrVar.Text())
	}
	return &FuncParam{Mods: mods, ValOrVar: valOrVar, Name: name, Type: typ, Default: def}, nil
}

func (*FuncParam) node() {}

// FuncParamList is the paren-delimited parameter list.
type FuncParamList struct {
	Params []*FuncParam
}

// NewFuncParamList constructs a parameter list node.
func NewFuncParamList(params []*FuncParam) *FuncParamList {
	return &FuncParamList{Params: params}
}

func (*FuncParamList) node() {}

// PropertyDecl is a val/var declaration, single or destructured. Delimited
// records whether the bindings were wrapped in parentheses; it must be set
// exactly when there is more than one binding. Initializer and Delegate are
// mutually exclusive.
type PropertyDecl struct {
	Mods        *Modifiers
	ValOrVar    *Keyword
	TypeParams  *TypeParamList
	Receiver    Type
	Vars        []*Variable
	Delimited   bool
	Constraints *TypeConstraintList
	Initializer Expr
	Delegate    Expr
	Accessors   []Accessor
}

// NewPropertyDecl constructs a property declaration node, enforcing the
// binding, initializer/delegate and accessor invariants.
func NewPropertyDecl(mods *Modifiers, valOrVar *Keyword, typeParams *TypeParamList, receiver Type, vars []*Variable, delimited bool, constraints *TypeConstraintList, initializer, delegate Expr, accessors []Accessor) (*PropertyDecl, error) {
	if valOrVar == nil || (valOrVar.Kind != KwVal && valOrVar.Kind != KwVar) {
		return nil, invariant("PropertyDecl", "binding keyword must be val or var")
	}
	if len(vars) == 0 {
		return nil, invariant("PropertyDecl", "at least one binding is required")
	}
	if len(vars) >= 2 && !delimited {
		return nil, invariant("PropertyDecl", "%d bindings require grouping delimiters", len(vars))
	}
	if len(vars) == 1 && delimited {
		return nil, invariant("PropertyDecl", "a single binding must not carry grouping delimiters")
	}
	if initializer != nil && delegate != nil {
		return nil, invariant("PropertyDecl", "cannot have both an initializer and a delegate")
	}
	if len(accessors) > 2 {
		return nil, invariant("PropertyDecl", "at most two accessors are allowed, got %d", len(accessors))
	}
	var getters, setters int
	for _, a := range accessors {
		switch a.(type) {
		case *Getter:
			getters++
		case *Setter:
			setters++
		}
	}
	if getters > 1 || setters > 1 {
		return nil, invariant("PropertyDecl", "at most one getter and one setter are allowed")
	}
	return &PropertyDecl{
		Mods:        mods,
		ValOrVar:    valOrVar,
		TypeParams:  typeParams,
		Receiver:    receiver,
		Vars:        vars,
		Delimited:   delimited,
		Constraints: constraints,
		Initializer: initializer,
		Delegate:    delegate,
		Accessors:   accessors,
	}, nil
}

// ReadOnly reports whether the property was declared with val.
func (d *PropertyDecl) ReadOnly() bool { return d.ValOrVar.Kind == KwVal }

// Getter returns the getter accessor, if any.
func (d *PropertyDecl) Getter() *Getter {
	for _, a := range d.Accessors {
		if g, ok := a.(*Getter); ok {
			return g
		}
	}
	return nil
}

// Setter returns the setter accessor, if any.
func (d *PropertyDecl) Setter() *Setter {
	for _, a := range d.Accessors {
		if s, ok := a.(*Setter); ok {
			return s
		}
	}
	return nil
}

func (*PropertyDecl) node()     {}
func (*PropertyDecl) stmtNode() {}
func (*PropertyDecl) declNode() {}

// Getter is a property get accessor. Body is nil for a bare "get".
type Getter struct {
	Mods *Modifiers
	Type Type
	Body FuncBody
}

// NewGetter constructs a getter node.
func NewGetter(mods *Modifiers, typ Type, body FuncBody) *Getter {
	return &Getter{Mods: mods, Type: typ, Body: body}
}

func (*Getter) node()         {}
func (*Getter) accessorNode() {}

// Setter is a property set accessor. The formal parameter and the body are
// both present or both absent.
type Setter struct {
	Mods  *Modifiers
	Param *FuncParam
	Body  FuncBody
}

// NewSetter constructs a setter node.
func NewSetter(mods *Modifiers, param *FuncParam, body FuncBody) (*Setter, error) {
	if (param == nil) != (body == nil) {
		return nil, invariant("Setter", "parameter and body must be both present or both absent")
	}
	return &Setter{Mods: mods, Param: param, Body: body}, nil
}

func (*Setter) node()         {}
func (*Setter) accessorNode() {}

// Variable is a single binding with an optional declared type.
type Variable struct {
	Name *NameExpr
	Type Type
}

// NewVariable constructs a binding node.
func NewVariable(name *NameExpr, typ Type) *Variable {
	return &Variable{Name: name, Type: typ}
}

func (*Variable) node() {}

// TypeAliasDecl is a typealias declaration.
type TypeAliasDecl struct {
	Mods       *Modifiers
	Name       *NameExpr
	TypeParams *TypeParamList
	Type       Type
}

// NewTypeAliasDecl constructs a typealias node.
func NewTypeAliasDecl(mods *Modifiers, name *NameExpr, typeParams *TypeParamList, typ Type) *TypeAliasDecl {
	return &TypeAliasDecl{Mods: mods, Name: name, TypeParams: typeParams, Type: typ}
}

func (*TypeAliasDecl) node()     {}
func (*TypeAliasDecl) stmtNode() {}
func (*TypeAliasDecl) declNode() {}

// SecondaryConstructor is a constructor member declaration.
type SecondaryConstructor struct {
	Mods           *Modifiers
	Keyword        *Keyword
	Params         *FuncParamList
	DelegationCall *ConstructorDelegationCall
	Block          *BlockExpr
}

// NewSecondaryConstructor constructs a secondary constructor node.
func NewSecondaryConstructor(mods *Modifiers, keyword *Keyword, params *FuncParamList, delegation *ConstructorDelegationCall, block *BlockExpr) (*SecondaryConstructor, error) {
	if keyword == nil || keyword.Kind != KwConstructor {
		return nil, invariant("SecondaryConstructor", "missing constructor keyword")
	}
	return &SecondaryConstructor{Mods: mods, Keyword: keyword, Params: params, DelegationCall: delegation, Block: block}, nil
}

func (*SecondaryConstructor) node()     {}
func (*SecondaryConstructor) stmtNode() {}
func (*SecondaryConstructor) declNode() {}

// ConstructorDelegationCall is the ": this(...)" or ": super(...)" tail of a
// secondary constructor.
type ConstructorDelegationCall struct {
	Target *Keyword
	Args   *ValueArgList
}

// NewConstructorDelegationCall constructs a delegation call node. The target
// must be this or super.
func NewConstructorDelegationCall(target *Keyword, args *ValueArgList) (*ConstructorDelegationCall, error) {
	if target == nil || (target.Kind != KwThis && target.Kind != KwSuper) {
		return nil, invariant("ConstructorDelegationCall", "target must be this or super")
	}
	return &ConstructorDelegationCall{Target: target, Args: args}, nil
}

func (*ConstructorDelegationCall) node() {}
