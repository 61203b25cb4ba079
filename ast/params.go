package ast

// TypeParam is a declaration type parameter with an optional upper bound.
type TypeParam struct {
	Mods *Modifiers
	Name *NameExpr
	Type Type
}

// NewTypeParam constructs a type parameter node.
func NewTypeParam(mods *Modifiers, name *NameExpr, typ Type) *TypeParam {
	return &TypeParam{Mods: mods, Name: name, Type: typ}
}

func (*TypeParam) node() {}

// TypeParamList is the angle-bracketed type parameter list.
type TypeParamList struct {
	Params []*TypeParam
}

// NewTypeParamList constructs a type parameter list node.
func NewTypeParamList(params []*TypeParam) *TypeParamList {
	return &TypeParamList{Params: params}
}

func (*TypeParamList) node() {}

// TypeArg is one type argument: either a concrete type (with optional
// variance modifiers) or the star projection, never both and never neither.
type TypeArg struct {
	Mods *Modifiers
	Type Type
	Star bool
}

// NewTypeArg constructs a type argument node.
func NewTypeArg(mods *Modifiers, typ Type, star bool) (*TypeArg, error) {
	if star && typ != nil {
		return nil, invariant("TypeArg", "a star projection cannot carry a type")
	}
	if star && mods != nil && len(mods.Elems) > 0 {
		return nil, invariant("TypeArg", "a star projection cannot carry modifiers")
	}
	if !star && typ == nil {
		return nil, invariant("TypeArg", "either a type or a star projection is required")
	}
	return &TypeArg{Mods: mods, Type: typ, Star: star}, nil
}

func (*TypeArg) node() {}

// TypeArgList is the angle-bracketed type argument list.
type TypeArgList struct {
	Args []*TypeArg
}

// NewTypeArgList constructs a type argument list node.
func NewTypeArgList(args []*TypeArg) *TypeArgList {
	return &TypeArgList{Args: args}
}

func (*TypeArgList) node() {}

// ValueArg is one call argument, optionally named and optionally spread.
type ValueArg struct {
	Name   *NameExpr
	Spread bool
	Expr   Expr
}

// NewValueArg constructs a value argument node.
func NewValueArg(name *NameExpr, spread bool, expr Expr) *ValueArg {
	return &ValueArg{Name: name, Spread: spread, Expr: expr}
}

func (*ValueArg) node() {}

// ValueArgList is the paren-delimited value argument list.
type ValueArgList struct {
	Args []*ValueArg
}

// NewValueArgList constructs a value argument list node.
func NewValueArgList(args []*ValueArg) *ValueArgList {
	return &ValueArgList{Args: args}
}

func (*ValueArgList) node() {}

// TypeConstraint is one entry of a where clause.
type TypeConstraint struct {
	Anns []*AnnotationSet
	Name *NameExpr
	Type Type
}

// NewTypeConstraint constructs a where-clause entry node.
func NewTypeConstraint(anns []*AnnotationSet, name *NameExpr, typ Type) *TypeConstraint {
	return &TypeConstraint{Anns: anns, Name: name, Type: typ}
}

func (*TypeConstraint) node() {}

// TypeConstraintList is the where-clause post-modifier.
type TypeConstraintList struct {
	Constraints []*TypeConstraint
}

// NewTypeConstraintList constructs a where clause node.
func NewTypeConstraintList(constraints []*TypeConstraint) *TypeConstraintList {
	return &TypeConstraintList{Constraints: constraints}
}

func (*TypeConstraintList) node() {}

// Contract is the contract-clause post-modifier with its bracketed effects.
type Contract struct {
	Effects []Expr
}

// NewContract constructs a contract clause node.
func NewContract(effects []Expr) *Contract { return &Contract{Effects: effects} }

func (*Contract) node() {}
