package ast

// SimpleType is a possibly-qualified, possibly-generic named type; the
// qualification pieces are dot-joined.
type SimpleType struct {
	Pieces []*SimpleTypePiece
}

// NewSimpleType constructs a named type node.
func NewSimpleType(pieces []*SimpleTypePiece) (*SimpleType, error) {
	if len(pieces) == 0 {
		return nil, invariant("SimpleType", "at least one name piece is required")
	}
	return &SimpleType{Pieces: pieces}, nil
}

func (*SimpleType) node()     {}
func (*SimpleType) typeNode() {}

// SimpleTypePiece is one qualification piece of a named type.
type SimpleTypePiece struct {
	Name     *NameExpr
	TypeArgs *TypeArgList
}

// NewSimpleTypePiece constructs a name piece node.
func NewSimpleTypePiece(name *NameExpr, typeArgs *TypeArgList) *SimpleTypePiece {
	return &SimpleTypePiece{Name: name, TypeArgs: typeArgs}
}

func (*SimpleTypePiece) node() {}

// NullableType marks its inner type nullable.
type NullableType struct {
	Inner Type
}

// NewNullableType constructs a nullable type node.
func NewNullableType(inner Type) *NullableType { return &NullableType{Inner: inner} }

func (*NullableType) node()     {}
func (*NullableType) typeNode() {}

// ParenType is a parenthesized type.
type ParenType struct {
	Inner Type
}

// NewParenType constructs a parenthesized type node.
func NewParenType(inner Type) *ParenType { return &ParenType{Inner: inner} }

func (*ParenType) node()     {}
func (*ParenType) typeNode() {}

// FuncType is a function type with optional receiver.
type FuncType struct {
	Receiver Type
	Params   []*FuncTypeParam
	Return   Type
}

// NewFuncType constructs a function type node.
func NewFuncType(receiver Type, params []*FuncTypeParam, ret Type) *FuncType {
	return &FuncType{Receiver: receiver, Params: params, Return: ret}
}

func (*FuncType) node()     {}
func (*FuncType) typeNode() {}

// FuncTypeParam is one parameter of a function type, optionally named.
type FuncTypeParam struct {
	Name *NameExpr
	Type Type
}

// NewFuncTypeParam constructs a function type parameter node.
func NewFuncTypeParam(name *NameExpr, typ Type) *FuncTypeParam {
	return &FuncTypeParam{Name: name, Type: typ}
}

func (*FuncTypeParam) node() {}

// DynamicType is the dynamic/untyped marker.
type DynamicType struct{}

// NewDynamicType constructs the dynamic type marker.
func NewDynamicType() *DynamicType { return &DynamicType{} }

func (*DynamicType) node()     {}
func (*DynamicType) typeNode() {}
