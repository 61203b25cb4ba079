package ast

// Modifiers is the ordered modifier list of a declaration; elements are
// keywords or annotation sets, in source order.
type Modifiers struct {
	Elems []Modifier
}

// NewModifiers constructs a modifier list node.
func NewModifiers(elems []Modifier) *Modifiers { return &Modifiers{Elems: elems} }

func (*Modifiers) node() {}

// AnnotationSet is an "@" annotation group: an optional use-site target and
// one or more annotations, optionally bracket-grouped ("@[A B]").
type AnnotationSet struct {
	Target    *Keyword
	Bracketed bool
	Anns      []*Annotation
}

// NewAnnotationSet constructs an annotation set node. Multiple annotations
// require bracket grouping.
func NewAnnotationSet(target *Keyword, bracketed bool, anns []*Annotation) (*AnnotationSet, error) {
	if len(anns) == 0 {
		return nil, invariant("AnnotationSet", "at least one annotation is required")
	}
	if len(anns) > 1 && !bracketed {
		return nil, invariant("AnnotationSet", "%d annotations require bracket grouping", len(anns))
	}
	return &AnnotationSet{Target: target, Bracketed: bracketed, Anns: anns}, nil
}

func (*AnnotationSet) node()         {}
func (*AnnotationSet) modifierNode() {}

// Annotation is one annotation: a type and optional arguments.
type Annotation struct {
	Type *SimpleType
	Args *ValueArgList
}

// NewAnnotation constructs an annotation node.
func NewAnnotation(typ *SimpleType, args *ValueArgList) *Annotation {
	return &Annotation{Type: typ, Args: args}
}

func (*Annotation) node() {}
