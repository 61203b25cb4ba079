package ast

import "strings"

// Whitespace is a verbatim whitespace run containing at most one line break.
// Runs with two or more breaks are represented as BlankLines.
type Whitespace struct {
	Text string
}

// NewWhitespace constructs a whitespace extra.
func NewWhitespace(text string) *Whitespace { return &Whitespace{Text: text} }

func (*Whitespace) node()      {}
func (*Whitespace) extraNode() {}

// BlankLines is the collapsed form of a whitespace run with two or more line
// breaks; Count is the number of blank lines (breaks minus one).
type BlankLines struct {
	Count int
}

// NewBlankLines constructs a blank-lines extra.
func NewBlankLines(count int) *BlankLines { return &BlankLines{Count: count} }

func (*BlankLines) node()      {}
func (*BlankLines) extraNode() {}

// Comment is a line or block comment. StartsLine and EndsLine record whether
// adjacent whitespace put the comment on its own line boundary; a line
// comment always ends its line.
type Comment struct {
	Text       string
	StartsLine bool
	EndsLine   bool
}

// NewComment constructs a comment extra. Line comments force EndsLine.
func NewComment(text string, startsLine, endsLine bool) *Comment {
	if strings.HasPrefix(text, "//") {
		endsLine = true
	}
	return &Comment{Text: text, StartsLine: startsLine, EndsLine: endsLine}
}

func (*Comment) node()      {}
func (*Comment) extraNode() {}

// Semicolon is an explicit statement terminator.
type Semicolon struct{}

// NewSemicolon constructs a semicolon extra.
func NewSemicolon() *Semicolon { return &Semicolon{} }

func (*Semicolon) node()      {}
func (*Semicolon) extraNode() {}

// TrailingComma is the optional comma after the last element of a list.
type TrailingComma struct{}

// NewTrailingComma constructs a trailing-comma extra.
func NewTrailingComma() *TrailingComma { return &TrailingComma{} }

func (*TrailingComma) node()      {}
func (*TrailingComma) extraNode() {}

// ExtraText returns the literal source text of an extra node.
func ExtraText(e ExtraNode) string {
	switch x := e.(type) {
	case *Whitespace:
		return x.Text
	case *BlankLines:
		return strings.Repeat("\n", x.Count+1)
	case *Comment:
		return x.Text
	case *Semicolon:
		return ";"
	case *TrailingComma:
		return ","
	}
	panic("ast: unknown extra node")
}

type extraSlots struct {
	before []ExtraNode
	within []ExtraNode
	after  []ExtraNode
}

// ExtrasMap is the side table correlating node identity with the trivia
// captured immediately before, strictly inside and immediately after it.
// A map's lifetime is tied to the tree it was built against; consulting it
// with nodes from an unrelated tree yields empty results at best. It is a
// plain map underneath and must not be shared across concurrent mutators.
type ExtrasMap struct {
	slots map[Node]*extraSlots
}

// NewExtrasMap constructs an empty extras map.
func NewExtrasMap() *ExtrasMap {
	return &ExtrasMap{slots: make(map[Node]*extraSlots)}
}

// Before returns the extras immediately preceding n, empty when unknown.
func (m *ExtrasMap) Before(n Node) []ExtraNode {
	if m == nil {
		return nil
	}
	if s := m.slots[n]; s != nil {
		return s.before
	}
	return nil
}

// Within returns the extras strictly inside n, empty when unknown.
func (m *ExtrasMap) Within(n Node) []ExtraNode {
	if m == nil {
		return nil
	}
	if s := m.slots[n]; s != nil {
		return s.within
	}
	return nil
}

// After returns the extras immediately following n, empty when unknown.
func (m *ExtrasMap) After(n Node) []ExtraNode {
	if m == nil {
		return nil
	}
	if s := m.slots[n]; s != nil {
		return s.after
	}
	return nil
}

func (m *ExtrasMap) slot(n Node) *extraSlots {
	s := m.slots[n]
	if s == nil {
		s = &extraSlots{}
		m.slots[n] = s
	}
	return s
}

// AppendBefore appends extras to n's before list.
func (m *ExtrasMap) AppendBefore(n Node, extras ...ExtraNode) {
	if len(extras) == 0 {
		return
	}
	s := m.slot(n)
	s.before = append(s.before, extras...)
}

// AppendWithin appends extras to n's within list.
func (m *ExtrasMap) AppendWithin(n Node, extras ...ExtraNode) {
	if len(extras) == 0 {
		return
	}
	s := m.slot(n)
	s.within = append(s.within, extras...)
}

// AppendAfter appends extras to n's after list.
func (m *ExtrasMap) AppendAfter(n Node, extras ...ExtraNode) {
	if len(extras) == 0 {
		return
	}
	s := m.slot(n)
	s.after = append(s.after, extras...)
}

// Clear drops every extras association for n.
func (m *ExtrasMap) Clear(n Node) {
	delete(m.slots, n)
}

// Move transfers old's extras associations to new, merging with anything
// already recorded for new. The rewrite engine calls this whenever a node is
// replaced so trivia follows the replacement.
func (m *ExtrasMap) Move(old, new Node) {
	if m == nil || old == new {
		return
	}
	s := m.slots[old]
	if s == nil {
		return
	}
	delete(m.slots, old)
	dst := m.slots[new]
	if dst == nil {
		m.slots[new] = s
		return
	}
	dst.before = append(dst.before, s.before...)
	dst.within = append(dst.within, s.within...)
	dst.after = append(dst.after, s.after...)
}

// Len reports how many nodes have extras recorded.
func (m *ExtrasMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.slots)
}
