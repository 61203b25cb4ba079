package ast

import "fmt"

// KeywordKind identifies one concrete keyword or operator symbol.
type KeywordKind int

const (
	kwInvalid KeywordKind = iota

	// Declaration keywords.
	KwVal
	KwVar
	KwClass
	KwInterface
	KwObject
	KwFun
	KwConstructor
	KwInit
	KwGet
	KwSet
	KwBy
	KwWhere
	KwDynamic
	KwTypealias

	// Modifier keywords.
	KwAbstract
	KwFinal
	KwOpen
	KwAnnotation
	KwSealed
	KwData
	KwOverride
	KwLateinit
	KwInner
	KwEnum
	KwCompanion
	KwValue
	KwInfix
	KwOperator
	KwInline
	KwNoinline
	KwCrossinline
	KwVararg
	KwReified
	KwTailrec
	KwSuspend
	KwConst
	KwActual
	KwExpect
	KwExternal
	KwPublic
	KwPrivate
	KwProtected
	KwInternal
	KwOut

	// Annotation use-site targets.
	KwFile
	KwField
	KwProperty
	KwReceiver
	KwParam
	KwSetparam
	KwDelegate

	// Expression keywords.
	KwThis
	KwSuper
	KwElse
	KwContract

	// Operator symbols.
	KwPlus
	KwMinus
	KwMul
	KwDiv
	KwMod
	KwPlusAssign
	KwMinusAssign
	KwMulAssign
	KwDivAssign
	KwModAssign
	KwAssign
	KwEq
	KwNotEq
	KwEqEq
	KwNotEqEq
	KwLt
	KwGt
	KwLte
	KwGte
	KwAndAnd
	KwOrOr
	KwNot
	KwNotNot
	KwIncr
	KwDecr
	KwDot
	KwDotSafe
	KwElvis
	KwRange
	KwRangeUntil
	KwIn
	KwNotIn
	KwIs
	KwNotIs
	KwAs
	KwAsSafe
	KwColon
)

var keywordTexts = map[KeywordKind]string{
	KwVal:         "val",
	KwVar:         "var",
	KwClass:       "class",
	KwInterface:   "interface",
	KwObject:      "object",
	KwFun:         "fun",
	KwConstructor: "constructor",
	KwInit:        "init",
	KwGet:         "get",
	KwSet:         "set",
	KwBy:          "by",
	KwWhere:       "where",
	KwDynamic:     "dynamic",
	KwTypealias:   "typealias",

	KwAbstract:    "abstract",
	KwFinal:       "final",
	KwOpen:        "open",
	KwAnnotation:  "annotation",
	KwSealed:      "sealed",
	KwData:        "data",
	KwOverride:    "override",
	KwLateinit:    "lateinit",
	KwInner:       "inner",
	KwEnum:        "enum",
	KwCompanion:   "companion",
	KwValue:       "value",
	KwInfix:       "infix",
	KwOperator:    "operator",
	KwInline:      "inline",
	KwNoinline:    "noinline",
	KwCrossinline: "crossinline",
	KwVararg:      "vararg",
	KwReified:     "reified",
	KwTailrec:     "tailrec",
	KwSuspend:     "suspend",
	KwConst:       "const",
	KwActual:      "actual",
	KwExpect:      "expect",
	KwExternal:    "external",
	KwPublic:      "public",
	KwPrivate:     "private",
	KwProtected:   "protected",
	KwInternal:    "internal",
	KwOut:         "out",

	KwFile:     "file",
	KwField:    "field",
	KwProperty: "property",
	KwReceiver: "receiver",
	KwParam:    "param",
	KwSetparam: "setparam",
	KwDelegate: "delegate",

	KwThis:     "this",
	KwSuper:    "super",
	KwElse:     "else",
	KwContract: "contract",

	KwPlus:        "+",
	KwMinus:       "-",
	KwMul:         "*",
	KwDiv:         "/",
	KwMod:         "%",
	KwPlusAssign:  "+=",
	KwMinusAssign: "-=",
	KwMulAssign:   "*=",
	KwDivAssign:   "/=",
	KwModAssign:   "%=",
	KwAssign:      "=",
	KwEq:          "==",
	KwNotEq:       "!=",
	KwEqEq:        "===",
	KwNotEqEq:     "!==",
	KwLt:          "<",
	KwGt:          ">",
	KwLte:         "<=",
	KwGte:         ">=",
	KwAndAnd:      "&&",
	KwOrOr:        "||",
	KwNot:         "!",
	KwNotNot:      "!!",
	KwIncr:        "++",
	KwDecr:        "--",
	KwDot:         ".",
	KwDotSafe:     "?.",
	KwElvis:       "?:",
	KwRange:       "..",
	KwRangeUntil:  "..<",
	KwIn:          "in",
	KwNotIn:       "!in",
	KwIs:          "is",
	KwNotIs:       "!is",
	KwAs:          "as",
	KwAsSafe:      "as?",
	KwColon:       ":",
}

// String returns the literal source text of the keyword kind.
func (k KeywordKind) String() string {
	if s, ok := keywordTexts[k]; ok {
		return s
	}
	return fmt.Sprintf("KeywordKind(%d)", int(k))
}

// Keyword is the leaf node for a fixed keyword or operator symbol. Keywords
// participate in traversal like any other node so that trivia captured around
// them survives a round trip.
type Keyword struct {
	Kind KeywordKind
}

// NewKeyword constructs a keyword leaf.
func NewKeyword(kind KeywordKind) *Keyword {
	return &Keyword{Kind: kind}
}

// Text returns the literal source text the keyword emits.
func (k *Keyword) Text() string { return k.Kind.String() }

func (*Keyword) node()           {}
func (*Keyword) modifierNode()   {}
func (*Keyword) binaryOperNode() {}

var modifierKeywords = map[KeywordKind]bool{
	KwAbstract: true, KwFinal: true, KwOpen: true, KwAnnotation: true,
	KwSealed: true, KwData: true, KwOverride: true, KwLateinit: true,
	KwInner: true, KwEnum: true, KwCompanion: true, KwValue: true,
	KwInfix: true, KwOperator: true, KwInline: true, KwNoinline: true,
	KwCrossinline: true, KwVararg: true, KwReified: true, KwTailrec: true,
	KwSuspend: true, KwConst: true, KwActual: true, KwExpect: true,
	KwExternal: true, KwPublic: true, KwPrivate: true, KwProtected: true,
	KwInternal: true, KwOut: true, KwIn: true,
}

var modifierKeywordTexts = func() map[string]bool {
	m := make(map[string]bool, len(modifierKeywords))
	for k := range modifierKeywords {
		m[k.String()] = true
	}
	return m
}()

// IsModifierKeyword reports whether kind is usable as a declaration modifier.
func IsModifierKeyword(kind KeywordKind) bool { return modifierKeywords[kind] }

// IsModifierText reports whether name spells a modifier keyword. The writer
// consults this to keep a bare name expression from being re-parsed as a
// modifier of the following declaration.
func IsModifierText(name string) bool { return modifierKeywordTexts[name] }
