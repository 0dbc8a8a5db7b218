package token

// SymbolValue is an opaque identity value. Two symbols are equal only when
// they come from the same NewSymbol call, whatever their descriptions.
type SymbolValue struct {
	id *symbolID
}

type symbolID struct {
	description string
}

// NewSymbol creates a fresh symbol. The description is for debugging only
// and never appears in diagnostics.
func NewSymbol(description string) SymbolValue {
	return SymbolValue{id: &symbolID{description: description}}
}

// Description returns the text given to NewSymbol.
func (s SymbolValue) Description() string {
	if s.id == nil {
		return ""
	}

	return s.id.description
}

type undefinedValue struct{}

// UndefinedValue marks an explicitly absent value, such as a missing map entry
// returned by a lookup helper. It classifies as Undefined, like untyped nil.
var UndefinedValue any = undefinedValue{}
