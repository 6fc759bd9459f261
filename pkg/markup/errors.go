package markup

import "errors"

// Sentinel errors for element construction, mutation and content handling.
var (
	// ErrVoidChildren is returned when a void element is given children.
	ErrVoidChildren = errors.New("markup: void element cannot have children")

	// ErrFrozenChildren is returned when the child list of a void element is mutated.
	ErrFrozenChildren = errors.New("markup: void element children are frozen")

	// ErrCompoundSelectors is returned when a compound chain has fewer than two selectors.
	ErrCompoundSelectors = errors.New("markup: compound tags must have at least two selectors")

	// ErrInvalidContent is returned when a value is not a recognised child kind.
	ErrInvalidContent = errors.New("markup: invalid content")

	// ErrInvalidAttribute is returned when an attribute value has an unsupported type.
	ErrInvalidAttribute = errors.New("markup: invalid attribute value")
)

// IsConstructionError reports whether err was caused by building an element
// or compound chain with invalid input.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrVoidChildren) || errors.Is(err, ErrCompoundSelectors)
}
