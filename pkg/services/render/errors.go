package render

import "fmt"

// StructuralError reports an analysis record that violates the tree
// contract: nesting past the recursion guard, which in practice means
// a cyclic or degenerate payload. It is the only error the rendering
// core surfaces; everything else is handled as absence.
type StructuralError struct {
	Key   string
	Depth int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error at %q: nesting depth %d exceeds limit %d", e.Key, e.Depth, maxDepth)
}
