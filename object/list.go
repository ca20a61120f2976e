// ==============================================================================================
// FILE: object/list.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The built-in list value and its methods. Lists are held by
//          reference through the environment and mutate in place; Sort
//          returns a freshly sorted list via a Timsort variant (insertion
//          sort over minimum-length runs, then stable doubling merges).
// ==============================================================================================

package object

import (
	"strings"

	"github.com/samber/lo"

	"github.com/justfreddev/pyru/token"
)

// sortThreshold is the largest list length that insertion sort handles
// on its own, with no merge pass.
const sortThreshold = 32

// List is an ordered, mutable sequence of values.
type List struct {
	Values []Value
}

func NewList(values []Value) *List {
	return &List{Values: values}
}

func (l *List) Type() Type { return ListType }

func (l *List) String() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = display(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Push appends a value. Arity 1.
func (l *List) Push(args []Value) error {
	if len(args) != 1 {
		return &RuntimeError{Kind: ArgsDifferFromArity, Args: len(args), Arity: 1}
	}
	l.Values = append(l.Values, args[0])
	return nil
}

// Pop removes and returns the last element, or nil when the list is
// empty.
func (l *List) Pop() Value {
	if len(l.Values) == 0 {
		return nil
	}
	last := l.Values[len(l.Values)-1]
	l.Values = l.Values[:len(l.Values)-1]
	return last
}

// Remove deletes and returns the element at the given index. Arity 1; the
// index must be a num inside the list bounds.
func (l *List) Remove(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &RuntimeError{Kind: ArgsDifferFromArity, Args: len(args), Arity: 1}
	}
	i, err := indexArg(args[0])
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(l.Values) {
		return nil, &RuntimeError{Kind: IndexOutOfRange}
	}

	removed := l.Values[i]
	l.Values = append(l.Values[:i], l.Values[i+1:]...)
	return removed, nil
}

// InsertAt inserts a value before the given index. Arity 2; inserting at
// the length appends.
func (l *List) InsertAt(args []Value) error {
	if len(args) != 2 {
		return &RuntimeError{Kind: ArgsDifferFromArity, Args: len(args), Arity: 2}
	}
	i, err := indexArg(args[0])
	if err != nil {
		return err
	}
	if i < 0 || i > len(l.Values) {
		return &RuntimeError{Kind: IndexOutOfRange}
	}

	l.Values = append(l.Values, nil)
	copy(l.Values[i+1:], l.Values[i:])
	l.Values[i] = args[1]
	return nil
}

// Index returns the position of the first element structurally equal to
// the argument. Arity 1.
func (l *List) Index(args []Value) (int, error) {
	if len(args) != 1 {
		return 0, &RuntimeError{Kind: ArgsDifferFromArity, Args: len(args), Arity: 1}
	}
	_, i, found := lo.FindIndexOf(l.Values, func(v Value) bool {
		return Equal(v, args[0])
	})
	if !found {
		return 0, &RuntimeError{Kind: ItemNotFound}
	}
	return i, nil
}

// Len returns the element count.
func (l *List) Len() int {
	return len(l.Values)
}

// indexArg narrows a method argument to an integer index.
func indexArg(v Value) (int, error) {
	l, ok := v.(*Literal)
	if !ok || l.Value.Kind != token.LitNum {
		return 0, &RuntimeError{Kind: ExpectedIndexToBeANum}
	}
	return int(l.Value.Num), nil
}

// ----------------------------------------------------------------------------------------------
// SORTING
// ----------------------------------------------------------------------------------------------

// TimSort returns a new list holding the elements in non-decreasing
// order. The comparator is defined on num/num and str/str pairs only; any
// other pairing fails with CannotCompareValues. The sort is stable.
func (l *List) TimSort() (*List, error) {
	values := make([]Value, len(l.Values))
	copy(values, l.Values)
	n := len(values)
	if n == 0 {
		return NewList(values), nil
	}

	runLength := minRunLength(n)

	for start := 0; start < n; start += runLength {
		end := min(start+runLength-1, n-1)
		if err := insertionSort(values, start, end); err != nil {
			return nil, err
		}
	}

	if n <= sortThreshold {
		return NewList(values), nil
	}

	for size := runLength; size < n; size *= 2 {
		for left := 0; left < n; left += 2 * size {
			mid := min(n-1, left+size-1)
			right := min(n-1, left+2*size-1)
			if mid < right {
				if err := merge(values, left, mid, right); err != nil {
					return nil, err
				}
			}
		}
	}
	return NewList(values), nil
}

// minRunLength halves the length (rounding down) while it exceeds the
// threshold, then adds one if any halving dropped an odd element; so 100
// gives 25 and 65 gives 33.
func minRunLength(n int) int {
	r := 0
	for n > sortThreshold {
		r |= n & 1
		n /= 2
	}
	return n + r
}

// insertionSort sorts values[left..right] in place, both bounds
// inclusive.
func insertionSort(values []Value, left, right int) error {
	for i := left + 1; i <= right; i++ {
		for j := i; j > left; j-- {
			before, err := less(values[j], values[j-1])
			if err != nil {
				return err
			}
			if !before {
				break
			}
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
	return nil
}

// merge merges the sorted runs values[l..m] and values[m+1..r] stably,
// taking from the left run on ties.
func merge(values []Value, l, m, r int) error {
	left := make([]Value, m-l+1)
	right := make([]Value, r-m)
	copy(left, values[l:m+1])
	copy(right, values[m+1:r+1])

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		before, err := less(right[j], left[i])
		if err != nil {
			return err
		}
		if before {
			values[k] = right[j]
			j++
		} else {
			values[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		values[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		values[k] = right[j]
		j++
		k++
	}
	return nil
}

// less orders two sortable values: num against num, str against str.
func less(a, b Value) (bool, error) {
	al, aok := a.(*Literal)
	bl, bok := b.(*Literal)
	if !aok || !bok {
		return false, &RuntimeError{Kind: CannotCompareValues}
	}

	switch {
	case al.Value.Kind == token.LitNum && bl.Value.Kind == token.LitNum:
		return al.Value.Num < bl.Value.Num, nil
	case al.Value.Kind == token.LitStr && bl.Value.Kind == token.LitStr:
		return al.Value.Str < bl.Value.Str, nil
	}
	return false, &RuntimeError{Kind: CannotCompareValues}
}
