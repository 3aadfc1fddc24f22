package set

type Interface interface {
	// Adds an item to the set.
	Add(string) bool

	// Removes the item that is exactly equal to the provided one.
	RemoveExact(string) bool

	// Removes the first item, in the set's order, that matches the provided
	// one ignoring case.
	RemoveCaseInsensitive(string) bool

	// Removes the first item in the set's order.
	RemoveFirst() bool

	// Replaces the contents of the set with the textual form of every value.
	ResetFrom([]any)

	// Returns whether the provided item is in the set.
	Contains(string) bool

	// Returns whether every provided item is in the set. A nil slice is
	// trivially contained.
	ContainsAll([]string) bool

	// Returns the number of items in the set.
	Size() int

	// Returns the first and last items in the set's order. The bool is false
	// when the set is empty.
	First() (string, bool)
	Last() (string, bool)

	// Returns the items in the set's order.
	Items() []string

	// Returns the items sorted from smallest to largest.
	AsAscendingList() []string

	// Returns the items sorted from largest to smallest.
	AsDescendingList() []string

	// Returns the items at or after the provided one, in the set's order.
	FromInclusive(string) []string

	// Replaces every item with its upper-cased form. Items that become equal
	// collapse into one.
	ToUppercase()

	// Returns a new set holding the same items ordered from largest to
	// smallest.
	ToDescendingView() Interface

	// Provides a string representation of the set.
	String() string
}
