package sequence

// Box is the operation set shared by containers that manage one integer
// sequence and one string sequence. Every query returns data that is
// independent of the container's storage.
type Box interface {
	// Returns a copy of the integer sequence.
	Ints() []int

	// Returns a copy of the string sequence.
	Strings() []string

	IntCount() int
	StringCount() int

	// Appends a value to the end of the sequence.
	AppendInt(int)
	AppendString(string)

	// Removes every element equal to the value, keeping the order of the
	// rest.
	RemoveAllInt(int)
	RemoveAllString(string)

	// Inserts v at pos, clamping pos into [0, IntCount()].
	InsertIntAt(v, pos int)

	// Removes the element at pos. Out-of-range positions are ignored.
	RemoveIntAt(pos int)

	// Replaces the integer sequence by truncating each value toward zero.
	ResetIntsFrom([]float64)

	// Replaces the string sequence by the textual form of each value.
	ResetStringsFrom([]any)

	// Replaces every integer with its absolute value.
	AbsInts()

	// Sorts the integers in the container's own direction.
	SortInts()

	// Sorts the strings in ascending byte order.
	SortStrings()

	// Counts exact integer matches.
	CountInt(int) int

	// Counts case-insensitive string matches.
	CountString(string) int

	// Returns every index holding the value, ascending.
	IntPositions(int) []int

	// Returns [min, max], or an empty slice when there are no integers.
	IntRange() []int

	// Maps every distinct integer to its number of occurrences.
	Histogram() map[int]int

	// Returns the number of distinct integers that occur at least twice.
	CountRepeatedInts() int

	// Determines if other holds the same integers in the same order.
	EqualsOrdered(other []int) bool

	// Determines if other holds the same integers in any order.
	SameElements(other []int) bool

	// Replaces the integers with count uniform samples from [lo, hi].
	RegenerateInts(count, lo, hi int)
}
