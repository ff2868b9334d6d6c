package arrays

// Map returns a new slice holding f applied to each element of input, in order.
func Map[InputType, OutputType any](input []InputType, f func(InputType) OutputType) []OutputType {
	result := make([]OutputType, len(input))
	for i, v := range input {
		result[i] = f(v)
	}
	return result
}

// Filter returns the elements of input for which f is true. The result is never nil.
func Filter[ArrayType any](input []ArrayType, f func(ArrayType) bool) []ArrayType {
	result := []ArrayType{}

	for _, v := range input {
		if f(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce folds input from the left, starting at initial.
func Reduce[InputType, OutputType any](input []InputType, f func(OutputType, InputType) OutputType, initial OutputType) OutputType {
	result := initial
	for _, v := range input {
		result = f(result, v)
	}
	return result
}

// Count returns how many elements of input satisfy f.
func Count[ArrayType any](input []ArrayType, f func(ArrayType) bool) int {
	return Reduce(input, func(total int, v ArrayType) int {
		if f(v) {
			return total + 1
		}
		return total
	}, 0)
}
