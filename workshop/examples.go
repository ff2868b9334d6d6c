package workshop

import (
	"fmt"
	"strings"

	"github.com/tessellated-io/workshop/arrays"
)

// Double returns x times two.
func Double[N Number](x N) N {
	return x * 2
}

// DoubleAll doubles every element of xs.
func DoubleAll[N Number](xs []N) []N {
	return arrays.Map(xs, Double[N])
}

// LowerCaseAll lower-cases every string in xs.
func LowerCaseAll(xs []string) []string {
	return arrays.Map(xs, strings.ToLower)
}

// PluckNames pulls the name field out of each person.
func PluckNames(people []Person) []string {
	return arrays.Map(people, func(p Person) string { return p.Name })
}

// WrapInDiv wraps each element of xs in a div tag.
func WrapInDiv[T any](xs []T) []string {
	return arrays.Map(xs, func(x T) string { return fmt.Sprintf("<div>%v</div>", x) })
}

// IsOdd reports whether n is odd.
func IsOdd(n int) bool {
	return n%2 != 0
}

// OddNumbers keeps only the odd elements of xs.
func OddNumbers(xs []int) []int {
	return arrays.Filter(xs, IsOdd)
}

// Sum adds xs starting from zero, so the sum of no numbers is zero.
func Sum[N Number](xs []N) N {
	return arrays.Reduce(xs, func(total, x N) N { return total + x }, 0)
}

// NumberOfAdvancedGrads counts the applicants who took the advanced course.
func NumberOfAdvancedGrads(applicants []Applicant) int {
	return arrays.Count(applicants, func(a Applicant) bool { return a.AdvancedJSCourse })
}
