package workshop

import (
	"fmt"
	"strings"

	"github.com/tessellated-io/workshop/arrays"
)

// TripleAll returns a new slice with every element of xs multiplied by three.
func TripleAll[N Number](xs []N) []N {
	return arrays.Map(xs, func(x N) N { return x * 3 })
}

// UpperCaseNames returns the upper-cased name of each person.
func UpperCaseNames(people []Person) []string {
	return arrays.Map(people, func(p Person) string { return strings.ToUpper(p.Name) })
}

// UserLinks returns an anchor tag pointing at each user's profile page.
func UserLinks(users []User) []string {
	return arrays.Map(users, userLink)
}

func userLink(u User) string {
	return fmt.Sprintf(`<a href="/users/%s">%s</a>`, u.Username, u.Username)
}

// GetApplicantEmails returns the emails of applicants who took the advanced course
// and are at least MinimumApplicantAge, in input order.
func GetApplicantEmails(applicants []Applicant) []string {
	qualified := arrays.Filter(applicants, func(a Applicant) bool {
		return a.AdvancedJSCourse && a.Age >= MinimumApplicantAge
	})
	return arrays.Map(qualified, func(a Applicant) string { return a.Email })
}

// MergeObjects folds objects into a single new mapping. When a key repeats, the
// value from the later object wins. The inputs are left untouched.
func MergeObjects(objects []Object) Object {
	return arrays.Reduce(objects, func(merged Object, next Object) Object {
		for key, value := range next {
			merged[key] = value
		}
		return merged
	}, Object{})
}
