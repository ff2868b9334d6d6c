package workshop_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellated-io/workshop/workshop"
)

var applicants = []workshop.Applicant{
	{Email: "bob@bob.com", Name: "Bob", Age: 30, AdvancedJSCourse: true},
	{Email: "joe@woohoo.com", Name: "Joe", Age: 22, AdvancedJSCourse: false},
	{Email: "sierra@coldmail.com", Name: "Sierra", Age: 24, AdvancedJSCourse: true},
	{Email: "Kevin@mswin.com", Name: "Kevin", Age: 17, AdvancedJSCourse: true},
}

func TestTripleAll_EmptyArray(t *testing.T) {
	assert.Equal(t, []int{}, workshop.TripleAll([]int{}))
}

func TestTripleAll_ArrayOfNumbers(t *testing.T) {
	assert.Equal(t, []int{3, 6, 9, 12, 15}, workshop.TripleAll([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, []float64{1.5, -3}, workshop.TripleAll([]float64{0.5, -1}))
}

func TestTripleAll_EveryElementTripled(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		xs := make([]int64, r.Intn(20))
		for j := range xs {
			xs[j] = r.Int63n(1_000_000) - 500_000
		}

		tripled := workshop.TripleAll(xs)

		require.Len(t, tripled, len(xs))
		for j := range xs {
			require.Equal(t, 3*xs[j], tripled[j])
		}
	}
}

func TestUpperCaseNames_EmptyArray(t *testing.T) {
	assert.Equal(t, []string{}, workshop.UpperCaseNames([]workshop.Person{}))
}

func TestUpperCaseNames_ArrayOfPeople(t *testing.T) {
	people := []workshop.Person{{Name: "Bob"}, {Name: "joe"}, {Name: "emily"}}

	assert.Equal(t, []string{"BOB", "JOE", "EMILY"}, workshop.UpperCaseNames(people))
	assert.Equal(t, "Bob", people[0].Name, "input must not be mutated")
}

func TestUpperCaseNames_EveryNameUpperCased(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	alphabet := []rune("abcXYZ éß-1")

	for i := 0; i < 50; i++ {
		people := make([]workshop.Person, r.Intn(20))
		for j := range people {
			name := make([]rune, r.Intn(8))
			for k := range name {
				name[k] = alphabet[r.Intn(len(alphabet))]
			}
			people[j] = workshop.Person{Name: string(name)}
		}

		upper := workshop.UpperCaseNames(people)

		require.Len(t, upper, len(people))
		for j := range people {
			require.Equal(t, strings.ToUpper(people[j].Name), upper[j])
		}
	}
}

func TestUserLinks_EmptyArray(t *testing.T) {
	assert.Equal(t, []string{}, workshop.UserLinks([]workshop.User{}))
}

func TestUserLinks_ArrayOfUsers(t *testing.T) {
	users := []workshop.User{
		{Email: "bob@bob.com", Username: "bobsled99", Age: 30},
		{Email: "joe@woohoo.com", Username: "joemamma", Age: 22},
		{Email: "sierra@coldmail.com", Username: "sierramyst", Age: 24},
		{Email: "test@test.com", Username: "test", Age: 24},
	}

	links := []string{
		`<a href="/users/bobsled99">bobsled99</a>`,
		`<a href="/users/joemamma">joemamma</a>`,
		`<a href="/users/sierramyst">sierramyst</a>`,
		`<a href="/users/test">test</a>`,
	}

	assert.Equal(t, links, workshop.UserLinks(users))
}

func TestUserLinks_MatchesConcatenation(t *testing.T) {
	users := []workshop.User{{Username: "a"}, {Username: "with space"}, {Username: ""}}

	links := workshop.UserLinks(users)

	require.Len(t, links, len(users))
	for i, u := range users {
		require.Equal(t, `<a href="/users/`+u.Username+`">`+u.Username+`</a>`, links[i])
	}
}

func TestGetApplicantEmails_EmptyArray(t *testing.T) {
	assert.Equal(t, []string{}, workshop.GetApplicantEmails([]workshop.Applicant{}))
}

func TestGetApplicantEmails_ArrayOfApplicants(t *testing.T) {
	expected := []string{applicants[0].Email, applicants[2].Email}

	assert.Equal(t, expected, workshop.GetApplicantEmails(applicants))
}

func TestGetApplicantEmails_ExactlyEighteenQualifies(t *testing.T) {
	edge := []workshop.Applicant{
		{Email: "seventeen@x.com", Age: 17, AdvancedJSCourse: true},
		{Email: "eighteen@x.com", Age: 18, AdvancedJSCourse: true},
		{Email: "nineteen@x.com", Age: 19, AdvancedJSCourse: true},
	}

	assert.Equal(t, []string{"eighteen@x.com", "nineteen@x.com"}, workshop.GetApplicantEmails(edge))
}

func TestGetApplicantEmails_OnlyQualifyingInOrder(t *testing.T) {
	r := rand.New(rand.NewSource(18))

	for i := 0; i < 50; i++ {
		pool := make([]workshop.Applicant, r.Intn(15))
		expected := []string{}
		for j := range pool {
			pool[j] = workshop.Applicant{
				Email:            fmt.Sprintf("applicant-%d@example.com", j),
				Age:              10 + r.Intn(20),
				AdvancedJSCourse: r.Intn(2) == 0,
			}
			if pool[j].AdvancedJSCourse && pool[j].Age >= 18 {
				expected = append(expected, pool[j].Email)
			}
		}

		require.Equal(t, expected, workshop.GetApplicantEmails(pool))
	}
}

func TestMergeObjects_EmptyArray(t *testing.T) {
	merged := workshop.MergeObjects([]workshop.Object{})

	require.NotNil(t, merged)
	assert.Equal(t, workshop.Object{}, merged)
}

func TestMergeObjects_ArrayOfObjects(t *testing.T) {
	objects := []workshop.Object{{"a": 1}, {"b": 2}, {"c": 3, "d": 4}}

	assert.Equal(t, workshop.Object{"a": 1, "b": 2, "c": 3, "d": 4}, workshop.MergeObjects(objects))
}

func TestMergeObjects_LaterValueWins(t *testing.T) {
	objects := []workshop.Object{{"a": 1, "b": "first"}, {}, {"b": "second"}, {"b": "third", "c": nil}}

	assert.Equal(t, workshop.Object{"a": 1, "b": "third", "c": nil}, workshop.MergeObjects(objects))
}

func TestMergeObjects_DoesNotMutateInputs(t *testing.T) {
	first := workshop.Object{"a": 1}
	second := workshop.Object{"a": 2, "b": 3}

	merged := workshop.MergeObjects([]workshop.Object{first, second})
	merged["z"] = true

	assert.Equal(t, workshop.Object{"a": 1}, first)
	assert.Equal(t, workshop.Object{"a": 2, "b": 3}, second)
}

func TestExercises_RepeatedCallsAreEqual(t *testing.T) {
	people := []workshop.Person{{Name: "Ada"}, {Name: "grace"}}
	objects := []workshop.Object{{"k": "v"}, {"k": "w"}}

	assert.Equal(t, workshop.TripleAll([]int{4, 5}), workshop.TripleAll([]int{4, 5}))
	assert.Equal(t, workshop.UpperCaseNames(people), workshop.UpperCaseNames(people))
	assert.Equal(t, workshop.GetApplicantEmails(applicants), workshop.GetApplicantEmails(applicants))
	assert.Equal(t, workshop.MergeObjects(objects), workshop.MergeObjects(objects))
	assert.Equal(t, workshop.UserLinks([]workshop.User{{Username: "u"}}), workshop.UserLinks([]workshop.User{{Username: "u"}}))
}
