package workshop

// Number is any value TripleAll, DoubleAll and Sum can do arithmetic on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type Person struct {
	Name string `yaml:"name"`
}

type User struct {
	Email    string `yaml:"email"`
	Username string `yaml:"username"`
	Age      int    `yaml:"age"`
}

// Applicant is a candidate for an interview.
type Applicant struct {
	Email            string `yaml:"email"`
	Name             string `yaml:"name"`
	Age              int    `yaml:"age"`
	AdvancedJSCourse bool   `yaml:"advancedJSCourse"`
}

// Object is an open key/value mapping.
type Object = map[string]any

// MinimumApplicantAge is the youngest age, inclusive, that GetApplicantEmails accepts.
const MinimumApplicantAge = 18
