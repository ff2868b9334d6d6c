package runner

import (
	"github.com/tessellated-io/workshop/config"
	"github.com/tessellated-io/workshop/workshop"
)

// Exercise pairs a name with the function that feeds it from a dataset.
type Exercise struct {
	Name string
	Run  func(dataset *config.Dataset) any
}

// DefaultExercises returns the five workshop exercises in run order.
func DefaultExercises() []Exercise {
	return []Exercise{
		{Name: "tripleAll", Run: func(d *config.Dataset) any { return workshop.TripleAll(d.Numbers) }},
		{Name: "upperCaseNames", Run: func(d *config.Dataset) any { return workshop.UpperCaseNames(d.People) }},
		{Name: "userLinks", Run: func(d *config.Dataset) any { return workshop.UserLinks(d.Users) }},
		{Name: "getApplicantEmails", Run: func(d *config.Dataset) any { return workshop.GetApplicantEmails(d.Applicants) }},
		{Name: "mergeObjects", Run: func(d *config.Dataset) any { return workshop.MergeObjects(d.Objects) }},
	}
}
