package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]TestCase{
	"fill":    fillCases,
	"overlap": overlapCases,
	"alpha":   alphaCases,
	"border":  borderCases,
}
