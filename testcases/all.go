package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported image filenames.
var All = map[string][]TestCase{
	"pixel": pixelCases,
	"line":  lineCases,
	"text":  textCases,
	"shape": shapeCases,
}
