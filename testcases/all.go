package testcases

// All contains all point test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"basic":      basicCases,
	"degenerate": degenerateCases,
	"grid":       gridCases,
	"random":     randomCases,
}

// Fixtures contains hand-built diagrams for inputs with segment sites.
var Fixtures = []Fixture{
	segmentOnly,
	pointAndSegment,
}
