// Package builder defines shared constants used by matrix constructors.
package builder

// Method names, used to prefix errors with the constructor name.
const (
	// MethodDiagonal is the canonical name for the Diagonal constructor.
	MethodDiagonal = "Diagonal"
	// MethodPermutation is the canonical name for the Permutation constructor.
	MethodPermutation = "Permutation"
	// MethodBand is the canonical name for the Band constructor.
	MethodBand = "Band"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodBuildDense is the canonical name for BuildDense.
	MethodBuildDense = "BuildDense"
	// MethodBuildSparse is the canonical name for BuildSparse.
	MethodBuildSparse = "BuildSparse"
)

// Probability bounds accepted by RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// MinDimension is the smallest row or column count of a built matrix.
const MinDimension = 1
