package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/distroots/sequence"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBase2
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Draw the first few values of the canonical base-2 stream.  Each prefix
//	of length 2^m−1 covers every interior multiple of 2^-m exactly once,
//	so the samples spread over (0,1) far more evenly than random draws.
//
// Complexity: O(1) per value.
func ExampleBase2() {
	src := sequence.Base2()
	for i := 0; i < 7; i++ {
		fmt.Printf("%.4f ", src.Next())
	}
	fmt.Println()
	// Output:
	// 0.5000 0.2500 0.7500 0.1250 0.6250 0.3750 0.8750
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A base-3 stream (one Halton axis).  Values are digit reversals of the
//	running index in base 3.
//
// Complexity: O(log n) per value.
func ExampleNew() {
	src, err := sequence.New(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 5; i++ {
		fmt.Printf("%.4f ", src.Next())
	}
	fmt.Println()
	// Output:
	// 0.3333 0.6667 0.1111 0.4444 0.7778
}
