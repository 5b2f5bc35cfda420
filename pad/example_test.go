package pad_test

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/pad"
)

// ExamplePadder_Apply shifts a list one slot to the right.
func ExamplePadder_Apply() {
	p, _ := pad.New(5)
	p.SetLeftPad(1)

	out, _, _ := p.Apply(atom.ListMessage(atom.Int(7), atom.Int(8)))
	fmt.Println(out)
	// Output:
	// 0 7 8 0 0
}
