package atom_test

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
)

// ExampleParse shows how text becomes a message with a lead tag.
func ExampleParse() {
	msg, err := atom.Parse("foo 1 2.5")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("selector=%s args=%d lead=%v\n", msg.Selector, len(msg.Args), msg.HasLead())
	// Output:
	// selector=foo args=2 lead=true
}

// ExampleEqual shows numeric equality across kinds.
func ExampleEqual() {
	fmt.Println(atom.Equal(atom.Int(2), atom.Float(2)))
	fmt.Println(atom.Equal(atom.Int(1), atom.Sym("1")))
	// Output:
	// true
	// false
}
