package coolrule_test

import (
	"fmt"

	"github.com/healeycodes/coolrule"
)

func ExampleNew() {
	rule, err := coolrule.New("1 in (1, 2, 3) or 2 > 3")
	if err != nil {
		panic(err)
	}

	ok, err := rule.Test()
	if err != nil {
		panic(err)
	}

	fmt.Println(ok)
	// Output: true
}

func ExampleRule_TestWithContext() {
	rule, err := coolrule.New("x ∉ (5, 6, 7)")
	if err != nil {
		panic(err)
	}

	ok, err := rule.TestWithContext(coolrule.Context{
		"x": coolrule.NumberValue(8),
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(ok)
	// Output: true
}
