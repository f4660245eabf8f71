package loop_test

import (
	"fmt"

	"github.com/hackebrot/go-event-loop/internal/loop"
)

func ExampleLoop_Tick() {
	l := loop.New()

	_ = l.EnqueueTimer(func() {
		fmt.Println("A")
		_ = l.EnqueueDeferred(func() { fmt.Println("C") })
	})
	_ = l.EnqueueTimer(func() { fmt.Println("B") })
	_ = l.EnqueueCheck(func() { fmt.Println("check") })
	_ = l.EnqueueImmediate(func() { fmt.Println("immediate") })

	if err := l.Tick(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// immediate
	// A
	// C
	// B
	// check
}
