package djb_test

import (
	"fmt"

	"github.com/perbu/djb"
)

func ExampleX33a() {
	h := djb.NewX33a()
	h.WriteString("Ez")
	fmt.Println(h.Sum64())

	h = djb.NewX33a()
	h.WriteString("FY")
	fmt.Println(h.Sum64())
	// Output:
	// 5862308
	// 5862308
}

func ExampleNewX33aWithSalt() {
	h := djb.NewX33aWithSalt(5387)
	h.WriteString("FY")
	fmt.Println(h.Sum64())
	// Output: 5868842
}

func ExampleX33aU32Php() {
	h := djb.NewX33aU32Php()
	h.WriteString("Ez")
	fmt.Println(h.Sum32())
	fmt.Printf("%#x\n", h.Sum(nil))
	// Output:
	// 2153345956
	// 0x805973a4
}

func ExampleX33x() {
	for _, s := range []string{"Ez", "FY"} {
		h := djb.NewX33x()
		h.WriteString(s)
		fmt.Println(s, h.Sum64())
	}
	// Output:
	// Ez 5861786
	// FY 5861914
}

func ExampleHasher32() {
	var h djb.Hasher = djb.NewX33aU32()
	h.WriteString("abcEzpie")

	if h32, ok := h.(djb.Hasher32); ok {
		fmt.Println(h32.Sum32())
	}
	// Output: 1686394568
}

func ExampleSumCDB() {
	fmt.Println(djb.SumCDB([]byte("key")))
	// Output: 193424690
}
