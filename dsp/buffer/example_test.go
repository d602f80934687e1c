package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-multiband/dsp/buffer"
)

func ExampleDeinterleave() {
	chans, err := buffer.Deinterleave([]float64{1, 10, 2, 20, 3, 30}, 2, 44100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(chans[0].Samples(), chans[1].Samples())

	// Output:
	// [1 2 3] [10 20 30]
}
