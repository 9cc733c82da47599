package sws_test

import (
	"fmt"

	"github.com/thesyncim/sws"
)

func Example() {
	converter, err := sws.NewConverter(4, 256, 16000)
	if err != nil {
		panic(err)
	}

	audio := make([]float32, 256*10)
	for i := range audio {
		audio[i] = float32(i%17) / 17
	}

	frequencies, magnitudes, err := converter.Analyze(audio)
	if err != nil {
		panic(err)
	}

	frequencies = converter.Quantize(frequencies, sws.ScaleDiatonic)

	samples, _, err := converter.Synthesize(frequencies, magnitudes, nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(samples) > 0)
	// Output: true
}
