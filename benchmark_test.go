package h2si

import (
	"math/rand/v2"
	"testing"
)

const benchSamples = 100_000

func benchInputs() []HSI {
	r := rand.New(rand.NewPCG(42, 42))
	inputs := make([]HSI, benchSamples)
	for k := range inputs {
		inputs[k] = randomHSI(r)
	}
	return inputs
}

var sinkHSI HSI

func BenchmarkRoundTripComplex(b *testing.B) {
	inputs := benchInputs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c := inputs[n%len(inputs)]
		x, _ := HSIToH2SI(c)
		sinkHSI = x.HSI()
	}
}

func BenchmarkRoundTripComponents(b *testing.B) {
	inputs := benchInputs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c := inputs[n%len(inputs)]
		v, _ := HSIToComponents(c)
		sinkHSI = v.HSI()
	}
}

func BenchmarkLerpComponents(b *testing.B) {
	inputs := benchInputs()
	x, _ := HSIToComponents(inputs[0])
	y, _ := HSIToComponents(inputs[1])
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sinkHSI = LerpComponents(x, y, float64(n%101)/100).HSI()
	}
}
