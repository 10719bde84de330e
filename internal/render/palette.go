package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Hex palettes for the named schemes used by chart descriptions
var palettes = map[string][]string{
	"tableau10": {
		"4e79a7", "f28e2b", "e15759", "76b7b2", "59a14f",
		"edc948", "b07aa1", "ff9da7", "9c755f", "bab0ac",
	},
	"set1": {
		"e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00",
		"ffff33", "a65628", "f781bf", "999999",
	},
	"category20": {
		"1f77b4", "aec7e8", "ff7f0e", "ffbb78", "2ca02c",
		"98df8a", "d62728", "ff9896", "9467bd", "c5b0d5",
		"8c564b", "c49c94", "e377c2", "f7b6d2", "7f7f7f",
		"c7c7c7", "bcbd22", "dbdb8d", "17becf", "9edae5",
	},
}

// colorAt picks the i-th color of a scheme, cycling; unknown schemes fall back to tableau10
func colorAt(scheme string, i int) drawing.Color {
	p, ok := palettes[scheme]
	if !ok {
		p = palettes["tableau10"]
	}
	return drawing.ColorFromHex(p[i%len(p)])
}
