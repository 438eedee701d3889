package analysis

import (
	"sort"
	"strings"

	"github.com/san-kum/chaosviz/internal/dynamo"
)

// BifurcationPoint holds the distinct local maxima of one coordinate
// observed for a given parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// BifurcationDiagram sweeps a parameter and records the local maxima of
// x[stateIndex] after the transient. One value per point means a simple
// limit cycle, a few mean period doubling, a smear means chaos. Fixed points
// produce no maxima.
//
// dyn must implement dynamo.Configurable; parameter values it rejects are
// skipped. The original parameter value is restored afterwards.
func BifurcationDiagram(
	dyn dynamo.System,
	integ dynamo.Integrator,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	stateIndex int,
	x0 dynamo.State,
	dt, transient, record float64,
) []BifurcationPoint {
	tunable, ok := dyn.(dynamo.Configurable)
	if !ok || stateIndex < 0 || stateIndex >= len(x0) {
		return nil
	}
	original, hasOriginal := tunable.GetParams()[paramName]

	if paramSteps <= 1 {
		paramSteps = 2
	}
	paramStep := (paramMax - paramMin) / float64(paramSteps-1)
	results := make([]BifurcationPoint, 0, paramSteps)

	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*paramStep
		if err := tunable.SetParam(paramName, param); err != nil {
			continue
		}

		samples := Sample(dyn, integ, x0, dt, transient, int(record/dt))
		values := make([]float64, 0, 16)
		seen := make(map[int]bool)
		for j := 1; j+1 < len(samples); j++ {
			prev, cur, next := samples[j-1][stateIndex], samples[j][stateIndex], samples[j+1][stateIndex]
			if cur > prev && cur >= next {
				// Quantize so the same peak on successive loops counts once.
				key := int(cur * 1000)
				if !seen[key] {
					seen[key] = true
					values = append(values, cur)
				}
			}
		}
		sort.Float64s(values)

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}

	if hasOriginal {
		_ = tunable.SetParam(paramName, original)
	}
	return results
}

// BifurcationToASCII plots the diagram with the parameter on the horizontal
// axis and the recorded maxima on the vertical axis.
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	found := false
	for _, p := range data {
		for _, v := range p.Values {
			if !found {
				minVal, maxVal = v, v
				found = true
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if !found {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
