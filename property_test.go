package djb_test

import (
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
)

// randomInputs returns text of varied length, long enough to wrap 32 bit
// state many times over.
func randomInputs(n int) []string {
	inputs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch i % 3 {
		case 0:
			inputs = append(inputs, randomdata.SillyName())
		case 1:
			inputs = append(inputs, randomdata.Email())
		default:
			inputs = append(inputs, randomdata.Paragraph())
		}
	}
	return inputs
}

func TestDeterminism(t *testing.T) {
	for _, input := range randomInputs(50) {
		for _, v := range variants {
			a := v.new()
			a.WriteString(input)
			b := v.new()
			b.WriteString(input)
			assert.Equal(t, a.Sum64(), b.Sum64(), "%s: %q", v.name, input)
		}
	}
}

func TestStreamingEquivalence(t *testing.T) {
	inputs := randomInputs(30)

	for i, input := range inputs {
		next := inputs[(i+1)%len(inputs)]
		for _, v := range variants {
			whole := v.new()
			whole.WriteString(input + next)

			split := v.new()
			split.WriteString(input)
			split.Write([]byte(next))

			assert.Equal(t, whole.Sum64(), split.Sum64(), "%s: %q + %q", v.name, input, next)
		}
	}
}

func TestSplitAtEveryOffset(t *testing.T) {
	input := randomdata.Paragraph()

	for _, v := range variants {
		whole := v.new()
		whole.WriteString(input)

		for i := 0; i <= len(input); i++ {
			split := v.new()
			split.WriteString(input[:i])
			split.WriteString(input[i:])
			if !assert.Equal(t, whole.Sum64(), split.Sum64(), "%s split at %d", v.name, i) {
				break
			}
		}
	}
}

func TestAdditiveCollisionSurvivesContext(t *testing.T) {
	for _, affix := range randomInputs(20) {
		ez := affix + "Ez" + strings.ToUpper(affix)
		fy := affix + "FY" + strings.ToUpper(affix)

		for _, v := range variants {
			if strings.HasPrefix(v.name, "X33x") {
				continue
			}
			a := v.new()
			a.WriteString(ez)
			b := v.new()
			b.WriteString(fy)
			assert.Equal(t, a.Sum64(), b.Sum64(), "%s: %q", v.name, affix)
		}
	}
}
