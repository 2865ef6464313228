// Package insight produces Mind Castle's templated reflection and analysis
// text. Nothing here understands language: every output is canned copy
// selected or filled in locally, paced by a daily usage quota.
package insight

import "math/rand/v2"

// reflections are the fixed pool of one-line "insights" offered for any
// thought.
var reflections = []string{
	"This thought reveals your desire for connection and understanding.",
	"Consider how this perspective has evolved over time in your life.",
	"This idea has potential for deeper exploration in your daily practices.",
	"The emotions expressed here connect to your core values.",
	"Try reflecting on this thought when you face similar situations in the future.",
	"This perspective shows growth in how you approach challenges.",
	"Your mind is creating valuable connections between different aspects of your life.",
	"This thought represents an important pattern in your thinking.",
	"Consider journaling more about this topic to reveal deeper insights.",
	"This reflection shows mindfulness and awareness of your inner state.",
}

// RandomReflection returns one reflection chosen uniformly from the pool.
func RandomReflection() string {
	return reflections[rand.IntN(len(reflections))]
}

// Analysis is the fixed-shape pseudo-analytic report offered for
// business-ideas thoughts.
type Analysis struct {
	Summary       string
	Strengths     []string
	Weaknesses    []string
	Opportunities []string
	Suggestions   []string
}

// BusinessAnalysis returns the templated report for a business idea. The
// content is canned; the note's text is not actually analyzed.
func BusinessAnalysis() Analysis {
	return Analysis{
		Summary: "Your business idea shows potential in the current market.",
		Strengths: []string{
			"Innovative approach to solving a common problem",
			"Clear target audience identification",
			"Potential for scalability",
		},
		Weaknesses: []string{
			"May require significant initial investment",
			"Potential regulatory challenges to consider",
			"Competition from established players",
		},
		Opportunities: []string{
			"Growing market demand for this type of solution",
			"Possible partnerships with related services",
			"International expansion possibilities",
		},
		Suggestions: []string{
			"Consider a staged rollout strategy",
			"Explore funding options early",
			"Develop a clear unique selling proposition",
		},
	}
}
