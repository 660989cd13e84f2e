package merchant

import (
	"math"
	"regexp"
	"strings"

	"github.com/jbrukh/bayesian"

	"github.com/subscope-dev/subscope/internal/catalog"
	"github.com/subscope-dev/subscope/internal/model"
)

// CategoryGuesser attaches a best-guess category to last-resort fallback
// resolutions, trained on the catalog's vendor names. It only exists so
// downstream ranking defaults have something to work with; its guesses never
// outrank pattern or classifier output.
type CategoryGuesser struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// guessThreshold is the minimum softmax confidence before a guess is used.
const guessThreshold = 0.5

var guesserCategories = []string{
	model.CategoryEntertainment,
	model.CategoryGaming,
	model.CategoryNews,
	model.CategoryProductivity,
	model.CategoryHealth,
	model.CategoryEducation,
	model.CategoryUtilities,
	model.CategoryInsurance,
	model.CategoryShopping,
	model.CategoryFood,
	model.CategoryTravel,
	model.CategoryFinance,
}

// NewCategoryGuesser trains a naive-Bayes guesser from the pattern catalog.
func NewCategoryGuesser() *CategoryGuesser {
	classes := make([]bayesian.Class, len(guesserCategories))
	for i, c := range guesserCategories {
		classes[i] = bayesian.Class(c)
	}
	cl := bayesian.NewClassifier(classes...)

	for _, p := range catalog.Entries() {
		if p.Category == "" {
			continue
		}
		words := guessTokens(p.Match + " " + p.DisplayName)
		if len(words) == 0 {
			continue
		}
		cl.Learn(words, bayesian.Class(p.Category))
	}

	return &CategoryGuesser{classifier: cl, classes: classes}
}

// Guess returns a category for a description, or "" when the model is not
// confident enough to be useful.
func (g *CategoryGuesser) Guess(description string) (string, float64) {
	words := guessTokens(description)
	if len(words) == 0 {
		return "", 0
	}

	scores, _, _ := g.classifier.LogScores(words)
	if len(scores) == 0 {
		return "", 0
	}

	// Softmax-normalize the log scores into a confidence.
	maxScore := scores[0]
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	var sumExp float64
	expScores := make([]float64, len(scores))
	for i, s := range scores {
		expScores[i] = math.Exp(s - maxScore)
		sumExp += expScores[i]
	}

	best, bestConf := 0, 0.0
	for i, e := range expScores {
		conf := e / sumExp
		if conf > bestConf {
			best, bestConf = i, conf
		}
	}
	if bestConf < guessThreshold {
		return "", bestConf
	}
	return string(g.classes[best]), bestConf
}

var guessWordRe = regexp.MustCompile(`[A-Z]{2,}`)

func guessTokens(s string) []string {
	matches := guessWordRe.FindAllString(strings.ToUpper(s), -1)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		words = append(words, strings.ToLower(m))
	}
	return words
}
