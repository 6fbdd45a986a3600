// Package scorer produces a single desirability score for a candidate's
// feature vector. A scorer is either a trained model exported to an
// expression file, or the built-in heuristic fallback.
package scorer

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/maja42/goval"
)

// Features is the fixed vector the models were trained on. Callers
// substitute 0 for missing dividend yield and market cap before scoring.
type Features struct {
	PeRatio       float64
	DividendYield float64
	MarketCap     float64
	Sentiment     float64
}

type Scorer interface {
	Name() string
	Predict(f Features) (float64, error)
}

// HeuristicScorer is the ad-hoc linear formula used when no trained model
// is configured. It is a fallback, not a calibrated model.
type HeuristicScorer struct{}

func (s HeuristicScorer) Name() string {
	return "heuristic"
}

func (s HeuristicScorer) Predict(f Features) (float64, error) {
	if f.PeRatio == 0 {
		return 0, fmt.Errorf("cannot score candidate with zero P/E")
	}
	return 0.05*(1/f.PeRatio) + 0.1*f.DividendYield + f.Sentiment, nil
}

type modelFile struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

// ExpressionScorer evaluates a trained model exported as a goval
// expression over the feature variables. The training pipeline writes
// these files; this package only consumes them.
type ExpressionScorer struct {
	name       string
	expression string
}

// LoadModel reads a model file. Absence is a valid state - callers treat
// a load failure as "no model" and fall back to the heuristic.
func LoadModel(path string) (*ExpressionScorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model file %s: %w", path, err)
	}

	mf := modelFile{}
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("could not parse model file %s: %w", path, err)
	}
	if mf.Expression == "" {
		return nil, fmt.Errorf("model file %s has no expression", path)
	}
	if mf.Name == "" {
		mf.Name = path
	}

	return &ExpressionScorer{
		name:       mf.Name,
		expression: mf.Expression,
	}, nil
}

func (s *ExpressionScorer) Name() string {
	return s.name
}

func (s *ExpressionScorer) Predict(f Features) (float64, error) {
	eval := goval.NewEvaluator()
	variables := map[string]interface{}{
		"peRatio":       f.PeRatio,
		"dividendYield": f.DividendYield,
		"marketCap":     f.MarketCap,
		"sentiment":     f.Sentiment,
	}
	functions := map[string]goval.ExpressionFunction{
		"ln": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("ln needs 1 arg, got %d", len(args))
			}
			return math.Log(toFloat(args[0])), nil
		},
		"sqrt": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("sqrt needs 1 arg, got %d", len(args))
			}
			return math.Sqrt(toFloat(args[0])), nil
		},
	}

	result, err := eval.Evaluate(s.expression, variables, functions)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate model %s: %w", s.name, err)
	}

	r := toFloat(result)
	if math.IsNaN(r) {
		return 0, fmt.Errorf("model %s produced NaN", s.name)
	} else if math.IsInf(r, 0) {
		return 0, fmt.Errorf("model %s produced infinity", s.name)
	}

	return r, nil
}

func toFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	}
	return math.NaN()
}

// Set holds the configured scorers. When both trained models are present
// the refined one is authoritative for ranking; the primary is still run
// and reported for transparency. The heuristic always exists, so scoring
// never aborts for lack of a model file.
type Set struct {
	Primary Scorer
	Refined Scorer
}

func (s Set) Authoritative() Scorer {
	if s.Refined != nil {
		return s.Refined
	}
	if s.Primary != nil {
		return s.Primary
	}
	return HeuristicScorer{}
}

// All returns every configured scorer, authoritative last.
func (s Set) All() []Scorer {
	out := []Scorer{}
	if s.Primary != nil {
		out = append(out, s.Primary)
	}
	if s.Refined != nil {
		out = append(out, s.Refined)
	}
	if len(out) == 0 {
		out = append(out, HeuristicScorer{})
	}
	return out
}
