package evaluation

import (
	"fmt"

	"gowrangle/domain/core"
	"gowrangle/domain/frame"

	"gonum.org/v1/gonum/mat"
)

// Stats holds the scores of one binary classifier
type Stats struct {
	TP, FP, FN, TN int

	Accuracy   float64
	Precision  float64
	Recall     float64
	F1         float64
	FNR        float64 // false negative rate, or miss rate
	FPR        float64 // false positive rate
	SupportPos int
	SupportNeg int
}

// Outcome is the result of evaluating one model. When Supported is false
// the labels could not be scored and Message says why; Stats and Matrix
// are zero.
type Outcome struct {
	Model     core.ModelName
	Positive  string
	Labels    []string // negative label first, positive last
	Supported bool
	Message   string
	Matrix    *mat.Dense // rows actual, columns predicted, in Labels order
	Stats     Stats
}

// Evaluate scores predicted against actual for a binary target. Anything
// other than two distinct actual labels gives an unsupported outcome and
// no error.
func Evaluate(actual, predicted []string, positive string, model core.ModelName) (Outcome, error) {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return Outcome{}, fmt.Errorf("%w: %d actual, %d predicted", core.ErrLengthMismatch, len(actual), len(predicted))
	}

	labels, err := binaryLabels(actual, positive)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Model: model, Positive: positive, Labels: labels}
	if len(labels) != 2 {
		out.Message = core.ErrUnsupportedCardinality.Error()
		return out, nil
	}
	out.Supported = true

	out.Matrix = confusionMatrix(actual, predicted, labels)
	tn, fp := int(out.Matrix.At(0, 0)), int(out.Matrix.At(0, 1))
	fn, tp := int(out.Matrix.At(1, 0)), int(out.Matrix.At(1, 1))

	var matches, predPos, hits, actPos int
	for i := range actual {
		if actual[i] == predicted[i] {
			matches++
		}
		if predicted[i] == positive {
			predPos++
			if actual[i] == positive {
				hits++
			}
		}
		if actual[i] == positive {
			actPos++
		}
	}

	s := Stats{TP: tp, FP: fp, FN: fn, TN: tn, SupportPos: tp + fn, SupportNeg: fp + tn}
	s.Accuracy = float64(matches) / float64(len(actual))
	s.Precision = ratio(hits, predPos)
	s.Recall = ratio(hits, actPos)
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	s.FNR = ratio(fn, tp+fn)
	s.FPR = ratio(fp, tn+fp)
	out.Stats = s

	return out, nil
}

// EvaluateFrame scores two columns of a frame, compared by label
func EvaluateFrame(f *frame.Frame, actualColumn, predictedColumn, positive string, model core.ModelName) (Outcome, error) {
	actual, err := labelsOf(f, actualColumn)
	if err != nil {
		return Outcome{}, err
	}
	predicted, err := labelsOf(f, predictedColumn)
	if err != nil {
		return Outcome{}, err
	}
	return Evaluate(actual, predicted, positive, model)
}

func labelsOf(f *frame.Frame, column string) ([]string, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out, nil
}

// binaryLabels returns the distinct actual labels in first-seen order with
// the positive moved last
func binaryLabels(actual []string, positive string) ([]string, error) {
	seen := make(map[string]bool)
	var labels []string
	for _, label := range actual {
		if seen[label] {
			continue
		}
		seen[label] = true
		if label != positive {
			labels = append(labels, label)
		}
	}
	if !seen[positive] {
		return nil, fmt.Errorf("%w: %q", core.ErrPositiveAbsent, positive)
	}
	return append(labels, positive), nil
}

// confusionMatrix counts actual (rows) against predicted (columns).
// Predictions outside labels are not counted.
func confusionMatrix(actual, predicted, labels []string) *mat.Dense {
	pos := make(map[string]int, len(labels))
	for i, label := range labels {
		pos[label] = i
	}

	cm := mat.NewDense(len(labels), len(labels), nil)
	for i := range actual {
		r := pos[actual[i]]
		c, ok := pos[predicted[i]]
		if !ok {
			continue
		}
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
