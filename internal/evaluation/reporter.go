package evaluation

import (
	"fmt"
	"io"
	"os"
)

const (
	bold      = "\033[1m"
	underline = "\033[4m"
	reset     = "\033[0m"
)

// Config controls console output
type Config struct {
	Quiet bool
}

// Reporter prints outcomes to Out
type Reporter struct {
	Out    io.Writer
	Config Config
}

// NewReporter creates a reporter writing to stdout
func NewReporter(config Config) *Reporter {
	return &Reporter{Out: os.Stdout, Config: config}
}

// Report prints the confusion block and scores of a supported outcome
// unless quiet. An unsupported outcome always prints its message.
func (r *Reporter) Report(o Outcome) error {
	if !o.Supported {
		_, err := fmt.Fprintf(r.Out, "%s: %s\n", o.Model, o.Message)
		return err
	}
	if r.Config.Quiet {
		return nil
	}

	s := o.Stats
	_, err := fmt.Fprintf(r.Out,
		bold+"Model: %s  Positive: %s"+reset+"\n"+
			underline+"Confusion Matrix"+reset+"\n"+
			"  TP: %d   FP: %d\n"+
			"  FN: %d   TN: %d\n"+
			underline+"Additional Information"+reset+"\n"+
			"      Accuracy: %.3f\n"+
			"     Precision: %.3f\n"+
			"        Recall: %.3f\n"+
			"      F1 score: %.3f\n"+
			"False neg rate: %.3f\n"+
			"False pos rate: %.3f\n"+
			" Support (pos): %d\n"+
			" Support (neg): %d\n\n",
		o.Model, o.Positive,
		s.TP, s.FP,
		s.FN, s.TN,
		s.Accuracy, s.Precision, s.Recall, s.F1, s.FNR, s.FPR,
		s.SupportPos, s.SupportNeg,
	)
	return err
}
