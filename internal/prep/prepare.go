package prep

import (
	"fmt"

	"gowrangle/domain/frame"
	"gowrangle/internal"
	"gowrangle/internal/split"
)

// Preparer cleans a raw frame with a recipe and splits the result
type Preparer struct {
	splitter *split.Splitter
	logger   *internal.Logger
}

// New creates a preparer that splits with the given splitter
func New(splitter *split.Splitter, logger *internal.Logger) *Preparer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Preparer{splitter: splitter, logger: logger}
}

// Prepare cleans f and returns its train, test and validate subsets
func (p *Preparer) Prepare(f *frame.Frame, recipe Recipe) (*split.Result, error) {
	cleaned, err := Clean(f, recipe)
	if err != nil {
		return nil, err
	}
	p.logger.Info("[prep] %s: %d of %d rows kept, %d columns", recipe.Name, cleaned.Len(), f.Len(), len(cleaned.Columns()))

	return p.splitter.Split(cleaned, recipe.Target)
}

// Clean applies the recipe without splitting. The input frame is not modified.
func Clean(f *frame.Frame, recipe Recipe) (*frame.Frame, error) {
	if err := f.RequireColumns(recipe.RequiredColumns()...); err != nil {
		return nil, fmt.Errorf("%s recipe: %w", recipe.Name, err)
	}

	// 1. blank numeric-as-text rows out, remaining cells to float
	numeric, err := f.Column(recipe.NumericText)
	if err != nil {
		return nil, err
	}
	out := f.Filter(func(row int) bool { return !numeric[row].IsBlank() })
	if out, err = out.ToNumeric(recipe.NumericText); err != nil {
		return nil, fmt.Errorf("%s recipe: %w", recipe.Name, err)
	}

	// 2. identifier and administrative columns
	if out, err = out.DropColumns(recipe.DropColumns...); err != nil {
		return nil, err
	}

	// 3. Yes/No to 1/0 under derived names
	for _, b := range recipe.BinaryColumns {
		values, err := out.MapValues(b.Source, YesNo)
		if err != nil {
			return nil, err
		}
		if out, err = out.WithColumn(b.Derived, values); err != nil {
			return nil, err
		}
	}

	// 4. dummies with the first category dropped, appended after everything else
	dummies, err := out.OneHot(recipe.EncodeColumns, true)
	if err != nil {
		return nil, err
	}
	return out.Concat(dummies)
}
