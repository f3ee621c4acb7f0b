package checks

import (
	"context"
	"iter"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/datasource"
)

// WindowArgs selects a window owned by the target process.
type WindowArgs struct {
	// ClassName must equal the window class name.
	ClassName string `json:"className,omitempty"`
	// ClassNamePart must be contained in the window class name.
	ClassNamePart string `json:"classNamePart,omitempty"`
	// TextPart must be contained in the window text.
	TextPart string `json:"textPart,omitempty"`
}

func (a WindowArgs) Description() string {
	return describe("className", a.ClassName, "classNamePart", a.ClassNamePart, "textPart", a.TextPart)
}

func (a WindowArgs) Validate() error {
	if a.ClassName == "" && a.ClassNamePart == "" && a.TextPart == "" {
		return errNoPredicate
	}
	return nil
}

func (a WindowArgs) matches(w datasource.WindowRecord) bool {
	return optionalEqual(w.ClassName, a.ClassName) &&
		optionalContains(w.ClassName, a.ClassNamePart) &&
		optionalContains(w.Text, a.TextPart)
}

// WindowCheck is the active-window check kind.
type WindowCheck = check.Definition[WindowArgs, datasource.WindowRecord]

var activeWindow = &check.Registration[WindowArgs, datasource.WindowRecord]{
	Name:        "Find active window",
	Description: "Search the process windows for %s",
	DataSources: []datasource.ID{datasource.Process},
	Evaluate: func(ctx context.Context, args WindowArgs, set *datasource.Set, out *check.Outcome[WindowArgs, datasource.WindowRecord]) {
		sources := datasource.Lookup[datasource.WindowSource](set, datasource.Process)
		rec, ok := check.FirstAcross(ctx, sources,
			func(s datasource.WindowSource) iter.Seq[datasource.WindowRecord] { return s.Windows(ctx) },
			args.matches,
		)
		if ok {
			out.Pass(rec)
		}
	},
}

// ActiveWindow checks that the process owns a window matching args.
func ActiveWindow(args WindowArgs) *WindowCheck {
	return check.New(activeWindow, args)
}
