package drawer

import (
	"time"

	"github.com/opflow/go-opflow/pkg/opflow/measure"
	"github.com/opflow/go-opflow/pkg/opflow/model"
)

// Drawer is an interface that defines the methods for drawing a run.
type Drawer interface {
	// AddOp adds an operation to the run drawing.
	AddOp(op *model.OpInfo) error
	// AddLink adds a link between two consecutive operations.
	AddLink(parent, child *model.OpInfo) error
	// SetTotalTime labels op with the time elapsed since startTime.
	SetTotalTime(op *model.OpInfo, startTime time.Time) error
	// AddMeasure adds per-operation durations to the drawing.
	AddMeasure(msr measure.Measure) error
	// Draw renders the drawing.
	Draw() error
}
