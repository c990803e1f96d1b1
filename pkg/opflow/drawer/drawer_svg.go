package drawer

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/opflow/go-opflow/internal/store"
	"github.com/opflow/go-opflow/pkg/opflow/measure"
	"github.com/opflow/go-opflow/pkg/opflow/model"
)

// SVGDrawer is a drawer that renders the run chain as a graphviz file.
type SVGDrawer struct {
	store       store.CustomStore[string, string]
	graph       graph.Graph[string, string]
	byName      map[string][]string
	svgFileName string
}

// NewSVGDrawer creates a new SVG drawer.
func NewSVGDrawer(svgFileName string) *SVGDrawer {
	memStore := store.NewMemoryStore[string, string]()

	return &SVGDrawer{
		svgFileName: svgFileName,
		store:       memStore,
		graph:       graph.NewWithStore[string, string](graph.StringHash, memStore, graph.Directed()),
		byName:      make(map[string][]string),
	}
}

// opKey builds the vertex key for an operation. The index keeps repeated
// variants distinct within one run; virtual operations keep their bare name.
func opKey(op *model.OpInfo) string {
	if op.Index < 0 {
		return op.Name
	}

	return fmt.Sprintf("[%d] %s", op.Index, op.Name)
}

// AddOp adds an operation to the run chain.
func (d *SVGDrawer) AddOp(op *model.OpInfo) error {
	key := opKey(op)

	err := d.graph.AddVertex(key)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", key)
	}

	d.byName[op.Name] = append(d.byName[op.Name], key)

	return nil
}

// AddLink adds a link between two consecutive operations.
func (d *SVGDrawer) AddLink(parent, child *model.OpInfo) error {
	err := d.graph.AddEdge(opKey(parent), opKey(child))
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parent.Name, child.Name)
	}

	return nil
}

// SetTotalTime labels op with the time elapsed since startTime.
func (d *SVGDrawer) SetTotalTime(op *model.OpInfo, startTime time.Time) error {
	d.store.UpdateVertex(opKey(op), setAttribute("xlabel", time.Since(startTime).String()))

	return nil
}

const maxRGB = 240

// AddMeasure labels every operation with its average duration and colours it
// on a red/blue scale, red being the slowest operation of the run.
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	var minValue, maxValue time.Duration

	metrics := msr.AllMetrics()
	for _, metric := range metrics {
		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}
		if minValue == 0 || avg < minValue {
			minValue = avg
		}
		if avg > maxValue {
			maxValue = avg
		}
	}

	if maxValue == 0 {
		return nil
	}

	for name, metric := range metrics {
		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}

		hex, err := heatColor(avg, minValue, maxValue)
		if err != nil {
			return err
		}

		for _, key := range d.byName[name] {
			d.store.UpdateVertex(key,
				setAttribute("xlabel", avg.String()),
				setAttribute("color", hex),
			)
		}
	}

	return nil
}

func heatColor(curr, minValue, maxValue time.Duration) (string, error) {
	fraction := 1.0
	if maxValue > minValue {
		fraction = float64(curr-minValue) / float64(maxValue-minValue)
	}

	red := uint8(maxRGB * fraction)
	blue := uint8(maxRGB - maxRGB*fraction)

	col, err := colors.RGB(red, 0, blue) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return col.ToHEX().String(), nil
}

func setAttribute(key, value string) func(*graph.VertexProperties) {
	return func(p *graph.VertexProperties) {
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes[key] = value
	}
}

// Draw renders the run chain into the configured file.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.svgFileName)
	}
	defer file.Close()

	err = d.dot(file)
	if err != nil {
		return errors.Wrapf(err, "unable to render %s", d.svgFileName)
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict digraph {
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}-> "{{.Target}}" [ weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}}{{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	Statements []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

// dot emits the chain in insertion order: first every vertex, then every
// edge, so the output is deterministic for a given run.
func (d *SVGDrawer) dot(wrt io.Writer) error {
	desc := description{Statements: make([]statement, 0)}

	for _, key := range d.store.OrderedVertices() {
		_, properties, err := d.store.Vertex(key)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		attrs := make(map[string]string, len(properties.Attributes))
		for k, v := range properties.Attributes {
			attrs[k] = v
		}

		htmlAttributes := make(map[string]string)
		if xlabel, ok := attrs["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, key, xlabel)
			delete(attrs, "xlabel")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           key,
			SourceWeight:     properties.Weight,
			SourceAttributes: attrs,
			HTMLAttributes:   htmlAttributes,
		})
	}

	edges, err := d.store.ListEdges()
	if err != nil {
		return errors.Wrap(err, "unable to list edges")
	}

	for _, edge := range edges {
		desc.Statements = append(desc.Statements, statement{
			Source:     edge.Source,
			Target:     edge.Target,
			EdgeWeight: edge.Properties.Weight,
		})
	}

	return renderDOT(wrt, desc)
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
