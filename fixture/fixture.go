package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrInvalidDocument is returned when a graph document cannot be decoded or validated.
var ErrInvalidDocument = errors.New("fixture: invalid graph document")

// Document is the YAML representation of a search graph.
type Document struct {
	Vertices []VertexDef `yaml:"vertices" validate:"dive"`
	Edges    []EdgeDef   `yaml:"edges" validate:"dive"`
}

// VertexDef declares one labeled vertex.
type VertexDef struct {
	ID    string `yaml:"id" validate:"required"`
	State string `yaml:"state" validate:"state"`
}

// EdgeDef declares one edge. Edges are undirected unless Directed is set.
type EdgeDef struct {
	From     string `yaml:"from" validate:"required"`
	To       string `yaml:"to" validate:"required"`
	Weight   int64  `yaml:"weight" validate:"gte=0"`
	Directed bool   `yaml:"directed"`
}

// docValidate is the validator instance for graph documents.
// Initialized in init() with the custom "state" rule.
var docValidate *validator.Validate

func init() {
	docValidate = validator.New()
	_ = docValidate.RegisterValidation("state", validateState)
}

// validateState accepts any spelling search.ParseState understands.
func validateState(fl validator.FieldLevel) bool {
	_, err := search.ParseState(fl.Field().String())
	return err == nil
}

// RunningExample returns the reference graph: Start=A, Goal=E and undirected
// weighted edges A–B=5, A–F=6, B–D=3, B–C=7, D–F=3, D–G=4, F–G=5, G–E=3.
func RunningExample() *core.Graph[string, search.State, int64] {
	g := search.NewGraph[string]()

	g.AddVertex("A", search.Start)
	g.AddVertex("E", search.Goal)

	// auto-create is on, so these cannot fail
	_ = g.AddUndirectedEdge("A", "B", 5)
	_ = g.AddUndirectedEdge("A", "F", 6)

	_ = g.AddUndirectedEdge("B", "D", 3)
	_ = g.AddUndirectedEdge("B", "C", 7)

	_ = g.AddUndirectedEdge("D", "F", 3)
	_ = g.AddUndirectedEdge("D", "G", 4)

	_ = g.AddUndirectedEdge("F", "G", 5)

	_ = g.AddUndirectedEdge("G", "E", 3)

	return g
}

// Decode reads and validates a Document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&doc)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	default:
		// a graph is one document; anything after "---" would be dropped
		if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: multiple documents", ErrInvalidDocument)
		}
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks doc's struct constraints.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := docValidate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return nil
}

// Build converts a validated Document into a search graph. Vertices are
// inserted in document order, so the first start vertex listed wins.
func Build(doc *Document) (*core.Graph[string, search.State, int64], error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	g := search.NewGraph[string]()
	for _, v := range doc.Vertices {
		s, err := search.ParseState(v.State)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrInvalidDocument, v.ID, err)
		}
		g.AddVertex(v.ID, s)
	}
	for _, e := range doc.Edges {
		var err error
		if e.Directed {
			err = g.AddEdge(e.From, e.To, e.Weight)
		} else {
			err = g.AddUndirectedEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: edge %s→%s: %v", ErrInvalidDocument, e.From, e.To, err)
		}
	}

	return g, nil
}

// Read decodes, validates and builds a graph from r.
func Read(r io.Reader) (*core.Graph[string, search.State, int64], error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return Build(doc)
}

// Load reads a graph document from the file at path.
func Load(path string) (*core.Graph[string, search.State, int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}
