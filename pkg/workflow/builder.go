package workflow

import "fmt"

type edgeGroup struct {
	source    string
	targets   []string
	selector  Selector
	loop      bool // traversals increment the envelope iteration counter
}

// Builder assembles a workflow graph.
type Builder struct {
	name      string
	executors map[string]Executor
	order     []string
	edges     []edgeGroup
	start     string
	maxIter   int
	errs      []error
}

// NewBuilder starts a workflow definition.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		executors: make(map[string]Executor),
		maxIter:   DefaultMaxIterations,
	}
}

// AddExecutor registers a node. Duplicate IDs fail Build.
func (b *Builder) AddExecutor(exec Executor) *Builder {
	id := exec.ID()
	if _, exists := b.executors[id]; exists {
		b.errs = append(b.errs, fmt.Errorf("executor %q registered twice", id))
		return b
	}
	b.executors[id] = exec
	b.order = append(b.order, id)
	return b
}

// SetStart names the executor that receives the workflow input.
func (b *Builder) SetStart(id string) *Builder {
	b.start = id
	return b
}

// AddEdge adds a plain edge: every output of source goes to target.
func (b *Builder) AddEdge(source, target string) *Builder {
	return b.addGroup(source, []string{target}, nil, false)
}

// AddLoopEdge adds a plain edge whose traversal increments the envelope's
// iteration counter. Used for cycle edges (review → replan).
func (b *Builder) AddLoopEdge(source, target string) *Builder {
	return b.addGroup(source, []string{target}, nil, true)
}

// AddSelectionGroup adds a multi-selection edge group: selector picks any
// subset of targets per output envelope.
func (b *Builder) AddSelectionGroup(source string, targets []string, selector Selector) *Builder {
	return b.addGroup(source, targets, selector, false)
}

// WithMaxIterations overrides the superstep bound.
func (b *Builder) WithMaxIterations(n int) *Builder {
	if n > 0 {
		b.maxIter = n
	}
	return b
}

func (b *Builder) addGroup(source string, targets []string, selector Selector, loop bool) *Builder {
	b.edges = append(b.edges, edgeGroup{
		source:   source,
		targets:  targets,
		selector: selector,
		loop:     loop,
	})
	return b
}

// Build validates the graph and returns the runnable workflow. Streaming
// executors are auto-detected here by enumerating the executor set.
func (b *Builder) Build() (*Workflow, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if b.start == "" {
		return nil, fmt.Errorf("workflow %s: start executor not set", b.name)
	}
	if _, ok := b.executors[b.start]; !ok {
		return nil, fmt.Errorf("workflow %s: start executor %q not registered", b.name, b.start)
	}
	for _, group := range b.edges {
		if _, ok := b.executors[group.source]; !ok {
			return nil, fmt.Errorf("workflow %s: edge source %q not registered", b.name, group.source)
		}
		for _, target := range group.targets {
			if _, ok := b.executors[target]; !ok {
				return nil, fmt.Errorf("workflow %s: edge target %q not registered", b.name, target)
			}
		}
	}

	streaming := make(map[string]bool)
	for id, exec := range b.executors {
		s, ok := exec.(ResponseStreamer)
		if !ok || !s.OutputResponse() {
			continue
		}
		if _, ok := exec.(OutputYielder); !ok {
			return nil, fmt.Errorf("workflow %s: streaming executor %q does not declare a final output yield", b.name, id)
		}
		streaming[id] = true
	}

	return &Workflow{
		name:      b.name,
		executors: b.executors,
		edges:     b.edges,
		start:     b.start,
		maxIter:   b.maxIter,
		streaming: streaming,
	}, nil
}
