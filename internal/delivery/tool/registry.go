package tool

import (
	"context"
	"errors"
	"fmt"

	"go-claims-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrUnknownTool = errors.New("unknown tool")

// Params carries the keyword arguments of one tool invocation. Values are
// always opaque strings and are bound, never interpolated, into queries.
type Params map[string]string

// Handler executes one catalog operation and returns its rows
type Handler func(ctx context.Context, params Params) (interface{}, error)

// Tool is one named, independently invocable catalog operation
type Tool struct {
	Name        string
	Description string
	// Param names the single required identifier parameter; empty when
	// the tool takes none.
	Param   string
	Handler Handler
}

// Registry holds the fixed tool catalog. Invoke applies the compatibility
// contract at this outermost boundary: storage failures and malformed
// parameters collapse to an empty result, so callers see the same shape
// as "no rows". Inner layers keep their typed errors.
type Registry struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	tools     map[string]Tool
	names     []string
}

func NewRegistry(log *logrus.Logger, customValidator *validator.CustomValidator) *Registry {
	return &Registry{
		log:       log,
		validator: customValidator,
		tools:     make(map[string]Tool),
	}
}

// Register adds a tool to the catalog; names must be unique
func (r *Registry) Register(t Tool) error {
	if t.Name == "" || t.Handler == nil {
		return fmt.Errorf("tool must have a name and a handler")
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.names = append(r.names, t.Name)
	return nil
}

// MustRegister is Register for wiring time, where a duplicate is a
// programming error
func (r *Registry) MustRegister(t Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the named tool
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns tool names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

type identifierParam struct {
	Value string `validate:"required,max=64"`
}

// emptyResult is the collapsed shape of any failed invocation,
// indistinguishable from a query that matched no rows
var emptyResult = []interface{}{}

// Invoke runs the named tool. Only an unknown tool name is reported as an
// error; every other failure is logged and collapsed to an empty result.
func (r *Registry) Invoke(ctx context.Context, name string, params Params) (interface{}, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if t.Param != "" {
		if err := r.validator.Validate(&identifierParam{Value: params[t.Param]}); err != nil {
			r.log.Warnf("Tool %s called with missing or invalid parameter %s", name, t.Param)
			return emptyResult, nil
		}
	}

	result, err := t.Handler(ctx, params)
	if err != nil {
		r.log.Warnf("Tool %s failed: %+v", name, err)
		return emptyResult, nil
	}

	return result, nil
}
