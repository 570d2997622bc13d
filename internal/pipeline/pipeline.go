// Package pipeline assembles the per-request steps that run before a handler:
// the auth gate, theme resolution and the action log.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Pedroxsbai/TODOAPP/internal/auth"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
	"github.com/Pedroxsbai/TODOAPP/internal/theme"

	"github.com/gin-gonic/gin"
)

type Step string

const (
	StepAuth  Step = "auth"
	StepTheme Step = "theme"
	StepLog   Step = "log"
)

// Order is the sequence steps run in. The same order applies to every route.
type Order []Step

// DefaultOrder checks auth first, so a redirected request is never logged.
var DefaultOrder = Order{StepAuth, StepTheme, StepLog}

var (
	ErrUnknownStep   = errors.New("unknown pipeline step")
	ErrDuplicateStep = errors.New("duplicate pipeline step")
	ErrMissingStep   = errors.New("missing pipeline step")
)

// ParseOrder reads a comma separated order such as "auth,theme,log".
// Each step must appear exactly once.
func ParseOrder(s string) (Order, error) {
	seen := map[Step]bool{}
	var order Order
	for _, part := range strings.Split(s, ",") {
		st := Step(strings.ToLower(strings.TrimSpace(part)))
		switch st {
		case StepAuth, StepTheme, StepLog:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStep, part)
		}
		if seen[st] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStep, st)
		}
		seen[st] = true
		order = append(order, st)
	}
	for _, st := range DefaultOrder {
		if !seen[st] {
			return nil, fmt.Errorf("%w: %q", ErrMissingStep, st)
		}
	}
	return order, nil
}

func (o Order) String() string {
	parts := make([]string, len(o))
	for i, st := range o {
		parts[i] = string(st)
	}
	return strings.Join(parts, ",")
}

// Route is the metadata of one entry point. Public routes skip the auth step.
type Route struct {
	Controller string
	Action     string
	Public     bool
}

type ActionLogger interface {
	LogAction(user, component, operation string)
}

type UserNamer interface {
	CurrentName(ctx context.Context, sess *session.Session) (string, bool)
}

type Pipeline struct {
	order   Order
	gate    *auth.Gate
	themes  *theme.Resolver
	actions ActionLogger
	users   UserNamer
}

func New(order Order, gate *auth.Gate, themes *theme.Resolver, actions ActionLogger, users UserNamer) *Pipeline {
	if len(order) == 0 {
		order = DefaultOrder
	}
	return &Pipeline{order: order, gate: gate, themes: themes, actions: actions, users: users}
}

func (p *Pipeline) Order() Order { return p.order }

// Steps lists the steps rt runs, in order.
func (p *Pipeline) Steps(rt Route) []Step {
	steps := make([]Step, 0, len(p.order))
	for _, st := range p.order {
		if st == StepAuth && rt.Public {
			continue
		}
		steps = append(steps, st)
	}
	return steps
}

// Chain returns the handlers for rt: its steps followed by handlers.
func (p *Pipeline) Chain(rt Route, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(p.order)+len(handlers))
	for _, st := range p.Steps(rt) {
		chain = append(chain, p.handler(st, rt))
	}
	return append(chain, handlers...)
}

func (p *Pipeline) handler(st Step, rt Route) gin.HandlerFunc {
	switch st {
	case StepAuth:
		return p.gate.Middleware()
	case StepTheme:
		return p.themes.Middleware()
	case StepLog:
		return p.logAction(rt)
	}
	panic(fmt.Sprintf("pipeline: no handler for step %q", st))
}

func (p *Pipeline) logAction(rt Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, _ := p.users.CurrentName(c.Request.Context(), session.FromContext(c))
		p.actions.LogAction(name, rt.Controller, rt.Action)
		c.Next()
	}
}
