// Package binder defines deferred reference types and the sentinel
// errors of the binding stage.
package binder

import (
	"errors"

	"github.com/meekukin/casekit/paramset"
	"github.com/meekukin/casekit/product"
	"github.com/meekukin/casekit/registry"
)

// ErrBindingCollision indicates two distinct declarations claiming the
// same external-binding identifier under one host scope.
var ErrBindingCollision = errors.New("binder: binding collision")

// Ref is one deferred entry handed to the host execution engine:
// either a LazyRef or a FixtureRef, always fully resolved.
type Ref interface {
	RefID() string
	RefMarks() []paramset.Mark
}

// LazyRef wraps a deferred value. Evaluation happens only when the host
// engine calls Get.
type LazyRef struct {
	*paramset.Lazy
}

// RefID returns the reference identifier.
func (r LazyRef) RefID() string { return r.CaseID() }

// RefMarks returns the forwarded marks.
func (r LazyRef) RefMarks() []paramset.Mark { return r.Marks() }

// FixtureRef points at an external binding registered in a Table. For a
// self-parametrized case it carries the case's axes as annotations; the
// external runner expands them, the binder does not.
type FixtureRef struct {
	ID    string
	Host  string
	Marks []paramset.Mark
	Axes  []product.Dimension
}

// RefID returns the binding identifier.
func (r FixtureRef) RefID() string { return r.ID }

// RefMarks returns the forwarded marks.
func (r FixtureRef) RefMarks() []paramset.Mark { return r.Marks }

// Binding is one registered external producer. Entries live for the
// process; they are looked up or newly inserted, never removed.
type Binding struct {
	ID       string
	Host     string
	Source   string // declaring member name, the registration identity
	Producer registry.Producer
	Axes     []product.Dimension
}
