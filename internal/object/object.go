// Package object defines gjuha's runtime values and the lexically scoped
// Environment they are bound in. Function values live here too, rather
// than in a package of their own, because a Function embeds an
// *Environment (its closure) and an Environment stores Objects — splitting
// them would create an import cycle for no benefit at gjuha's size.
package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gjuha-lang/gjuha/internal/ast"
)

// ObjectType is the runtime type tag every Object reports; it is what
// appears in gjuha's Albanian-language error messages.
type ObjectType string

const (
	INTEGER_OBJ      ObjectType = "INTEGJER"
	BOOLEAN_OBJ      ObjectType = "BOOLEAN"
	NULL_OBJ         ObjectType = "NULL"
	RETURN_VALUE_OBJ ObjectType = "VLERAKTHIMIT"
	ERROR_OBJ        ObjectType = "ERROR"
	FUNCTION_OBJ     ObjectType = "FUNKSION"
)

// Object is the interface every gjuha runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Boolean is `vertet`/`falso`.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Null is the unit value, produced by e.g. an if-expression with no taken
// branch.
type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// ReturnValue transiently wraps the value a `kthen` statement produced, so
// that block evaluation can tell a returning value apart from an ordinary
// one and propagate it, unopened, up to the enclosing function or program.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error carries a runtime fault as an ordinary first-class value. Errors
// are never raised as Go panics or returned as Go errors — every evaluator
// rule that combines sub-results must check each one for error-ness before
// using it (see eval.isError).
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "GABIM: " + e.Message }

// Function is a first-class function value: its parameter list and body
// are shared (not copied) from the AST, and Env is the environment in
// which the function literal was evaluated — capturing it is what gives
// gjuha closures.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("funksion(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
