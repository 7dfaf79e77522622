package schema

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Invariant is a record-wide predicate evaluated after derivation.
// Rule is a CEL expression over the record fields and must evaluate to true
// for the record to be accepted.
type Invariant struct {
	Name    string
	Rule    string
	Message string

	prog cel.Program
}

// compileInvariants builds one CEL environment declaring every record field
// as a dynamic variable and compiles each rule against it.
// Rules are compiled once, evaluation is safe for concurrent use.
func compileInvariants(fieldNames []string, invariants []*Invariant) error {
	if len(invariants) == 0 {
		return nil
	}

	opts := make([]cel.EnvOption, 0, len(fieldNames))
	for _, name := range fieldNames {
		opts = append(opts, cel.Variable(name, cel.DynType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return fmt.Errorf("failed to create CEL environment: %w", err)
	}

	for _, inv := range invariants {
		ast, issues := env.Compile(inv.Rule)
		if issues != nil && issues.Err() != nil {
			return fmt.Errorf("invariant %q: compile error: %w", inv.Name, issues.Err())
		}

		prog, err := env.Program(ast)
		if err != nil {
			return fmt.Errorf("invariant %q: program creation error: %w", inv.Name, err)
		}
		inv.prog = prog
	}

	return nil
}

// eval runs the compiled rule against the record.
// A false result, a non-boolean result or an evaluation error all count
// as a violation.
func (inv *Invariant) eval(rec map[string]any) *Issue {
	out, _, err := inv.prog.Eval(rec)
	if err != nil {
		iss := issuef(inv.Name, CodeInvariant, "%s (%v)", inv.Message, err)
		return &iss
	}

	if held, ok := out.Value().(bool); ok && held {
		return nil
	}

	iss := Issue{Field: inv.Name, Code: CodeInvariant, Message: inv.Message}
	return &iss
}
