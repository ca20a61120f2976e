// ==============================================================================================
// FILE: analyser/analyser_unit_test.go
// ==============================================================================================
// PURPOSE: Validates scope and flow rules: duplicate declarations, unknown
//          names, reserved built-ins, closure contexts and return
//          placement.
// ==============================================================================================

package analyser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfreddev/pyru/ast"
	"github.com/justfreddev/pyru/lexer"
	"github.com/justfreddev/pyru/parser"
)

func analyse(t *testing.T, source string) error {
	t.Helper()
	tokens, err := lexer.New(source, lexer.DefaultIndentSize).Run()
	require.NoError(t, err)
	program, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	return New().Run(program)
}

func analyseErr(t *testing.T, source string) *Error {
	t.Helper()
	err := analyse(t, source)
	require.Error(t, err)
	semErr, ok := err.(*Error)
	require.True(t, ok, "expected a semantic error, got %T", err)
	return semErr
}

func TestDuplicateVariables(t *testing.T) {
	err := analyseErr(t, `let a = "value"; let a = "other";`)
	assert.Equal(t, VariableAlreadyAssignedInScope, err.Kind)
	assert.Equal(t, "a", err.Name)

	err = analyseErr(t, "let a = \"1\";\nlet a;")
	assert.Equal(t, VariableAlreadyAssignedInScope, err.Kind)

	// The duplicate check consults the initialised flag: redeclaring over
	// an uninitialised slot passes.
	assert.NoError(t, analyse(t, "let a;\nlet a = 1;"))

	// Shadowing in an inner function scope is fine.
	assert.NoError(t, analyse(t, "let x = 10;\ndef f():\n    let x = 5;\n    print(x);"))
}

func TestDuplicateParameters(t *testing.T) {
	err := analyseErr(t, "def foo(arg, arg):\n    return arg;")
	assert.Equal(t, VariableAlreadyAssignedInScope, err.Kind)
	assert.Equal(t, "arg", err.Name)

	// A local colliding with a parameter is the same failure.
	err = analyseErr(t, "def foo(a):\n    let a;")
	assert.Equal(t, VariableAlreadyAssignedInScope, err.Kind)
}

func TestDuplicateFunctions(t *testing.T) {
	err := analyseErr(t, "def f():\n    return;\ndef f():\n    return;")
	assert.Equal(t, VariableAlreadyAssignedInScope, err.Kind)
	assert.Equal(t, "f", err.Name)
}

func TestUnknownNames(t *testing.T) {
	err := analyseErr(t, "print(notDefined);")
	assert.Equal(t, VariableNotFound, err.Kind)
	assert.Equal(t, "notDefined", err.Name)

	err = analyseErr(t, `unknown = "what";`)
	assert.Equal(t, VariableNotFound, err.Kind)

	err = analyseErr(t, "missing++;")
	assert.Equal(t, VariableNotFound, err.Kind)

	// Branches are analysed whether or not they would run.
	err = analyseErr(t, "if false:\n    print(notDefined);\nprint(\"ok\");")
	assert.Equal(t, VariableNotFound, err.Kind)
}

func TestMutualRecursionRejected(t *testing.T) {
	// isOdd is not yet registered while isEven's body is analysed.
	source := "def isEven(n):\n" +
		"    if n == 0:\n" +
		"        return true;\n" +
		"    return isOdd(n - 1);\n" +
		"def isOdd(n):\n" +
		"    if n == 0:\n" +
		"        return false;\n" +
		"    return isEven(n - 1);\n" +
		"print(isEven(4));"
	err := analyseErr(t, source)
	assert.Equal(t, VariableNotFound, err.Kind)
	assert.Equal(t, "isOdd", err.Name)
}

func TestReservedNames(t *testing.T) {
	assert.NoError(t, analyse(t, `print(hash("abc"));`))
	assert.NoError(t, analyse(t, "print(clock());"))
	assert.NoError(t, analyse(t, "let a = [1];\na.push(2);\nprint(a.len());"))
	assert.NoError(t, analyse(t, "let a = [3, 1];\na.sort();\nprint(a.index(1));"))
}

func TestReturnPlacement(t *testing.T) {
	err := analyseErr(t, `return "at top level";`)
	assert.Equal(t, CannotReturnOutsideFunction, err.Kind)

	assert.NoError(t, analyse(t, "def f():\n    return 1;"))
	assert.NoError(t, analyse(t, "def f():\n    while true:\n        return 1;"))
	assert.NoError(t, analyse(t, "def f():\n    if true:\n        return 1;"))
}

func TestClosures(t *testing.T) {
	// A nested function keeps the Function context, so its returns pass
	// and it can see the enclosing function's locals.
	source := "def makeCounter():\n" +
		"    let i = 0;\n" +
		"    def count():\n" +
		"        i++;\n" +
		"        print(i);\n" +
		"    return count;\n" +
		"let counter = makeCounter();\n" +
		"counter();"
	assert.NoError(t, analyse(t, source))
}

func TestSessionStatePersistsAcrossRuns(t *testing.T) {
	a := New()

	first := mustParse(t, "let x = 1;")
	require.NoError(t, a.Run(first))

	// The second chunk sees the first chunk's registration.
	second := mustParse(t, "print(x);")
	require.NoError(t, a.Run(second))

	third := mustParse(t, "let x = 2;")
	err := a.Run(third)
	require.Error(t, err)
	assert.Equal(t, VariableAlreadyAssignedInScope, err.(*Error).Kind)
}

func mustParse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	tokens, err := lexer.New(source, lexer.DefaultIndentSize).Run()
	require.NoError(t, err)
	program, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	return program
}
