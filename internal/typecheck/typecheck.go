// SPDX-License-Identifier: MIT

// Package typecheck loads a package with one extra source file overlaid on
// disk and reports the type errors the extra file produces.
//
// Tests use it to assert that misuse of matrix shapes or unit categories is
// rejected by the compiler: the offending snippet is overlaid, never written.
package typecheck

import (
	"errors"
	"fmt"
	"go/types"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

var (
	// ErrNoPackage is returned when the directory does not hold a Go package.
	ErrNoPackage = errors.New("typecheck: no package found")

	// ErrNoInterface is returned when the named interface is not declared in
	// the package.
	ErrNoInterface = errors.New("typecheck: interface not found")
)

const loadMode = packages.NeedName |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Errors type-checks the package in dir together with an overlaid file called
// name holding src. It returns the message of every error reported for the
// package; an empty result means src compiled.
//
// name must not end in _test.go and src must declare the package's own name.
func Errors(dir, name, src string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("typecheck: %w", err)
	}

	cfg := &packages.Config{
		Mode:    loadMode,
		Dir:     abs,
		Overlay: map[string][]byte{filepath.Join(abs, name): []byte(src)},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("typecheck: load %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, ErrNoPackage
	}

	var msgs []string
	for _, p := range pkgs {
		for _, e := range p.Errors {
			msgs = append(msgs, e.Msg)
		}
	}

	return msgs, nil
}

// Implementers loads the package in dir and returns every package-level type
// name whose type implements the package's interface iface. Aliases of
// instantiated generic types are resolved; generic types themselves are
// skipped. Names are written without package qualifiers, for instance
// "VelocityUnit[Kilometer, Hour]", with aliases in type arguments resolved,
// sorted and without duplicates.
func Implementers(dir, iface string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("typecheck: %w", err)
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes, Dir: abs}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("typecheck: load %s: %w", dir, err)
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		return nil, ErrNoPackage
	}

	scope := pkgs[0].Types.Scope()
	obj, ok := scope.Lookup(iface).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoInterface, iface)
	}
	want, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an interface", ErrNoInterface, iface)
	}

	seen := map[string]bool{}
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		typ := types.Unalias(tn.Type())
		if _, isIface := typ.Underlying().(*types.Interface); isIface {
			continue
		}
		if named, ok := typ.(*types.Named); ok && named.TypeParams().Len() > named.TypeArgs().Len() {
			continue
		}
		if types.Implements(typ, want) {
			seen[typeString(typ)] = true
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out, nil
}

// typeString writes t without package qualifiers, resolving aliases in type
// arguments too, so an instantiation prints the same however it was spelled.
func typeString(t types.Type) string {
	t = types.Unalias(t)
	named, ok := t.(*types.Named)
	if !ok {
		return types.TypeString(t, func(*types.Package) string { return "" })
	}

	args := named.TypeArgs()
	if args.Len() == 0 {
		return named.Obj().Name()
	}
	parts := make([]string, args.Len())
	for i := range parts {
		parts[i] = typeString(args.At(i))
	}

	return named.Obj().Name() + "[" + strings.Join(parts, ", ") + "]"
}

// SkipUnlessToolchain skips t in -short mode or when no go binary is on PATH,
// since packages.Load shells out to go list.
func SkipUnlessToolchain(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("type-check tests load packages; skipped in -short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not found on PATH")
	}
}
