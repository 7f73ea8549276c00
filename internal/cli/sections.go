package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/marcodamonte/concepts/binding"
	"github.com/marcodamonte/concepts/conversion"
	"github.com/marcodamonte/concepts/customtypes"
	"github.com/marcodamonte/concepts/functions"
)

// Section is one runnable demo module.
type Section struct {
	Name  string
	Title string
	Run   func(w io.Writer)
}

// Sections lists every demo module in tour order.
var Sections = []Section{
	{Name: "types", Title: "Custom types", Run: customtypes.Run},
	{Name: "binding", Title: "Variable binding", Run: binding.Run},
	{Name: "conversion", Title: "Conversion", Run: conversion.Run},
	{Name: "functions", Title: "Functions", Run: functions.Run},
}

// ErrUnknownSection is returned by Select for a name not in Sections.
var ErrUnknownSection = errors.New("unknown section")

// Select returns the sections named in names, in tour order and without
// duplicates. Blank names are skipped; if nothing is left, every section is
// selected.
func Select(names []string) ([]Section, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if !slices.ContainsFunc(Sections, func(s Section) bool { return s.Name == n }) {
			return nil, fmt.Errorf("%w %q (have: %s)", ErrUnknownSection, n, strings.Join(Names(), ", "))
		}
		want[n] = true
	}
	if len(want) == 0 {
		return Sections, nil
	}
	var out []Section
	for _, s := range Sections {
		if want[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}

// Names returns the section names in tour order.
func Names() []string {
	names := make([]string, len(Sections))
	for i, s := range Sections {
		names[i] = s.Name
	}
	return names
}
