// Package report renders an analyzer.Result for people and for tools.
package report

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"type-analyzer/analyzer"
	"type-analyzer/internal/common"
	"type-analyzer/member"
	"type-analyzer/options"
)

// NotAnalyzed is printed for categories the result holds nothing for.
const NotAnalyzed = "not analyzed"

// Report is a snapshot of one Result.
type Report struct {
	Type         string           `yaml:"type"`
	Populated    options.Category `yaml:"populated"`
	Constructors Section          `yaml:"constructors"`
	Methods      Section          `yaml:"methods"`
	Properties   Section          `yaml:"properties"`
	Fields       Section          `yaml:"fields"`
}

// Section lists the members of one category.
type Section struct {
	Analyzed bool     `yaml:"analyzed"`
	Count    int      `yaml:"count"`
	Members  []string `yaml:"members,omitempty"`
}

// Build takes a snapshot of r. Categories populated later are not reflected.
func Build(r *analyzer.Result) Report {
	rep := Report{
		Type:      r.ID().String(),
		Populated: r.Populated(),
	}

	if list, ok := r.Constructors(); ok {
		target := common.TypeString(r.Type())
		rep.Constructors = section(list, func(c member.Constructor) string {
			return constructorLine(c, target)
		})
	}
	if list, ok := r.Methods(); ok {
		rep.Methods = section(list, methodLine)
	}
	if list, ok := r.Properties(); ok {
		rep.Properties = section(list, propertyLine)
	}
	if list, ok := r.Fields(); ok {
		rep.Fields = section(list, fieldLine)
	}

	return rep
}

// YAML encodes the report.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteText writes the report as human-readable text.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s ===\n", r.Type)
	for _, s := range []struct {
		name string
		sec  Section
	}{
		{"Constructors", r.Constructors},
		{"Methods", r.Methods},
		{"Properties", r.Properties},
		{"Fields", r.Fields},
	} {
		if !s.sec.Analyzed {
			fmt.Fprintf(&b, "%s: %s\n", s.name, NotAnalyzed)
			continue
		}

		fmt.Fprintf(&b, "%s: %d\n", s.name, s.sec.Count)
		for _, line := range s.sec.Members {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// dumper prints member records without addresses; reflect values and types
// go through their String methods.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a go-spew dump of every populated category of r.
func Dump(w io.Writer, r *analyzer.Result) {
	fmt.Fprintf(w, "%s (%s)\n", r.ID(), r.Populated())
	if list, ok := r.Constructors(); ok {
		dumper.Fdump(w, list.Slice())
	}
	if list, ok := r.Methods(); ok {
		dumper.Fdump(w, list.Slice())
	}
	if list, ok := r.Properties(); ok {
		dumper.Fdump(w, list.Slice())
	}
	if list, ok := r.Fields(); ok {
		dumper.Fdump(w, list.Slice())
	}
}

func section[M analyzer.Member[M]](list *analyzer.Members[M], line func(M) string) Section {
	s := Section{
		Analyzed: true,
		Count:    list.Len(),
		Members:  make([]string, 0, list.Len()),
	}
	for _, m := range list.All() {
		s.Members = append(s.Members, line(m))
	}

	return s
}

func constructorLine(c member.Constructor, target string) string {
	if c.Implicit {
		return c.Name + " (zero value)"
	}

	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(params(c.In, c.Variadic))
	b.WriteString(" ")

	result := target
	if c.ReturnsPointer {
		result = "*" + target
	}
	if c.ReturnsError {
		result = "(" + result + ", error)"
	}
	b.WriteString(result)

	return b.String()
}

func methodLine(m member.Method) string {
	sig := strings.TrimPrefix(m.Signature(), "func")
	return fmt.Sprintf("%s%s [%s]", m.Name, sig, m.Receiver)
}

func propertyLine(p member.Property) string {
	return p.Name + " " + common.TypeString(p.Type)
}

func fieldLine(f member.Field) string {
	line := f.Name + " " + common.TypeString(f.Type)
	if f.Embedded {
		line += " (embedded)"
	}
	if f.HasTag("json") {
		line += " json:" + f.JSONName()
	}

	return line
}

func params(in []reflect.Type, variadic bool) string {
	parts := make([]string, len(in))
	for i, t := range in {
		if variadic && i == len(in)-1 {
			parts[i] = "..." + common.TypeString(t.Elem())
			continue
		}
		parts[i] = common.TypeString(t)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
