// Command propgen generates the typed node property surface from the
// property schema.
//
// Usage (from pkg/node):
//
//	go run ./internal/propgen -schema schema.yaml -out .
//
// It writes three files: enums_gen.go (closed enumerations with String,
// Parse and text marshaling), properties_gen.go (PropertyID constants and
// the schema table) and accessors_gen.go (typed getters on *Node and
// setters on *Builder).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type schema struct {
	Enums      []enumDef     `yaml:"enums"`
	Properties []propertyDef `yaml:"properties"`
}

type enumDef struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	Values []string `yaml:"values"`
}

type propertyDef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Enum string `yaml:"enum"`
	Push string `yaml:"push"`
}

// kindInfo maps a schema kind to its PropertyKind constant and Go type.
type kindInfo struct {
	Const  string
	GoType string
}

var kinds = map[string]kindInfo{
	"flag":           {Const: "KindFlag", GoType: "bool"},
	"node_ids":       {Const: "KindNodeIDList", GoType: "types.NodeID"},
	"node_id":        {Const: "KindNodeID", GoType: "types.NodeID"},
	"string":         {Const: "KindString", GoType: "string"},
	"float":          {Const: "KindFloat", GoType: "float64"},
	"int":            {Const: "KindInt", GoType: "int"},
	"color":          {Const: "KindColor", GoType: "uint32"},
	"enum":           {Const: "KindEnum"},
	"lengths":        {Const: "KindLengths", GoType: "uint8"},
	"coords":         {Const: "KindCoords", GoType: "float32"},
	"affine":         {Const: "KindAffine", GoType: "geom.Affine"},
	"rect":           {Const: "KindRect", GoType: "geom.Rect"},
	"text_selection": {Const: "KindTextSelection", GoType: "TextSelection"},
	"custom_actions": {Const: "KindCustomActions", GoType: "CustomAction"},
}

var initialisms = map[string]string{
	"css":  "CSS",
	"html": "HTML",
	"id":   "ID",
	"url":  "URL",
}

const header = "// Code generated by propgen from schema.yaml. DO NOT EDIT.\n\npackage node\n"

func main() {
	schemaPath := flag.String("schema", "schema.yaml", "path to the property schema")
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	if err := run(*schemaPath, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "propgen:", err)
		os.Exit(1)
	}
}

func run(schemaPath, outDir string) error {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	var s schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("parse %s: %w", schemaPath, err)
	}
	if err := s.validate(); err != nil {
		return err
	}

	files := map[string][]byte{
		"enums_gen.go":      genEnums(&s),
		"properties_gen.go": genProperties(&s),
		"accessors_gen.go":  genAccessors(&s),
	}
	for name, src := range files {
		formatted, err := format.Source(src)
		if err != nil {
			return fmt.Errorf("format %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, name), formatted, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (s *schema) validate() error {
	enums := make(map[string]bool, len(s.Enums))
	for _, e := range s.Enums {
		if len(e.Values) == 0 || len(e.Values) > 256 {
			return fmt.Errorf("enum %s: need 1..256 values, got %d", e.Name, len(e.Values))
		}
		enums[e.Name] = true
	}

	seenNonFlag := false
	names := make(map[string]bool, len(s.Properties))
	for _, p := range s.Properties {
		if names[p.Name] {
			return fmt.Errorf("property %s: duplicate name", p.Name)
		}
		names[p.Name] = true

		if _, ok := kinds[p.Kind]; !ok {
			return fmt.Errorf("property %s: unknown kind %q", p.Name, p.Kind)
		}
		if p.Kind == "enum" && !enums[p.Enum] {
			return fmt.Errorf("property %s: unknown enum %q", p.Name, p.Enum)
		}
		// Flag ids double as bit positions, so they must be contiguous from 1.
		if p.Kind == "flag" && seenNonFlag {
			return fmt.Errorf("property %s: flags must precede all other kinds", p.Name)
		}
		if p.Kind != "flag" {
			seenNonFlag = true
		}
	}
	if n := s.flagCount(); n > 64 {
		return fmt.Errorf("%d flags do not fit in a 64-bit set", n)
	}
	return nil
}

func (s *schema) flagCount() int {
	n := 0
	for _, p := range s.Properties {
		if p.Kind == "flag" {
			n++
		}
	}
	return n
}

// -----------------------------------------------------------------------------
// enums_gen.go
// -----------------------------------------------------------------------------

func genEnums(s *schema) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("\nimport \"strconv\"\n")

	for _, e := range s.Enums {
		names := lowerFirst(e.Name) + "Names"

		fmt.Fprintf(&b, "\n// %s\ntype %s uint8\n\nconst (\n", e.Doc, e.Name)
		for i, v := range e.Values {
			if i == 0 {
				fmt.Fprintf(&b, "\t%s%s %s = iota\n", e.Name, v, e.Name)
			} else {
				fmt.Fprintf(&b, "\t%s%s\n", e.Name, v)
			}
		}
		b.WriteString(")\n")

		fmt.Fprintf(&b, "\nvar %s = [...]string{\n", names)
		for _, v := range e.Values {
			fmt.Fprintf(&b, "\t%q,\n", v)
		}
		b.WriteString("}\n")

		fmt.Fprintf(&b, "\n// String returns the name of v.\nfunc (v %s) String() string {\n", e.Name)
		fmt.Fprintf(&b, "\tif int(v) < len(%s) {\n\t\treturn %s[v]\n\t}\n", names, names)
		fmt.Fprintf(&b, "\treturn \"%s(\" + strconv.Itoa(int(v)) + \")\"\n}\n", e.Name)

		fmt.Fprintf(&b, "\n// IsValid reports whether v is a defined %s.\n", e.Name)
		fmt.Fprintf(&b, "func (v %s) IsValid() bool { return int(v) < len(%s) }\n", e.Name, names)

		fmt.Fprintf(&b, "\n// Parse%s returns the %s with the given name. Matching ignores case,\n", e.Name, e.Name)
		b.WriteString("// underscores and hyphens.\n")
		fmt.Fprintf(&b, "func Parse%s(s string) (%s, error) {\n", e.Name, e.Name)
		fmt.Fprintf(&b, "\ti, ok := lookupName(%s[:], s)\n", names)
		fmt.Fprintf(&b, "\tif !ok {\n\t\treturn 0, unknownName(%q, s)\n\t}\n", e.Name)
		fmt.Fprintf(&b, "\treturn %s(i), nil\n}\n", e.Name)

		b.WriteString("\n// MarshalText implements encoding.TextMarshaler.\n")
		fmt.Fprintf(&b, "func (v %s) MarshalText() ([]byte, error) { return []byte(v.String()), nil }\n", e.Name)

		b.WriteString("\n// UnmarshalText implements encoding.TextUnmarshaler.\n")
		fmt.Fprintf(&b, "func (v *%s) UnmarshalText(text []byte) error {\n", e.Name)
		fmt.Fprintf(&b, "\tp, err := Parse%s(string(text))\n", e.Name)
		b.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n\t*v = p\n\treturn nil\n}\n")
	}
	return b.Bytes()
}

// -----------------------------------------------------------------------------
// properties_gen.go
// -----------------------------------------------------------------------------

func genProperties(s *schema) []byte {
	var b bytes.Buffer
	b.WriteString(header)

	b.WriteString("\n// Property identifiers, in schema order. Flags come first.\nconst (\n")
	for i, p := range s.Properties {
		if i == 0 {
			fmt.Fprintf(&b, "\tProp%s PropertyID = iota + 1\n", goName(p.Name))
		} else {
			fmt.Fprintf(&b, "\tProp%s\n", goName(p.Name))
		}
	}
	b.WriteString(")\n")

	fmt.Fprintf(&b, "\nconst propertyCount = %d\n", len(s.Properties))
	fmt.Fprintf(&b, "\nconst flagCount = %d\n", s.flagCount())

	b.WriteString("\nvar properties = [propertyCount + 1]PropertyInfo{\n\t{},\n")
	for _, p := range s.Properties {
		fmt.Fprintf(&b, "\t{Prop%s, %q, %s, %q},\n", goName(p.Name), p.Name, kinds[p.Kind].Const, p.Enum)
	}
	b.WriteString("}\n")

	b.WriteString("\n// relationProperties lists every id-valued property except children.\n")
	b.WriteString("var relationProperties = []PropertyID{\n")
	for _, p := range s.Properties {
		if (p.Kind == "node_ids" || p.Kind == "node_id") && p.Name != "children" {
			fmt.Fprintf(&b, "\tProp%s,\n", goName(p.Name))
		}
	}
	b.WriteString("}\n")

	groups := enumGroups(s)

	b.WriteString("\nfunc enumValue(id PropertyID, raw uint8) any {\n\tswitch id {\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\tcase %s:\n\t\treturn %s(raw)\n", g.cases(), g.enum)
	}
	b.WriteString("\t}\n\treturn nil\n}\n")

	b.WriteString("\nfunc enumRaw(id PropertyID, v any) (uint8, bool) {\n\tswitch id {\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\tcase %s:\n\t\tx, ok := v.(%s)\n\t\treturn uint8(x), ok\n", g.cases(), g.enum)
	}
	b.WriteString("\t}\n\treturn 0, false\n}\n")

	b.WriteString("\nfunc parseEnum(id PropertyID, s string) (any, error) {\n\tswitch id {\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\tcase %s:\n\t\treturn Parse%s(s)\n", g.cases(), g.enum)
	}
	b.WriteString("\t}\n\treturn nil, notEnum(id)\n}\n")

	return b.Bytes()
}

type enumGroup struct {
	enum  string
	props []string
}

func (g enumGroup) cases() string {
	ids := make([]string, len(g.props))
	for i, p := range g.props {
		ids[i] = "Prop" + goName(p)
	}
	return strings.Join(ids, ", ")
}

// enumGroups groups enum-valued properties by enum type, in order of first
// appearance.
func enumGroups(s *schema) []enumGroup {
	var groups []enumGroup
	index := map[string]int{}
	for _, p := range s.Properties {
		if p.Kind != "enum" {
			continue
		}
		i, ok := index[p.Enum]
		if !ok {
			i = len(groups)
			index[p.Enum] = i
			groups = append(groups, enumGroup{enum: p.Enum})
		}
		groups[i].props = append(groups[i].props, p.Name)
	}
	return groups
}

// -----------------------------------------------------------------------------
// accessors_gen.go
// -----------------------------------------------------------------------------

func genAccessors(s *schema) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("\nimport (\n\t\"github.com/joshuapare/axtree/pkg/geom\"\n\t\"github.com/joshuapare/axtree/pkg/types\"\n)\n")

	for _, p := range s.Properties {
		x := goName(p.Name)
		id := "Prop" + x
		human := strings.ReplaceAll(p.Name, "_", " ")
		k := kinds[p.Kind]

		switch p.Kind {
		case "flag":
			fmt.Fprintf(&b, "\n// %s reports the %s flag. ok is false when the flag is unset.\n", x, human)
			fmt.Fprintf(&b, "func (n *Node) %s() (value, ok bool) { return n.flag(%s) }\n", x, id)
			fmt.Fprintf(&b, "\n// Is%s reports whether the %s flag is set to true.\n", x, human)
			fmt.Fprintf(&b, "func (n *Node) Is%s() bool {\n\tv, _ := n.flag(%s)\n\treturn v\n}\n", x, id)
			fmt.Fprintf(&b, "\n// Set%s sets the %s flag.\n", x, human)
			fmt.Fprintf(&b, "func (b *Builder) Set%s(value bool) *Builder {\n\tb.setFlag(%s, value)\n\treturn b\n}\n", x, id)

		case "node_ids", "lengths", "coords", "custom_actions":
			fmt.Fprintf(&b, "\n// %s returns a copy of the %s list, or nil when unset.\n", x, human)
			fmt.Fprintf(&b, "func (n *Node) %s() []%s { return sliceOf[%s](n, %s) }\n", x, k.GoType, k.GoType, id)
			fmt.Fprintf(&b, "\n// Set%s replaces the %s list.\n", x, human)
			fmt.Fprintf(&b, "func (b *Builder) Set%s(values []%s) *Builder {\n\tb.put(%s, values)\n\treturn b\n}\n", x, k.GoType, id)
			if p.Push != "" {
				fmt.Fprintf(&b, "\n// %s appends one entry to the %s list.\n", p.Push, human)
				fmt.Fprintf(&b, "func (b *Builder) %s(value %s) *Builder {\n\tpush(b, %s, value)\n\treturn b\n}\n", p.Push, k.GoType, id)
			}

		case "enum":
			fmt.Fprintf(&b, "\n// %s returns the %s property.\n", x, human)
			fmt.Fprintf(&b, "func (n *Node) %s() (%s, bool) {\n\tv, ok := scalar[uint8](n, %s)\n\treturn %s(v), ok\n}\n", x, p.Enum, id, p.Enum)
			fmt.Fprintf(&b, "\n// Set%s sets the %s property.\n", x, human)
			fmt.Fprintf(&b, "func (b *Builder) Set%s(value %s) *Builder {\n\tb.put(%s, uint8(value))\n\treturn b\n}\n", x, p.Enum, id)

		default:
			fmt.Fprintf(&b, "\n// %s returns the %s property.\n", x, human)
			fmt.Fprintf(&b, "func (n *Node) %s() (%s, bool) { return scalar[%s](n, %s) }\n", x, k.GoType, k.GoType, id)
			fmt.Fprintf(&b, "\n// Set%s sets the %s property.\n", x, human)
			fmt.Fprintf(&b, "func (b *Builder) Set%s(value %s) *Builder {\n\tb.put(%s, value)\n\treturn b\n}\n", x, k.GoType, id)
		}

		fmt.Fprintf(&b, "\n// Clear%s unsets the %s property.\n", x, human)
		fmt.Fprintf(&b, "func (b *Builder) Clear%s() *Builder {\n\tb.clear(%s)\n\treturn b\n}\n", x, id)
	}
	return b.Bytes()
}

// -----------------------------------------------------------------------------
// Naming
// -----------------------------------------------------------------------------

func goName(snake string) string {
	parts := strings.Split(snake, "_")
	for i, p := range parts {
		if up, ok := initialisms[p]; ok {
			parts[i] = up
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}
