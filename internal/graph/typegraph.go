package graph

import (
	"fmt"
	"strings"
)

// Argument is an input argument on a field. Arguments only take scalars.
type Argument struct {
	Name string
	Type string
}

type Field struct {
	Name        string
	Type        string
	Description string
	Args        []Argument
}

type Object struct {
	Name        string
	Description string
	Fields      []Field
}

// TypeGraph is the declared shape of everything a client can query. It is
// rendered to SDL and handed to the GraphQL runtime, which refuses to start
// when a declared field has no resolver method.
type TypeGraph struct {
	Query    string
	Mutation string
	Objects  []Object
}

var builtinScalars = map[string]bool{
	"ID":      true,
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
}

var NotebookObject = Object{
	Name:        "Notebook",
	Description: "A notebook is a collection of paragraphs",
	Fields: []Field{
		{Name: "id", Type: "ID!", Description: "Store assigned identifier"},
		{Name: "name", Type: "String!"},
		{Name: "paragraphs", Type: "[ID!]!", Description: "Paragraph identifiers in notebook order"},
	},
}

var ParagraphObject = Object{
	Name:        "Paragraph",
	Description: "Paragraph is a unit of combined code and result",
	Fields: []Field{
		{Name: "id", Type: "ID!"},
		{Name: "code", Type: "String!", Description: "Source text"},
		{Name: "result", Type: "String!", Description: "Last computed output"},
	},
}

var QueryObject = Object{
	Name: "Query",
	Fields: []Field{
		{Name: "apiVersion", Type: "String!"},
		{Name: "notebooks", Type: "[Notebook!]", Description: "Every notebook in the store, in store order"},
		{Name: "notebook", Type: "Notebook", Args: []Argument{{Name: "id", Type: "ID!"}}},
		{Name: "paragraph", Type: "Paragraph", Args: []Argument{{Name: "id", Type: "ID!"}}},
	},
}

var MutationObject = Object{
	Name: "Mutation",
	Fields: []Field{
		{Name: "createNotebook", Type: "Notebook", Description: "Not implemented yet", Args: []Argument{{Name: "id", Type: "ID!"}}},
	},
}

func DefaultTypeGraph() TypeGraph {
	return TypeGraph{
		Query:    QueryObject.Name,
		Mutation: MutationObject.Name,
		Objects:  []Object{QueryObject, MutationObject, NotebookObject, ParagraphObject},
	}
}

func (g TypeGraph) object(name string) (Object, bool) {
	for _, o := range g.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// Validate checks the graph is self-consistent before it is rendered.
func (g TypeGraph) Validate() error {
	objects := make(map[string]bool, len(g.Objects))
	for _, o := range g.Objects {
		if o.Name == "" {
			return fmt.Errorf("type graph: object without a name")
		}
		if objects[o.Name] || builtinScalars[o.Name] {
			return fmt.Errorf("type graph: duplicate type %q", o.Name)
		}
		objects[o.Name] = true
	}

	if _, ok := g.object(g.Query); !ok {
		return fmt.Errorf("type graph: query root %q is not declared", g.Query)
	}
	if g.Mutation != "" {
		if _, ok := g.object(g.Mutation); !ok {
			return fmt.Errorf("type graph: mutation root %q is not declared", g.Mutation)
		}
	}

	for _, o := range g.Objects {
		if len(o.Fields) == 0 {
			return fmt.Errorf("type graph: %s has no fields", o.Name)
		}
		if strings.Contains(o.Description, `"""`) {
			return fmt.Errorf("type graph: %s description contains a block quote", o.Name)
		}
		fields := make(map[string]bool, len(o.Fields))
		for _, f := range o.Fields {
			if f.Name == "" || fields[f.Name] {
				return fmt.Errorf("type graph: %s has an empty or duplicate field %q", o.Name, f.Name)
			}
			fields[f.Name] = true

			if strings.Contains(f.Description, `"""`) {
				return fmt.Errorf("type graph: %s.%s description contains a block quote", o.Name, f.Name)
			}
			named, err := namedType(f.Type)
			if err != nil {
				return fmt.Errorf("type graph: %s.%s: %w", o.Name, f.Name, err)
			}
			if !builtinScalars[named] && !objects[named] {
				return fmt.Errorf("type graph: %s.%s references unknown type %q", o.Name, f.Name, named)
			}
			for _, a := range f.Args {
				named, err := namedType(a.Type)
				if err != nil {
					return fmt.Errorf("type graph: %s.%s(%s): %w", o.Name, f.Name, a.Name, err)
				}
				if !builtinScalars[named] {
					return fmt.Errorf("type graph: %s.%s(%s) must be a scalar, got %q", o.Name, f.Name, a.Name, named)
				}
			}
		}
	}
	return nil
}

// namedType strips list and non-null wrappers: "[ID!]!" -> "ID".
func namedType(t string) (string, error) {
	inner := strings.TrimSuffix(t, "!")
	depth := 0
	for strings.HasPrefix(inner, "[") {
		if !strings.HasSuffix(inner, "]") {
			return "", fmt.Errorf("malformed type %q", t)
		}
		inner = strings.TrimSuffix(inner[1:len(inner)-1], "!")
		depth++
	}
	if inner == "" || strings.ContainsAny(inner, "[]! ") || depth > 1 {
		return "", fmt.Errorf("malformed type %q", t)
	}
	return inner, nil
}

// SDL renders the graph as GraphQL schema language. Descriptions are emitted
// as block strings, so the schema must be parsed with string descriptions on.
func (g TypeGraph) SDL() string {
	var b strings.Builder

	b.WriteString("schema {\n")
	fmt.Fprintf(&b, "\tquery: %s\n", g.Query)
	if g.Mutation != "" {
		fmt.Fprintf(&b, "\tmutation: %s\n", g.Mutation)
	}
	b.WriteString("}\n")

	for _, o := range g.Objects {
		b.WriteString("\n")
		writeDescription(&b, "", o.Description)
		fmt.Fprintf(&b, "type %s {\n", o.Name)
		for _, f := range o.Fields {
			writeDescription(&b, "\t", f.Description)
			b.WriteString("\t" + f.Name)
			if len(f.Args) > 0 {
				args := make([]string, len(f.Args))
				for i, a := range f.Args {
					args[i] = a.Name + ": " + a.Type
				}
				b.WriteString("(" + strings.Join(args, ", ") + ")")
			}
			b.WriteString(": " + f.Type + "\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeDescription(b *strings.Builder, indent, description string) {
	if description == "" {
		return
	}
	fmt.Fprintf(b, "%s\"\"\"%s\"\"\"\n", indent, description)
}
