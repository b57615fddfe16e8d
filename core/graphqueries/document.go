// Package graphqueries builds the GraphQL documents sent by the read client.
//
// Documents are assembled from Selection trees rather than string templates,
// so string arguments are always written as escaped GraphQL string literals
// while enum arguments are written bare.
package graphqueries

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/golang-sql/civil"
)

// Arg is a rendered `name: value` argument.
type Arg struct {
	Name  string
	Value string
}

func (a Arg) String() string {
	return a.Name + ": " + a.Value
}

// String is a quoted string argument.
func String(name, value string) Arg {
	return Arg{Name: name, Value: quote(value)}
}

// Enum is a bare enum argument.
func Enum[T ~string](name string, value T) Arg {
	return Arg{Name: name, Value: string(value)}
}

// EnumList is a list of bare enum values, e.g. `[APPROVED, RESOLVED]`.
func EnumList[T ~string](name string, values []T) Arg {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = string(v)
	}
	return Arg{Name: name, Value: "[" + strings.Join(items, ", ") + "]"}
}

func Int(name string, value int64) Arg {
	return Arg{Name: name, Value: strconv.FormatInt(value, 10)}
}

func Bool(name string, value bool) Arg {
	return Arg{Name: name, Value: strconv.FormatBool(value)}
}

// Date is an ISO-8601 calendar date written as a quoted string.
func Date(name string, value civil.Date) Arg {
	return Arg{Name: name, Value: quote(value.String())}
}

// quote writes s as a GraphQL string literal. JSON string escapes are a subset
// of the GraphQL ones.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(b)
}

// Selection is a field with optional arguments and sub-selections.
type Selection struct {
	Name     string
	Args     []Arg
	Children []Selection
}

// Field returns a selection of name with the given sub-selections.
func Field(name string, children ...Selection) Selection {
	return Selection{Name: name, Children: children}
}

// Fields returns leaf selections for each name.
func Fields(names ...string) []Selection {
	out := make([]Selection, len(names))
	for i, name := range names {
		out[i] = Selection{Name: name}
	}
	return out
}

// WithArgs returns a copy of s carrying args.
func (s Selection) WithArgs(args ...Arg) Selection {
	s.Args = append(append([]Arg(nil), s.Args...), args...)
	return s
}

// Add returns a copy of s with children appended.
func (s Selection) Add(children ...Selection) Selection {
	s.Children = append(append([]Selection(nil), s.Children...), children...)
	return s
}

func (s Selection) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(s.Name)
	if len(s.Args) > 0 {
		b.WriteByte('(')
		for i, arg := range s.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte(')')
	}
	if len(s.Children) > 0 {
		b.WriteString(" {\n")
		for _, child := range s.Children {
			child.write(b, depth+1)
		}
		b.WriteString(indent)
		b.WriteByte('}')
	}
	b.WriteByte('\n')
}

// Document is a query operation with a single root field.
type Document struct {
	Root Selection
}

// RootField is the key the result is found under in the response's data.
func (d Document) RootField() string {
	return d.Root.Name
}

func (d Document) String() string {
	var b strings.Builder
	b.WriteString("query {\n")
	d.Root.write(&b, 1)
	b.WriteString("}\n")
	return b.String()
}
