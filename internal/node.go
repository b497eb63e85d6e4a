package internal

import (
	"fmt"
	"reflect"
	"strings"
)

// textTag marks text nodes in a Kind; it can never collide with a real
// element tag.
const textTag = "#text"

// TextProp holds a text node's content.
const TextProp = "nodeValue"

const childrenProp = "children"

// Component is a render function: it receives the node's properties and
// returns the single node describing its output.
type Component func(Props) *Node

// Kind identifies what a node describes: a host element (by tag), a text
// node, or a component (by function identity). It is a closed variant; only
// the three constructors below produce valid values.
type Kind struct {
	tag  string
	comp Component
	id   uintptr // function identity of comp
}

func HostKind(tag string) Kind { return Kind{tag: tag} }

func TextKind() Kind { return Kind{tag: textTag} }

// ComponentKind identifies a component by its function's code identity.
// Distinct closures created from the same function literal share that
// identity and count as the same component, so a component function must
// describe one component, not be minted per instance.
func ComponentKind(fn Component) Kind {
	return Kind{comp: fn, id: reflect.ValueOf(fn).Pointer()}
}

func (k Kind) IsComponent() bool { return k.comp != nil }

func (k Kind) IsText() bool { return k.comp == nil && k.tag == textTag }

func (k Kind) Tag() string { return k.tag }

// Same reports whether two kinds describe the same node type: tags and the
// text marker compare by name, components by function identity.
func (k Kind) Same(other Kind) bool {
	if k.comp != nil || other.comp != nil {
		return k.id != 0 && k.id == other.id
	}
	return k.tag == other.tag
}

func (k Kind) String() string {
	if k.comp != nil {
		return fmt.Sprintf("component(0x%x)", k.id)
	}
	return k.tag
}

// Props maps property names to values. Every node's props carry a
// "children" entry holding its already-flattened child nodes.
type Props map[string]any

// Children returns the child nodes stored in the props.
func (p Props) Children() []*Node {
	children, _ := p[childrenProp].([]*Node)
	return children
}

// IsListener reports whether a property name follows the event-listener
// convention ("onClick", "onInput", ...).
func IsListener(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "on") &&
		name[2] >= 'A' && name[2] <= 'Z'
}

// EventName maps a listener property name to its target event name,
// "onClick" → "click".
func EventName(prop string) string {
	return strings.ToLower(strings.TrimPrefix(prop, "on"))
}

// Node is the immutable description of one tree position. Nodes are produced
// by the authoring layer, consumed into fibers during reconciliation, and
// never mutated.
type Node struct {
	Kind  Kind
	Props Props
}

// NewElement builds a node of the given kind. The variadic children may be
// nodes, slices of nodes or of any, or primitive values; nested sequences
// are flattened and primitives promoted to text nodes. The given props are
// copied, so callers may reuse their map.
func NewElement(kind Kind, props Props, children ...any) *Node {
	ps := make(Props, len(props)+1)
	for name, value := range props {
		ps[name] = value
	}
	ps[childrenProp] = flatten(children)

	return &Node{Kind: kind, Props: ps}
}

// NewText builds a text node holding the stringified value.
func NewText(value any) *Node {
	return &Node{
		Kind: TextKind(),
		Props: Props{
			TextProp:     stringify(value),
			childrenProp: []*Node(nil),
		},
	}
}

func flatten(children []any) []*Node {
	out := make([]*Node, 0, len(children))

	for _, child := range children {
		switch child := child.(type) {
		case nil:
			// skipped, allows conditional children
		case *Node:
			// a typed nil pointer misses the nil case above; it must not
			// occupy a position or the positional diff misaligns
			if child != nil {
				out = append(out, child)
			}
		case []*Node:
			out = append(out, child...)
		case []any:
			out = append(out, flatten(child)...)
		default:
			out = append(out, NewText(child))
		}
	}

	return out
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
