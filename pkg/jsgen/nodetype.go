package jsgen

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/aretw0/graft/pkg/domain"
)

const nodeTemplateText = `function {{.ID}}() {
{{- range .Properties}}
    {{.}}
{{- end}}
    this.pin_generation = function () {
{{indent 8 .PinBody}}
    };
    this.pin_generation();
}
{{.ID}}.title = {{quote .Title}};
LiteGraph.registerNodeType({{quote .Path}}, {{.ID}});`

var nodeTemplate = template.Must(template.New("node").Funcs(template.FuncMap{
	"indent": indent,
	"quote":  strconv.Quote,
}).Parse(nodeTemplateText))

type nodeTemplateData struct {
	ID         string
	Title      string
	Path       string
	Properties []string
	PinBody    string
}

// NodeType generates and records the definition block for one node
// type: the generated pin-construction body, the property declarations
// in declaration order, and the surrounding constructor with its title
// and registration call. The block is stored under the type's own tag,
// after the static fragments of everything it generated.
//
// Generation is memoized on the type's tag, so a second call for the
// same type is a no-op and a catalog generated twice builds each block
// once.
//
// Property fragments returned by their handlers must carry exactly one
// %q verb; NodeType formats each fragment with its property name.
func (c *Context) NodeType(nt *domain.NodeType) error {
	tag := nt.GenTag()
	if _, done := c.blocks[tag]; done {
		return nil
	}

	var pinBody string
	if gen := nt.PinGenerator(); gen != nil {
		var err error
		pinBody, err = c.Generate(gen)
		if err != nil {
			return err
		}
	}

	var props []string
	for _, ps := range nt.Properties() {
		frag, err := c.Generate(ps.Property)
		if err != nil {
			return err
		}
		props = append(props, fmt.Sprintf(frag, ps.Name))
	}

	var buf strings.Builder
	err := nodeTemplate.Execute(&buf, nodeTemplateData{
		ID:         nt.ID(),
		Title:      nt.Name(),
		Path:       nt.Path(),
		Properties: props,
		PinBody:    pinBody,
	})
	if err != nil {
		return fmt.Errorf("jsgen: assemble %s: %w", nt.Path(), err)
	}
	c.record(tag, buf.String())
	return nil
}

func indent(spaces int, s string) string {
	if s == "" {
		return ""
	}
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
