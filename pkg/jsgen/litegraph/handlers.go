package litegraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/jsgen"
	"github.com/aretw0/graft/pkg/schema"
)

// pinNameHelper is the shared static fragment for property-driven
// pins: templates reach the browser verbatim, index substitution
// happens there.
const pinNameHelper = `function graftPinName(template, i) {
    return template.replace("%d", i);
}`

// Register installs handlers for every built-in building block: both
// data type kinds, the three pin generators, and the three property
// kinds. Modules with custom building blocks register their own
// handlers on top.
func Register(r *jsgen.Registry) error {
	handlers := []struct {
		tag     string
		static  string
		dynamic jsgen.GenerateFunc
	}{
		{domain.TagSimpleType, "", simpleType},
		// Slot type 0 is LiteGraph's wildcard.
		{domain.TagAnyType, "", jsgen.Constant("0")},
		{domain.TagFixedPins, "", fixedPins},
		{domain.TagChainPins, "", chainPins},
		{domain.TagPropertyPins, pinNameHelper, propertyPins},
		{schema.TagFloat, "", floatProperty},
		{schema.TagInt, "", intProperty},
		{schema.TagChoices, "", choicesProperty},
	}
	for _, h := range handlers {
		if err := r.Register(h.tag, h.static, h.dynamic); err != nil {
			return err
		}
	}
	return nil
}

func simpleType(_ *jsgen.Context, v jsgen.Value) (string, error) {
	t, ok := v.(*domain.SimpleType)
	if !ok {
		return "", fmt.Errorf("litegraph: want *domain.SimpleType, got %T", v)
	}
	return strconv.Quote(t.ID()), nil
}

func fixedPins(ctx *jsgen.Context, v jsgen.Value) (string, error) {
	g, ok := v.(*domain.FixedPins)
	if !ok {
		return "", fmt.Errorf("litegraph: want *domain.FixedPins, got %T", v)
	}
	var lines []string
	for _, p := range g.Pins() {
		typeExpr, err := ctx.Generate(p.Type)
		if err != nil {
			return "", err
		}
		switch p.Direction {
		case domain.In:
			lines = append(lines, fmt.Sprintf("this.addInput(%q, %s);", p.ID, typeExpr))
		case domain.Out:
			lines = append(lines, fmt.Sprintf("this.addOutput(%q, %s);", p.ID, typeExpr))
		default:
			return "", fmt.Errorf("litegraph: pin %q has direction %q", p.ID, p.Direction)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func chainPins(ctx *jsgen.Context, v jsgen.Value) (string, error) {
	g, ok := v.(*domain.ChainPins)
	if !ok {
		return "", fmt.Errorf("litegraph: want *domain.ChainPins, got %T", v)
	}
	var parts []string
	for _, sub := range g.Generators() {
		text, err := ctx.Generate(sub)
		if err != nil {
			return "", err
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n"), nil
}

func propertyPins(ctx *jsgen.Context, v jsgen.Value) (string, error) {
	g, ok := v.(*domain.PropertyPins)
	if !ok {
		return "", fmt.Errorf("litegraph: want *domain.PropertyPins, got %T", v)
	}
	tmpl := g.Template()
	typeExpr, err := ctx.Generate(tmpl.Type)
	if err != nil {
		return "", err
	}
	var call string
	switch tmpl.Direction {
	case domain.In:
		call = "addInput"
	case domain.Out:
		call = "addOutput"
	default:
		return "", fmt.Errorf("litegraph: pin template %q has direction %q", g.IDTemplate(), tmpl.Direction)
	}
	return fmt.Sprintf(`for (var i = 0; i < this.properties[%q]; i++) {
    this.%s(graftPinName(%q, i), %s);
}`, g.PropertyName(), call, g.IDTemplate(), typeExpr), nil
}

func floatProperty(_ *jsgen.Context, v jsgen.Value) (string, error) {
	p, ok := v.(*schema.FloatProperty)
	if !ok {
		return "", fmt.Errorf("litegraph: want *schema.FloatProperty, got %T", v)
	}
	def, _ := p.Default().(float64)
	return "this.addProperty(%q, " + strconv.FormatFloat(def, 'g', -1, 64) + ");", nil
}

func intProperty(_ *jsgen.Context, v jsgen.Value) (string, error) {
	p, ok := v.(*schema.IntProperty)
	if !ok {
		return "", fmt.Errorf("litegraph: want *schema.IntProperty, got %T", v)
	}
	def, _ := p.Default().(int)
	return "this.addProperty(%q, " + strconv.Itoa(def) + ");", nil
}

func choicesProperty(_ *jsgen.Context, v jsgen.Value) (string, error) {
	p, ok := v.(*schema.ChoicesProperty)
	if !ok {
		return "", fmt.Errorf("litegraph: want *schema.ChoicesProperty, got %T", v)
	}
	def, _ := p.Default().(string)
	quoted := make([]string, 0, len(p.Choices()))
	for _, c := range p.Choices() {
		quoted = append(quoted, quoteEscaped(c))
	}
	return "this.addProperty(%q, " + quoteEscaped(def) +
		`, "enum", { values: [` + strings.Join(quoted, ", ") + `] });`, nil
}

// quoteEscaped renders a JS string literal with percent signs doubled.
// Property fragments pass through one more formatting step that fills
// in the property name, and value text must survive it untouched.
func quoteEscaped(s string) string {
	return strings.ReplaceAll(strconv.Quote(s), "%", "%%")
}
