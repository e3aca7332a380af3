package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Evaluated []string
	Broken    []string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from an
// instance graph. It applies semantic styling:
// - Source (outputs only): ((Circle))
// - Sink (inputs only): [[Subroutine]]
// - Default: [Rectangle]
// Edges are labeled with the pin pair they connect. Overlay styles mark
// evaluated and broken nodes if provided.
func GenerateMermaid(g *domain.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes() {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(node.ID())

		// Node shape based on pin profile
		opener, closer := "[", "]"
		switch {
		case len(node.InputPins()) == 0 && len(node.OutputPins()) > 0:
			opener, closer = "((", "))" // Circle
		case len(node.OutputPins()) == 0 && len(node.InputPins()) > 0:
			opener, closer = "[[", "]]" // Subroutine
		}

		label := fmt.Sprintf("%s<br/>%s", node.ID(), node.Type().ID())
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		// Connections, drawn from the source side only
		for _, p := range node.OutputPins() {
			for _, ref := range node.Connections(p.ID) {
				safeTo := sanitizeMermaidID(ref.NodeID)
				arrow := fmt.Sprintf("-- \"%s → %s\" -->", p.ID, ref.PinID)
				sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
			}
		}
	}

	// Apply overlay styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high contrast regardless of theme
		sb.WriteString("    classDef evaluated fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef broken fill:#ffebee,stroke:#c62828,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Evaluated {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s evaluated;\n", safeID))
			}
		}
		for _, id := range overlay.Broken {
			safeID := sanitizeMermaidID(id)
			if safeID != "" {
				sb.WriteString(fmt.Sprintf("    class %s broken;\n", safeID))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
