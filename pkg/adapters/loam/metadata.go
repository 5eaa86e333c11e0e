package loam

// DefinitionMetadata is the frontmatter of a definition document.
// The payloads stay generic here; schema.FromMap types them, which keeps
// hand-written shorthand (such as a scalar "to") working in vault files.
type DefinitionMetadata struct {
	Kind      string         `json:"kind" mapstructure:"kind"`
	Name      string         `json:"name,omitempty" mapstructure:"name"`
	Automaton map[string]any `json:"automaton,omitempty" mapstructure:"automaton"`
	Grammar   map[string]any `json:"grammar,omitempty" mapstructure:"grammar"`
}
