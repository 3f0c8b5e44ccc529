package enum

import "strings"

// RenderEngine identifies a template rendering strategy.
type RenderEngine string

const (
	// RenderEngineLogicless substitutes {{ key }} placeholders only.
	RenderEngineLogicless RenderEngine = "logicless"
	// RenderEngineLegacy executes the merchant template with full template semantics.
	RenderEngineLegacy RenderEngine = "legacy"
)

// ParseRenderEngine maps an engine id to an engine. Only "logicless" selects
// the logic-less engine; every other id, including "", is legacy because
// older store configurations predate the logic-less engine.
func ParseRenderEngine(s string) RenderEngine {
	switch RenderEngine(strings.ToLower(strings.TrimSpace(s))) {
	case RenderEngineLogicless:
		return RenderEngineLogicless
	default:
		return RenderEngineLegacy
	}
}

func (e RenderEngine) String() string {
	return string(e)
}
