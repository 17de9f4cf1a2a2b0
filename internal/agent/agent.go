// Package agent implements the per-provider orchestration loops: send the
// user query plus projected tool schemas to the model, execute whatever
// tool calls it requests through the registry's dispatcher, then send the
// results back for a final natural-language summary. Each Execute call is
// stateless end-to-end; nothing survives the request.
package agent

// systemInstruction steers the Gemini loop toward comprehensive,
// multi-part tool use.
const systemInstruction = "You are a helpful assistant. When you use tools to fetch information, " +
	"always present the results with full details including titles, sources, URLs, and dates. " +
	"Be comprehensive and include all relevant information from the tool results. " +
	"When a question has multiple parts, use all available tools to answer each part thoroughly."

// ToolCall names one invoked tool, reported alongside the summary for
// observability.
type ToolCall struct {
	Name string `json:"name"`
}
