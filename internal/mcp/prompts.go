package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// getAllPrompts returns the list of prompt definitions.
func getAllPrompts() []Prompt {
	return []Prompt{
		{
			Name:        "front_page_digest",
			Description: "Summarize the current front page of a listing category.",
			Arguments: []PromptArgument{
				{Name: "category", Description: "Listing to digest (top, new, best, ask, show, job); defaults to top", Required: false},
				{Name: "count", Description: "Number of stories to cover", Required: false},
			},
		},
		{
			Name:        "summarize_story",
			Description: "Summarize a story, its linked article, and the main discussion threads.",
			Arguments: []PromptArgument{
				{Name: "id", Description: "Id of the story to summarize", Required: true},
			},
		},
		{
			Name:        "research_topic",
			Description: "Search Hacker News for a topic and summarize the best material found.",
			Arguments: []PromptArgument{
				{Name: "query", Description: "Topic to research", Required: true},
				{Name: "tags", Description: "Optional tag filter, e.g. 'story' or 'comment'", Required: false},
			},
		},
	}
}

// getPromptByName returns the prompt messages for the given name with
// arguments substituted. A missing required argument maps to Invalid params.
func getPromptByName(name string, arguments map[string]any) ([]PromptMessage, error) {
	prompts := getAllPrompts()
	var def *Prompt
	for i := range prompts {
		if prompts[i].Name == name {
			def = &prompts[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}

	var missing []string
	for _, arg := range def.Arguments {
		if !arg.Required {
			continue
		}
		v, ok := arguments[arg.Name]
		if !ok || v == nil {
			missing = append(missing, arg.Name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	switch def.Name {
	case "front_page_digest":
		return buildFrontPageDigestMessages(arguments), nil
	case "summarize_story":
		return buildSummarizeStoryMessages(arguments), nil
	case "research_topic":
		return buildResearchTopicMessages(arguments), nil
	default:
		return nil, fmt.Errorf("unknown prompt: %s", def.Name)
	}
}

func buildFrontPageDigestMessages(args map[string]any) []PromptMessage {
	category, _ := args["category"].(string)
	if category == "" {
		category = "top"
	}
	text := fmt.Sprintf(
		"Use get_stories with category %q to read the current listing, then give a short digest: "+
			"one line per story with what it is and why it might matter. Group related stories together.",
		category,
	)
	if count, ok := args["count"]; ok {
		text = fmt.Sprintf(
			"Use get_stories with category %q and limit %v, then give a short digest: "+
				"one line per story with what it is and why it might matter. Group related stories together.",
			category, count,
		)
	}
	return userMessage(text)
}

func buildSummarizeStoryMessages(args map[string]any) []PromptMessage {
	id := args["id"]
	text := fmt.Sprintf(
		"Use get_item for story id %v, read_article if it links to a page, and get_comment_tree "+
			"(depth 2 or 3) for the discussion. Summarize the article in a few sentences, then the "+
			"main threads of the discussion including notable disagreements.",
		id,
	)
	return userMessage(text)
}

func buildResearchTopicMessages(args map[string]any) []PromptMessage {
	query, _ := args["query"].(string)
	text := fmt.Sprintf(
		"Use search_hn with query %q to find relevant stories and comments. Follow up on the best "+
			"hits with get_item or get_comment_tree. Summarize what the community knows and thinks "+
			"about the topic, citing story ids.",
		query,
	)
	if tags, _ := args["tags"].(string); tags != "" {
		text = fmt.Sprintf(
			"Use search_hn with query %q and tags %q to find relevant results. Follow up on the best "+
				"hits with get_item or get_comment_tree. Summarize what the community knows and thinks "+
				"about the topic, citing story ids.",
			query, tags,
		)
	}
	return userMessage(text)
}

func userMessage(text string) []PromptMessage {
	return []PromptMessage{{
		Role:    "user",
		Content: []PromptContent{{Type: "text", Text: text}},
	}}
}

// promptsGetParams for prompts/get.
type promptsGetParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// parsePromptsGetParams parses params for prompts/get. Returns name,
// arguments, and an error message if invalid.
func parsePromptsGetParams(params json.RawMessage) (name string, arguments map[string]any, errMsg string) {
	var p promptsGetParams
	if unmarshalErr := json.Unmarshal(params, &p); unmarshalErr != nil {
		return "", nil, "Invalid parameters: " + unmarshalErr.Error()
	}
	if p.Name == "" {
		return "", nil, "name is required"
	}
	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}
	return p.Name, p.Arguments, ""
}
