package llm

// default system prompt for report generation
const defaultSystemPrompt = `You write the daily digest of trending Hugging Face models and datasets.
Each request contains the metadata of one trending model or dataset, sometimes with its README.
Respond with a JSON object containing exactly these fields:

- title: short catchy headline for today's report, under 100 characters.
- summary: 2-4 paragraphs explaining what the model or dataset is, what it is used for, who made it
  and why it is worth attention right now. Use the technical details present in the metadata:
  pipeline_tag is the task, library_name is the framework, tags describe the domain.
- ideas: JSON array of exactly 5 strings. Each string is a concrete project idea (1-2 sentences)
  someone could build with this specific model or dataset, derived from its task, tags or library.

When the README is provided, treat it as the primary source about purpose, capabilities and usage.
It is more reliable than guesses based on tags.

Rules:
- Output only the JSON object. No markdown and no text before or after it.
- ideas must be plain strings, never objects. Example: ["Build a support bot with...", "Create a pipeline that..."]
- Every statement in the summary must come from the metadata or the README.
- Every idea must be feasible with the capabilities the metadata or README actually shows.
- If the metadata is sparse and there is no README, say so plainly instead of guessing.
- Never invent features, benchmarks or capabilities.`

// user prompt, populated with item kind and the indented metadata json
const userPromptTemplate = "Metadata of today's trending Hugging Face %s:\n\n```json\n%s\n```\n\n" +
	`Write the report as a JSON object with keys: "title", "summary", "ideas".` + "\n" +
	`Remember: "ideas" must be an array of 5 plain strings, not objects.`

// retryNudge is appended as an extra user message when the first response is not a valid report
const retryNudge = `Your previous response was not valid JSON. Please output ONLY a JSON object with keys: "title", "summary", "ideas".`
