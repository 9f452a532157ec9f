package collab

import "strings"

// correctionSystemPrompt pins the collaborator to the review contract: one
// record per input line, both arrays always present, strict JSON and nothing
// else. The client validates array presence after decoding; everything else
// is the collaborator's obligation.
const correctionSystemPrompt = `You are a meticulous HTML and CSS reviewer inside a code editor.
You receive the editor's HTML buffer and CSS buffer. Review every line of
both for real errors: malformed or unclosed tags, mismatched nesting, invalid
attributes, misspelled properties, missing semicolons or braces, invalid
values. Do not restyle or rewrite working code.

Respond with a single JSON object and nothing else, in exactly this shape:

{"html": [...], "css": [...]}

Each array holds exactly one record per input line, in input order, 1-indexed:

{"lineNumber": 1, "original": "<the line as given>", "corrected": "<the fixed line>", "isError": true, "explanation": "<what was wrong>"}

Rules:
- Every input line appears exactly once, in order. An empty buffer yields an empty array.
- A clean line has "corrected" equal to "original", "isError" false, "explanation" empty.
- An errored line has "corrected" different from "original", "isError" true, and a brief "explanation".
- Never merge, split, reorder, add, or drop lines.`

// askSystemPrompt shapes free-text answers for the chat popup.
const askSystemPrompt = `You are a concise assistant inside an HTML/CSS editor. Answer questions
about the user's current code. Prefer short answers; use markdown emphasis,
inline code, bullet lists, and fenced code blocks where they help.`

// correctionUserPrompt packages both buffers for a review request.
func correctionUserPrompt(html, css string) string {
	var b strings.Builder
	b.WriteString("HTML buffer:\n```html\n")
	b.WriteString(html)
	b.WriteString("\n```\n\nCSS buffer:\n```css\n")
	b.WriteString(css)
	b.WriteString("\n```")
	return b.String()
}

// askUserPrompt packages both buffers plus the question.
func askUserPrompt(html, css, question string) string {
	var b strings.Builder
	b.WriteString("Current HTML:\n```html\n")
	b.WriteString(html)
	b.WriteString("\n```\n\nCurrent CSS:\n```css\n")
	b.WriteString(css)
	b.WriteString("\n```\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
