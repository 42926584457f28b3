package engine

import (
	"fmt"
	"strings"
)

// Per-action warning strings returned when the required input is empty.
const (
	warnAnalyze  = "No code provided. Please paste code to analyze."
	warnWrite    = "No prompt provided. Please describe what you want me to write."
	warnImprove  = "No code provided. Please paste code to improve."
	warnRefactor = "No code provided. Please paste code to refactor."
	warnDebug    = "No code provided. Please paste code to debug."
	warnExpand   = "No code provided. Please paste code to expand."
)

// MissingRequiredInput reports whether the action's required input is
// empty or whitespace-only, i.e. whether dispatching it would produce a
// warning Report instead of a full template. Write needs the prompt;
// every other action needs the code.
func MissingRequiredInput(action Action, code, prompt string) bool {
	if action == ActionWrite {
		return strings.TrimSpace(prompt) == ""
	}
	return strings.TrimSpace(code) == ""
}

// The generators below produce fixed boilerplate. They demonstrate the
// format of an AI review, not an actual analysis: apart from the line
// count, language guess, function count, and verbatim echo of the user's
// own text, the output is identical for any input.

// AnalyzeReport summarizes naive metrics about the pasted code.
func AnalyzeReport(code string) string {
	if strings.TrimSpace(code) == "" {
		return warnAnalyze
	}

	lines := len(strings.Split(code, "\n"))
	language := DetectLanguage(code)
	functions := CountFunctions(code)

	return fmt.Sprintf(`## Code Analysis

**Lines of code: %d**
**Detected language: %s**
**Functions found: %d**

### Structure
The code is organized into %d function-like declarations. Consider keeping
each function focused on a single responsibility and extracting helpers
when a function grows past one screen.

### Readability
- Names are the first documentation a reader sees; prefer descriptive
  identifiers over abbreviations.
- Consistent indentation and spacing make control flow easier to scan.

### Suggestions
1. Add comments for any non-obvious invariants.
2. Check error and edge-case handling on every external input.
3. Cover the core paths with unit tests before changing behavior.

*This is a demo analysis produced from surface metrics only.*`,
		lines, language, functions, functions)
}

// WriteReport echoes the prompt back inside a canned generation template.
func WriteReport(prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		return warnWrite
	}

	return fmt.Sprintf(`## Generated Code

Based on your request:

> %s

Here is a starting point:

`+"```"+`
// TODO: implementation for: %s
//
// 1. Parse and validate the inputs.
// 2. Apply the core logic described above.
// 3. Return or render the result.
`+"```"+`

### Next steps
- Fill in the skeleton above with your domain logic.
- Add input validation for the edge cases that matter to you.
- Write a test for the happy path first, then the failure paths.

*This is demo output; no model was consulted.*`, prompt, prompt)
}

// ImproveReport lists generic quality improvements.
func ImproveReport(code string) string {
	if strings.TrimSpace(code) == "" {
		return warnImprove
	}

	return `## Improvement Suggestions

### Quality
1. **Naming** - rename single-letter variables to describe their role.
2. **Duplication** - extract repeated blocks into shared helpers.
3. **Magic values** - lift literals into named constants.

### Robustness
1. Validate inputs at the boundary rather than deep inside the logic.
2. Handle the empty and oversized input cases explicitly.
3. Prefer early returns over deeply nested conditionals.

### Maintainability
1. Keep functions under roughly 40 lines.
2. Document the "why" of surprising decisions, not the "what".
3. Add a test alongside every behavioral change.

*Generic checklist output; the suggestions do not reference your code.*`
}

// RefactorReport proposes a canned restructuring plan.
func RefactorReport(code string) string {
	if strings.TrimSpace(code) == "" {
		return warnRefactor
	}

	return `## Refactoring Plan

### Phase 1: Make it safe
- Pin current behavior with characterization tests.
- Remove dead code and unused imports.

### Phase 2: Make it clear
- Split mixed responsibilities into separate functions or modules.
- Replace boolean flags with small, named types.
- Push I/O to the edges; keep the core pure.

### Phase 3: Make it clean
- Unify error handling into one style.
- Align naming with the domain vocabulary.
- Re-run the test suite after every step.

Refactor in small, reviewable commits - never combine a refactor with a
behavior change.

*Template plan; identical for any input code.*`
}

// DebugReport walks through common bug sources.
func DebugReport(code string) string {
	if strings.TrimSpace(code) == "" {
		return warnDebug
	}

	return `## Debug Checklist

### Usual suspects
1. **Off-by-one** - check loop bounds and slice indices.
2. **Nil/undefined** - trace every value that can be absent.
3. **Shadowing** - look for inner declarations hiding outer ones.
4. **Async ordering** - confirm results are awaited before use.

### Technique
- Reproduce the failure with the smallest possible input.
- Bisect: comment out half the logic and see if the symptom survives.
- Log the inputs and outputs at each boundary, then diff against
  expectations.

### If all else fails
Explain the code line by line to someone else (or a rubber duck); the
bug usually surfaces mid-sentence.

*Canned checklist; no actual inspection of your code was performed.*`
}

// ExpandReport echoes the code back with a canned extension outline.
// The prompt, when present, is included verbatim as the direction to
// extend in.
func ExpandReport(code, prompt string) string {
	if strings.TrimSpace(code) == "" {
		return warnExpand
	}

	direction := prompt
	if strings.TrimSpace(direction) == "" {
		direction = "general hardening and feature growth"
	}

	return fmt.Sprintf(`## Expanded Version

Original code:

`+"```"+`
%s
`+"```"+`

Requested direction: %s

### Suggested extensions
1. **Input handling** - accept configuration for the hard-coded parts.
2. **Error paths** - surface failures to the caller instead of ignoring
   them.
3. **Observability** - add logging at the entry and exit points.
4. **Tests** - lock in the current behavior before growing it.

Apply one extension at a time and keep the original behavior as the
default.

*Demo outline; your code is echoed unmodified above.*`, code, direction)
}
