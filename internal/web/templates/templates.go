// Package templates holds the templ components for the demo UI.
//
// The components are built directly on templ.ComponentFunc rather than
// generated .templ files: the markup is small and a code generation
// step buys nothing here. User-supplied text always goes through
// templ.EscapeString; pre-rendered markdown HTML is inserted with
// templ.Raw.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/nleiva/codesensei/pkg/engine"
)

// actionLabels maps each action to its button label.
var actionLabels = map[engine.Action]string{
	engine.ActionAnalyze:  "Analyze",
	engine.ActionWrite:    "Write",
	engine.ActionImprove:  "Improve",
	engine.ActionRefactor: "Refactor",
	engine.ActionDebug:    "Debug",
	engine.ActionExpand:   "Expand",
}

// Page renders the single-page demo shell: code and prompt inputs, one
// button per action, and the result pane.
func Page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}

		for _, action := range engine.Actions() {
			if _, err := fmt.Fprintf(w,
				`<button type="submit" name="action" value="%s">%s</button>`,
				templ.EscapeString(string(action)), templ.EscapeString(actionLabels[action])); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, pageTail)
		return err
	})
}

// ReportComponent renders one report fragment. bodyHTML is the
// markdown-rendered report text and is written as-is; everything else
// is escaped.
func ReportComponent(report engine.Report, bodyHTML string, responseMs int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="report"><div class="report-meta"><span class="report-action">%s</span><span class="report-time">%s · %dms</span></div><div class="report-body">`,
			templ.EscapeString(string(report.Action)),
			templ.EscapeString(report.CreatedAt.Format("15:04:05")),
			responseMs); err != nil {
			return err
		}

		if err := templ.Raw(bodyHTML).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</div></div>`)
		return err
	})
}

// WarningComponent renders the empty-input warning fragment.
func WarningComponent(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="report warning">%s</div>`, templ.EscapeString(text))
		return err
	})
}

// WelcomeComponent renders the initial (and post-reset) result pane.
func WelcomeComponent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="welcome-screen">
		<h2>Paste some code or describe what you need</h2>
		<p>Pick an action and CodeSensei will respond with a formatted review. This is a demo: the responses are templates, not real analysis.</p>
	</div>`)
		return err
	})
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>CodeSensei - AI Code Assistant Demo</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header>
<h1>CodeSensei</h1>
<p class="tagline">Demo AI code assistant - templated responses only</p>
</header>
<main>
<form id="sensei-form">
<label for="code">Code</label>
<textarea id="code" name="code" placeholder="Paste your code here..." spellcheck="false"></textarea>
<label for="prompt">Prompt</label>
<textarea id="prompt" name="prompt" placeholder="Describe what you want..."></textarea>
<div class="actions">
`

const pageTail = `</div>
</form>
<section id="result">
<div class="welcome-screen">
<h2>Paste some code or describe what you need</h2>
<p>Pick an action and CodeSensei will respond with a formatted review. This is a demo: the responses are templates, not real analysis.</p>
</div>
</section>
<button id="reset" type="button">Reset</button>
</main>
<script src="/static/app.js"></script>
</body>
</html>
`
