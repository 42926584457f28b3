package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nleiva/codesensei/internal/app"
	"github.com/nleiva/codesensei/pkg/config"
	"github.com/nleiva/codesensei/pkg/engine"
)

const (
	cmdExit   = "exit"
	cmdReset  = "/reset"
	cmdCode   = "/code"
	cmdPrompt = "/prompt"
	cmdStats  = "/stats"
)

// CLISession holds the interactive state: the current code/prompt pair
// and the review session the actions run against.
type CLISession struct {
	session *app.ReviewSession
	reader  *bufio.Reader
	code    string
	prompt  string
}

// printMOTD displays the CodeSensei ASCII art banner
func printMOTD() {
	fmt.Print(`
 ██████╗ ██████╗ ██████╗ ███████╗███████╗███████╗███╗   ██╗███████╗███████╗██╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝██╔════╝██╔════╝████╗  ██║██╔════╝██╔════╝██║
██║     ██║   ██║██║  ██║█████╗  ███████╗█████╗  ██╔██╗ ██║███████╗█████╗  ██║
██║     ██║   ██║██║  ██║██╔══╝  ╚════██║██╔══╝  ██║╚██╗██║╚════██║██╔══╝  ██║
╚██████╗╚██████╔╝██████╔╝███████╗███████║███████╗██║ ╚████║███████║███████╗██║
 ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝╚══════╝╚═╝

        🤖 Demo AI Code Assistant - templated responses, no model behind it
        ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`)
}

// readMultilineInput reads user input until an empty line is entered
func (s *CLISession) readMultilineInput() (string, error) {
	var userLines []string
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			switch err.Error() {
			case "EOF":
				if len(userLines) == 0 {
					return "", err
				}
				// If we have some input, treat it as end of input
				return strings.Join(userLines, "\n"), nil
			default:
				return "", err
			}
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		userLines = append(userLines, line)
	}
	return strings.Join(userLines, "\n"), nil
}

// handleCodeUpdate handles the /code command
func (s *CLISession) handleCodeUpdate() error {
	fmt.Println("Paste your code (end with empty line):")
	code, err := s.readMultilineInput()
	if err != nil {
		return err
	}
	s.code = code
	fmt.Printf("Code set (%d lines).\n", len(strings.Split(code, "\n")))
	return nil
}

// handlePromptUpdate handles the /prompt command
func (s *CLISession) handlePromptUpdate() error {
	fmt.Print("Enter prompt: ")
	prompt, err := s.reader.ReadString('\n')
	if err != nil {
		return err
	}
	s.prompt = strings.TrimSpace(prompt)
	fmt.Println("Prompt set.")
	return nil
}

// showStats displays session statistics
func (s *CLISession) showStats() {
	summary := s.session.GetSessionSummary()

	fmt.Println("\nSession Statistics:")
	fmt.Printf("   Duration: %v\n", summary.Duration.Round(time.Second))
	fmt.Printf("   Requests: %d\n", summary.TotalRequests)
	if summary.AvgResponseTime > 0 {
		fmt.Printf("   Avg Response Time: %dms\n", summary.AvgResponseTime)
	}

	breakdown := s.session.GetActionBreakdown()
	if len(breakdown) > 0 {
		fmt.Println("   Actions:")
		for _, action := range engine.Actions() {
			if count := breakdown[string(action)]; count > 0 {
				fmt.Printf("     - %s: %d\n", action, count)
			}
		}
	}
	fmt.Println()
}

// runAction dispatches one action against the current code/prompt pair
func (s *CLISession) runAction(action engine.Action) {
	fmt.Println("Processing...")
	response := s.session.RunAction(context.Background(), action, s.code, s.prompt)

	fmt.Println("\nCodeSensei:\n" + response.Report.Text + "\n")
	if !response.Warning {
		fmt.Printf("[%s | %s | %dms]\n", response.Report.Action,
			response.Report.CreatedAt.Format("15:04:05"), response.ResponseTime.Milliseconds())
	}
}

// CLIRunner handles interactive terminal mode with consistent signature
type CLIRunner struct{}

// NewCLIRunner creates a new interactive CLI runner
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{}
}

// Run starts the interactive CLI mode
func (r *CLIRunner) Run(cfg *config.Config) error {
	printMOTD()
	fmt.Println("Set your input with '/code' and '/prompt', then run an action:")
	fmt.Println("  /analyze /write /improve /refactor /debug /expand")
	fmt.Println("Other commands: '/stats', '/reset', 'exit'")
	fmt.Println()

	reviewSession, err := app.NewReviewSession(app.SessionConfig{
		ID:          app.GenerateSessionID("cli"),
		SessionType: "cli",
		Delay:       cfg.Delay,
		LogDir:      cfg.LogDir,
	})
	if err != nil {
		return err
	}
	defer func() {
		summary := reviewSession.GetSessionSummary()
		fmt.Printf("\nSession Summary: %d requests, %v duration\n",
			summary.TotalRequests, summary.Duration.Round(time.Second))
		reviewSession.Close()
	}()

	session := &CLISession{
		session: reviewSession,
		reader:  bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("> ")
		input, inputErr := session.reader.ReadString('\n')
		if inputErr != nil {
			switch inputErr.Error() {
			case "EOF":
				fmt.Println("\nThanks for using CodeSensei! Goodbye!")
				return nil
			default:
				fmt.Println("Error reading input:", inputErr)
				continue
			}
		}

		switch input := strings.TrimSpace(input); input {
		case cmdExit:
			fmt.Println("\nThanks for using CodeSensei! Goodbye!")
			return nil
		case cmdReset:
			session.code = ""
			session.prompt = ""
			session.session.Reset()
			fmt.Println("Inputs cleared.")
		case cmdCode:
			if err := session.handleCodeUpdate(); err != nil {
				fmt.Println("Error reading code:", err)
			}
		case cmdPrompt:
			if err := session.handlePromptUpdate(); err != nil {
				fmt.Println("Error reading prompt:", err)
			}
		case cmdStats:
			session.showStats()
		case "":
			// Ignore blank lines at the prompt.
		default:
			action, err := engine.ParseAction(strings.TrimPrefix(input, "/"))
			if err != nil {
				fmt.Println("Unknown command:", input)
				continue
			}
			session.runAction(action)
		}
	}
}

// DirectRunner handles one-shot mode: run a single action against a
// file and print the report.
type DirectRunner struct {
	action engine.Action
	path   string
}

// NewDirectRunner creates a one-shot runner for the given action and file
func NewDirectRunner(action engine.Action, path string) *DirectRunner {
	return &DirectRunner{action: action, path: path}
}

// Run executes the single action and writes the report to stdout
func (r *DirectRunner) Run(cfg *config.Config) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	session, err := app.NewReviewSession(app.SessionConfig{
		ID:          app.GenerateSessionID("direct"),
		SessionType: "direct",
		Delay:       0, // no artificial pause in one-shot mode
		LogDir:      cfg.LogDir,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	// The write action reads its input from the prompt; every other
	// action treats the file contents as code.
	code, prompt := string(data), ""
	if r.action == engine.ActionWrite {
		code, prompt = "", string(data)
	}

	response := session.RunAction(context.Background(), r.action, code, prompt)
	fmt.Println(response.Report.Text)
	return nil
}
