package main

import (
	"strings"
	"testing"
)

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_callisto"},
		{"zsh", "#compdef callisto"},
		{"fish", "complete -c callisto"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := executeCommand(t, "", "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s failed: %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("script missing %q", tt.want)
			}
		})
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	if _, err := executeCommand(t, "", "completion", "tcsh"); err == nil {
		t.Fatal("expected error for unsupported shell")
	}
}

func TestFlagValueCompletion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"validate format", []string{"__complete", "validate", "--format", ""}, []string{"text", "json"}},
		{"run log level", []string{"__complete", "run", "--log-level", ""}, []string{"debug", "info", "warn", "error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "", tt.args...)
			if err != nil {
				t.Fatalf("__complete failed: %v", err)
			}

			lines := strings.Split(strings.TrimSpace(out), "\n")
			for _, want := range tt.want {
				found := false
				for _, line := range lines {
					if line == want {
						found = true
					}
				}
				if !found {
					t.Errorf("completion missing %q in %q", want, out)
				}
			}
			// The last line is the directive; 4 disables file completion.
			if lines[len(lines)-1] != ":4" {
				t.Errorf("directive = %q, want :4", lines[len(lines)-1])
			}
		})
	}
}
