package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestResolveYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  config
	}{
		{
			name:  "empty",
			input: "",
			want:  config{},
		},
		{
			name:  "flat",
			input: "log-level: debug\nlog-pretty: false\n",
			want:  config{"log-level": "debug", "log-pretty": false},
		},
		{
			name:  "nested",
			input: "log:\n  level: trace\n  caller: true\ncheck:\n  quiet: true\n",
			want: config{
				"log-level":   "trace",
				"log-caller":  true,
				"check-quiet": true,
			},
		},
		{
			name:  "numbers",
			input: "fmt:\n  indent: 8\nratio: 1.5\n",
			want:  config{"fmt-indent": "8", "ratio": "1.5"},
		},
		{
			name:  "sequence",
			input: "check:\n  sources: [a, b.arpx]\n",
			want:  config{"check-sources": "a,b.arpx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolveYAML(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("resolveYAML() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, r.(config)); diff != "" {
				t.Errorf("resolveYAML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveYAML_Malformed(t *testing.T) {
	_, err := resolveYAML(strings.NewReader("log: [unterminated\n"))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("resolveYAML() error = %v, want %v", err, ErrConfig)
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config{
		"log_level":   "debug",
		"pretty":      false,
		"check-quiet": true,
		"quiet":       false,
	}

	check := &kong.Path{Command: &kong.Command{Name: "check"}}

	tests := []struct {
		name   string
		parent *kong.Path
		flag   string
		want   any
	}{
		{"underscore", nil, "log-level", "debug"},
		{"plain", nil, "pretty", false},
		{"command qualified", check, "quiet", true},
		{"unqualified", nil, "quiet", false},
		{"missing", check, "indent", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			got, err := cfg.Resolve(nil, tt.parent, flag)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}
