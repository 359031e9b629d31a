package main

import (
	"io"
	"strings"
	"testing"
)

func TestWhitespaceOnlyCommandFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sort", []string{"--sort", "   "}, "bad sort command"},
		{"analyzer", []string{"--analyzer", "\t "}, "bad analyzer command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Execute() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}
