//go:build integration

package npm

import (
	"context"
	"testing"
	"time"
)

func TestLatestVersion_Integration(t *testing.T) {
	client := NewClient("")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"express", "express", false},
		{"scoped", "@babel/core", false},
		{"nonexistent", "this-package-should-not-exist-12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := client.LatestVersion(ctx, tt.pkg)
			if (err != nil) != tt.wantErr {
				t.Errorf("LatestVersion(%q) error = %v, wantErr %v", tt.pkg, err, tt.wantErr)
				return
			}
			if !tt.wantErr && v == "" {
				t.Error("version should not be empty")
			}
		})
	}
}
