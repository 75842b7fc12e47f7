// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BindConfig
		wantErr string
	}{
		{
			name: "valid with defaults",
			cfg:  BindConfig{InputDir: "scans", Output: DefaultOutput},
		},
		{
			name: "valid with explicit colour",
			cfg:  BindConfig{InputDir: "scans", Output: "book.pdf", Color: ColorNever},
		},
		{
			name:    "missing input dir",
			cfg:     BindConfig{Output: DefaultOutput},
			wantErr: "input_dir: cannot be blank",
		},
		{
			name:    "missing output",
			cfg:     BindConfig{InputDir: "scans"},
			wantErr: "output: cannot be blank",
		},
		{
			name:    "output names a directory",
			cfg:     BindConfig{InputDir: "scans", Output: "out/"},
			wantErr: "must name a file",
		},
		{
			name:    "unknown colour mode",
			cfg:     BindConfig{InputDir: "scans", Output: DefaultOutput, Color: "sometimes"},
			wantErr: "color: must be a valid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
