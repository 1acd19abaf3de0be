package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Case sensitive - CSV uppercase",
			format:    "CSV",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
		{
			name:      "XML format not supported",
			format:    "xml",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateOutputFormatErrorMessage(t *testing.T) {
	err := ValidateOutputFormat("yaml")
	if err == nil {
		t.Fatal("expected error for format 'yaml'")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("error message should mention the rejected format: %s", err)
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		expectErr bool
	}{
		{"Amortization", "amortization", false},
		{"Monthly", "monthly", false},
		{"Yearly", "yearly", false},
		{"Empty", "", true},
		{"Uppercase", "YEARLY", true},
		{"Unknown", "quarterly", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTable(tt.table)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateTable(%s) expected error but got none", tt.table)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateTable(%s) unexpected error = %v", tt.table, err)
			}
		})
	}
}
