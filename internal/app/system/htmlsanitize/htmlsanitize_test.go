package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string // Strings that should be in output
		excludes []string // Strings that should NOT be in output
	}{
		{
			name:     "empty string",
			input:    "",
			contains: []string{},
			excludes: []string{},
		},
		{
			name:     "table markup kept",
			input:    `<table class="qc-table"><tr class="trow"><td class="cell">E. coli</td></tr></table>`,
			contains: []string{`<table class="qc-table">`, `<tr class="trow">`, `<td class="cell">E. coli</td>`},
		},
		{
			name:     "script removed",
			input:    `<td class="cell">x<script>alert(1)</script></td>`,
			contains: []string{`<td class="cell">x</td>`},
			excludes: []string{"<script", "alert"},
		},
		{
			name:     "event handler removed",
			input:    `<span class="val" onclick="steal()">45%</span>`,
			contains: []string{`<span class="val">45%</span>`},
			excludes: []string{"onclick"},
		},
		{
			name:     "percentage width kept",
			input:    `<span class="bar" style="width: 45.67%"></span>`,
			contains: []string{"width", "45.67%"},
		},
		{
			name:     "non-percentage width removed",
			input:    `<span class="bar" style="width: expression(alert(1))"></span>`,
			excludes: []string{"expression", "style"},
		},
		{
			name:     "links removed",
			input:    `<a href="javascript:alert(1)">x</a>`,
			excludes: []string{"<a", "javascript"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize() = %q, want it to contain %q", got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("Sanitize() = %q, should not contain %q", got, bad)
				}
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	input := `<table class="qc-table"><tr class="trow"><td class="data-colored cell"><div class="wrapper"><span class="val">12%</span><span class="bar" style="background-color: #377eb8; width: 12%"></span></div></td></tr></table>`
	once := Sanitize(input)
	if twice := Sanitize(once); twice != once {
		t.Errorf("Sanitize() not idempotent:\n%q\n%q", once, twice)
	}
}
