package vcf

import "testing"

func TestAltsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"identical single", []string{"T"}, []string{"T"}, true},
		{"identical pair", []string{"T", "G"}, []string{"T", "G"}, true},
		{"different allele", []string{"T"}, []string{"G"}, false},
		{"different length", []string{"T"}, []string{"T", "G"}, false},
		{"order matters", []string{"T", "G"}, []string{"G", "T"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Variant{Alts: tt.a}
			b := &Variant{Alts: tt.b}
			if got := a.AltsEqual(b); got != tt.want {
				t.Errorf("AltsEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalizeChrom(t *testing.T) {
	tests := []struct {
		chrom string
		want  string
	}{
		{"chr12", "12"},
		{"12", "12"},
		{"chrX", "X"},
		{"chr", "chr"},
		{"MT", "MT"},
	}

	for _, tt := range tests {
		v := &Variant{Chrom: tt.chrom}
		if got := v.NormalizeChrom(); got != tt.want {
			t.Errorf("NormalizeChrom(%q) = %q, want %q", tt.chrom, got, tt.want)
		}
	}
}

func TestFirstAlt(t *testing.T) {
	v := &Variant{Alts: []string{"T", "G"}}
	if got := v.FirstAlt(); got != "T" {
		t.Errorf("FirstAlt() = %q, want %q", got, "T")
	}
}
