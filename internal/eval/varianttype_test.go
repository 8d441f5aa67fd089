package eval

import "testing"

func TestClassifyVariant(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		alts []string
		sv   bool
		want VariantType
	}{
		{"SNP", "A", []string{"G"}, false, SNP},
		{"multi-alt SNP", "A", []string{"G", "T"}, false, SNP},
		{"insertion", "A", []string{"AT"}, false, IndelInsertion},
		{"deletion", "AT", []string{"A"}, false, IndelDeletion},
		{"inversion", "AT", []string{"TA"}, false, IndelInversion},
		{"longer inversion", "ACGT", []string{"TGCA"}, false, IndelInversion},
		{"same length not reversed", "AT", []string{"GC"}, false, IndelOther},
		{"multi-alt indel", "AT", []string{"A", "ATT"}, false, IndelOther},
		{"SV deletion", "ATTTT", []string{"A"}, true, SVDeletion},
		{"SV insertion", "A", []string{"ATTTT"}, true, SVInsertion},
		{"SV equal length", "AT", []string{"GC"}, true, SVOther},
		{"SV single base", "A", []string{"G"}, true, SNP}, // SNP shape wins over the marker
		{"SV multi-alt", "AT", []string{"A", "ATT"}, true, SVOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVariant("1", 100, tt.ref, tt.alts...)
			if tt.sv {
				v.Info["SVTYPE"] = "DEL"
			}
			if got := ClassifyVariant(v); got != tt.want {
				t.Errorf("ClassifyVariant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyVariantDeterministic(t *testing.T) {
	v := testVariant("1", 100, "AT", "TA")
	first := ClassifyVariant(v)
	for i := 0; i < 10; i++ {
		if got := ClassifyVariant(v); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestVariantTypeFacets(t *testing.T) {
	tests := []struct {
		typ                                VariantType
		snp, indel, sv, ins, del, inv, oth bool
	}{
		{SNP, true, false, false, false, false, false, false},
		{IndelInsertion, false, true, false, true, false, false, false},
		{IndelDeletion, false, true, false, false, true, false, false},
		{IndelInversion, false, true, false, false, false, true, false},
		{IndelOther, false, true, false, false, false, false, true},
		{SVInsertion, false, false, true, true, false, false, false},
		{SVDeletion, false, false, true, false, true, false, false},
		{SVOther, false, false, true, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if tt.typ.IsSNP() != tt.snp {
				t.Errorf("IsSNP() = %v, want %v", tt.typ.IsSNP(), tt.snp)
			}
			if tt.typ.IsIndel() != tt.indel {
				t.Errorf("IsIndel() = %v, want %v", tt.typ.IsIndel(), tt.indel)
			}
			if tt.typ.IsStructuralVariant() != tt.sv {
				t.Errorf("IsStructuralVariant() = %v, want %v", tt.typ.IsStructuralVariant(), tt.sv)
			}
			if tt.typ.IsInsertion() != tt.ins {
				t.Errorf("IsInsertion() = %v, want %v", tt.typ.IsInsertion(), tt.ins)
			}
			if tt.typ.IsDeletion() != tt.del {
				t.Errorf("IsDeletion() = %v, want %v", tt.typ.IsDeletion(), tt.del)
			}
			if tt.typ.IsInversion() != tt.inv {
				t.Errorf("IsInversion() = %v, want %v", tt.typ.IsInversion(), tt.inv)
			}
			if tt.typ.IsOther() != tt.oth {
				t.Errorf("IsOther() = %v, want %v", tt.typ.IsOther(), tt.oth)
			}
		})
	}
}
