package report

import "testing"

func TestLabel(t *testing.T) {
	cases := map[Status]string{
		StatusSubmitted:     "Submitted",
		StatusDGMApproved:   "DGM Approved",
		StatusGMApproved:    "GM Approved",
		StatusNeedsRevision: "Needs Revision",
		StatusPending:       "Pending",
		StatusApproved:      "Approved",
		Status("frozen"):    "frozen",
	}
	for s, want := range cases {
		if got := Label(s); got != want {
			t.Fatalf("Label(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestStatusSets_Disjoint(t *testing.T) {
	for _, s := range DisplayOnlyStatuses {
		if s.Enforced() {
			t.Fatalf("%q is display-only but reported as enforced", s)
		}
		if !s.Known() {
			t.Fatalf("%q should have a label", s)
		}
	}
	for _, s := range EnforcedStatuses {
		if !s.Enforced() || !s.Known() {
			t.Fatalf("%q should be enforced and known", s)
		}
	}
	if Status("nope").Known() {
		t.Fatal("unknown status reported as known")
	}
}
