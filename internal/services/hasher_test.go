package services

import "testing"

func TestHashContentDeterministic(t *testing.T) {
	resume := []byte("resume pdf bytes")
	jd := "backend engineer"

	first := HashContent(resume, jd)
	second := HashContent(resume, jd)

	if first != second {
		t.Errorf("identical inputs produced different keys: %s vs %s", first, second)
	}

	if len(first) != 64 {
		t.Errorf("key length = %d, want 64 hex characters", len(first))
	}
}

func TestHashContentSensitivity(t *testing.T) {
	resume := []byte("resume pdf bytes")
	jd := "backend engineer"
	base := HashContent(resume, jd)

	if got := HashContent([]byte("other resume"), jd); got == base {
		t.Error("different resume bytes produced the same key")
	}

	if got := HashContent(resume, "frontend engineer"); got == base {
		t.Error("different job description produced the same key")
	}
}

func TestHashContentOrderSensitive(t *testing.T) {
	// Resume bytes precede the description, so swapping the two inputs
	// changes the digest.
	a := HashContent([]byte("alpha"), "beta")
	b := HashContent([]byte("beta"), "alpha")

	if a == b {
		t.Error("swapping resume and description produced the same key")
	}
}
