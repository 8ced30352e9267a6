package auth

import "testing"

func TestGeneratePasscode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		code, err := GeneratePasscode()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != PasscodeLength {
			t.Fatalf("unexpected length: %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in passcode: %q", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected varying passcodes")
	}
}
