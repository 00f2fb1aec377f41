// AngelaMos | 2026
// validate_test.go

package core

import "testing"

func TestCheckPasswordPair(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2     string
		wantErrMsg string
	}{
		{"valid", "thisisapassword", "thisisapassword", ""},
		{"mismatch", "thisisapassword", "adifferentone", MsgPasswordMismatch},
		{"too short", "short", "short", MsgPasswordTooShort},
		{"contains space", "has a space", "has a space", MsgPasswordWhitespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPasswordPair(tt.p1, tt.p2); got != tt.wantErrMsg {
				t.Errorf("CheckPasswordPair = %q, want %q", got, tt.wantErrMsg)
			}
		})
	}
}

func TestValidTimezone(t *testing.T) {
	if !ValidTimezone("America/Los_Angeles") {
		t.Error("America/Los_Angeles must be valid")
	}
	if !ValidTimezone("UTC") {
		t.Error("UTC must be valid")
	}
	if ValidTimezone("Not/AZone") {
		t.Error("Not/AZone must be invalid")
	}
	if ValidTimezone("") {
		t.Error("empty timezone must be invalid")
	}
}
