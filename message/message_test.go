package message

import "testing"

func TestSeverity_Rank(t *testing.T) {
	if SeverityHigh.Rank() <= SeverityLow.Rank() {
		t.Errorf("high should outrank low")
	}
	if SeverityLow.Rank() <= SeverityUnspecified.Rank() {
		t.Errorf("low should outrank unspecified")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Severity
		wantErr bool
	}{
		{"high", "high", SeverityHigh, false},
		{"low", "low", SeverityLow, false},
		{"empty means unspecified", "", SeverityUnspecified, false},
		{"unknown", "medium", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage_Key(t *testing.T) {
	a := Message{CheckName: "check_missing_unit", Location: "acquisition.response", Text: "missing unit"}
	b := Message{CheckName: "check_missing_unit", Location: "acquisition.response", Text: "missing unit",
		ObjectType: "Series", Severity: SeverityHigh}
	c := Message{CheckName: "check_missing_unit", Location: "acquisition.stimulus", Text: "missing unit"}

	if a.Key() != b.Key() {
		t.Errorf("identity must ignore object and severity fields")
	}
	if a.Key() == c.Key() {
		t.Errorf("different locations must have different keys")
	}
}
