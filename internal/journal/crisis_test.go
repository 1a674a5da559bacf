package journal

import "testing"

func TestContainsCrisisSignal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "direct phrase",
			text: "I want to end it all",
			want: true,
		},
		{
			name: "ordinary entry",
			text: "I had a great day",
			want: false,
		},
		{
			name: "case insensitive",
			text: "sometimes I think about SELF HARM",
			want: true,
		},
		{
			name: "phrase embedded in a sentence",
			text: "told my friend I keep hurting myself when things go wrong",
			want: true,
		},
		{
			name: "empty text",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsCrisisSignal(tt.text); got != tt.want {
				t.Errorf("ContainsCrisisSignal(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
