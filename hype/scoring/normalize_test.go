package scoring

import "testing"

func TestNormalizeEventName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean name untouched", in: "Italian Grand Prix", want: "Italian Grand Prix"},
		{name: "duplicated suffix collapsed", in: "Italian Grand Prix Grand Prix", want: "Italian Grand Prix"},
		{name: "triple suffix collapsed", in: "Monaco Grand Prix Grand Prix Grand Prix", want: "Monaco Grand Prix"},
		{name: "interior words preserved", in: "Grand Prix of Monaco", want: "Grand Prix of Monaco"},
		{name: "whitespace collapsed", in: "  Italian   Grand Prix ", want: "Italian Grand Prix"},
		{name: "no suffix at all", in: "Sprint Shootout", want: "Sprint Shootout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeEventName(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeEventName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeEventName(got); again != got {
				t.Errorf("NormalizeEventName is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
