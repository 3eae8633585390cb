package mood

import "testing"

func TestIntensityNeutralForBlank(t *testing.T) {
	if got := Intensity("   "); got != NeutralIntensity {
		t.Fatalf("blank text should be neutral, got %d", got)
	}
}

func TestIntensityNeutralWithoutKeywords(t *testing.T) {
	if got := Intensity("Today I went to the office and wrote some reports."); got != NeutralIntensity {
		t.Fatalf("keyword-free text should be neutral, got %d", got)
	}
}

func TestIntensityBrightText(t *testing.T) {
	got := Intensity("I felt so happy and grateful today")
	if got <= NeutralIntensity {
		t.Fatalf("bright text should score above neutral, got %d", got)
	}
}

func TestIntensityHeavyText(t *testing.T) {
	got := Intensity("I was anxious and exhausted all day")
	if got >= NeutralIntensity {
		t.Fatalf("heavy text should score below neutral, got %d", got)
	}
}

func TestIntensityExclamationBoostsBrightOnly(t *testing.T) {
	plain := Intensity("I am so happy")
	excited := Intensity("I am so happy!")
	if excited <= plain {
		t.Fatalf("exclamation should boost a bright score: %d vs %d", plain, excited)
	}

	heavyPlain := Intensity("I am so sad")
	heavyExcited := Intensity("I am so sad!")
	if heavyExcited != heavyPlain {
		t.Fatalf("exclamation without bright words should not move the score: %d vs %d", heavyPlain, heavyExcited)
	}
}

func TestIntensityClamped(t *testing.T) {
	heavy := "sad anxious stressed overwhelmed tired exhausted angry frustrated lonely worried scared hopeless depressed"
	if got := Intensity(heavy); got < 0 {
		t.Fatalf("score must clamp at 0, got %d", got)
	} else if got != 0 {
		t.Fatalf("expected floor of 0 for saturated heavy text, got %d", got)
	}

	bright := "happy glad great good grateful thankful excited proud calm relieved hopeful love amazing wonderful"
	if got := Intensity(bright); got != 100 {
		t.Fatalf("expected ceiling of 100 for saturated bright text, got %d", got)
	}
}
