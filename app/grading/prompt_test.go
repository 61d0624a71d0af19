package grading

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_CalculationSubjectsGetCapRule(t *testing.T) {
	t.Parallel()

	for subject := range calculationSubjects {
		prompt := BuildPrompt(subject, 100)
		assert.Contains(t, prompt, "25/100", "subject %s should carry the cap instruction", subject)
		assert.Contains(t, prompt, "โปรดแสดงวิธีทำเพื่อให้ได้คะแนนเต็ม", "subject %s should carry the show-your-work reason", subject)
	}
}

func TestBuildPrompt_OtherSubjectsSkipCapRule(t *testing.T) {
	t.Parallel()

	for _, subject := range []string{"General", "English", "History", "Art", "math"} {
		prompt := BuildPrompt(subject, 100)
		assert.NotContains(t, prompt, "25/100", "subject %s should not carry the cap instruction", subject)
	}
}

func TestBuildPrompt_CapRuleTracksFullScore(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("Physics", 50)
	assert.Contains(t, prompt, "25/50")
	assert.NotContains(t, prompt, "25/100")
}

func TestBuildPrompt_RequestsFivePartStructure(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("General", 100)
	for _, marker := range []string{
		"1. คะแนนที่ได้: (X/100)",
		"2. จุดที่ทำได้ดี:",
		"3. ข้อผิดพลาดที่ควรแก้ไข:",
		"4. สรุปคำแนะนำ:",
		"5. เฉลยและวิธีทำ: (ใช้ LaTeX)",
	} {
		assert.Contains(t, prompt, marker)
	}
	assert.True(t, strings.Contains(prompt, fmt.Sprintf("คะแนนเต็มคือ %d คะแนน", 100)))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BuildPrompt("Math", 80), BuildPrompt("Math", 80))
	assert.Equal(t, BuildPrompt("General", 100), BuildPrompt("General", 100))
}
