package grading

import "fmt"

// calculationSubjects lists subjects where submitted work is expected to
// show its working, not just a final answer.
var calculationSubjects = map[string]bool{
	"Math":    true,
	"Physics": true,
}

const capRule = `เงื่อนไขสำคัญมาก: สำหรับวิชา %s หากโจทย์ต้องการการคำนวณ แต่ในภาพ 'ไม่มีการแสดงวิธีทำ' หรือมีแค่ 'คำตอบสุดท้าย'
ให้คะแนนไม่เกิน 25/%d และระบุเหตุผลว่า 'โปรดแสดงวิธีทำเพื่อให้ได้คะแนนเต็ม'
แต่ถ้าโจทย์ไม่ได้ต้องการการคำนวณ ให้ตรวจตามปกติ และใช้ LaTeX สำหรับสมการ`

const promptTemplate = `คุณคืออาจารย์ผู้เชี่ยวชาญวิชา %s ตรวจงานอย่างละเอียดและซื่อตรง %s
คะแนนเต็มคือ %d คะแนน
โปรดตรวจงานในภาพและตอบกลับตามโครงสร้างนี้:
1. คะแนนที่ได้: (X/%d)
2. จุดที่ทำได้ดี:
3. ข้อผิดพลาดที่ควรแก้ไข:
4. สรุปคำแนะนำ:
5. เฉลยและวิธีทำ: (ใช้ LaTeX)`

// BuildPrompt composes the grading instruction for the model. Pure: the
// same subject and fullScore always produce the same text. For
// calculation-heavy subjects the prompt caps answer-only work at 25% of
// the full score.
func BuildPrompt(subject string, fullScore int) string {
	logicInstruction := ""
	if calculationSubjects[subject] {
		logicInstruction = fmt.Sprintf(capRule, subject, fullScore)
	}
	return fmt.Sprintf(promptTemplate, subject, logicInstruction, fullScore, fullScore)
}
