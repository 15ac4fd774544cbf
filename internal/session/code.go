package session

const (
	silentAnswer  = "..."
	unknownAnswer = "?"
	perfectCode   = "04"
)

// Code is the two-character value revealed on the final screen.
type Code struct {
	Value   string
	Perfect bool
}

// SuccessRate is the flavour text shown next to the code.
func (c Code) SuccessRate() string {
	if c.Perfect {
		return "~10%"
	}
	return "~40%"
}

// DeriveCode builds the final code from the first two answers. A silent first
// answer becomes 0; the second answer is carried through as-is.
func DeriveCode(answers []string) Code {
	first := AnswerOr(answers, 0, silentAnswer)
	second := AnswerOr(answers, 1, unknownAnswer)

	firstDigit := unknownAnswer
	if first == silentAnswer {
		firstDigit = "0"
	}
	value := firstDigit + second
	return Code{Value: value, Perfect: value == perfectCode}
}

// AnswerOr returns answers[i], or fallback when it is missing or empty.
func AnswerOr(answers []string, i int, fallback string) string {
	if i < 0 || i >= len(answers) || answers[i] == "" {
		return fallback
	}
	return answers[i]
}
