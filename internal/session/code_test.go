package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveCode(t *testing.T) {
	cases := []struct {
		name    string
		answers []string
		want    string
		perfect bool
	}{
		{name: "silence then four", answers: []string{"...", "4", "x", "y", "z"}, want: "04", perfect: true},
		{name: "no answers", answers: nil, want: "0?"},
		{name: "empty first counts as silence", answers: []string{"", "4"}, want: "04", perfect: true},
		{name: "spoken first", answers: []string{"hello", "4"}, want: "?4"},
		{name: "second carried through", answers: []string{"...", "GLASS"}, want: "0GLASS"},
		{name: "empty second", answers: []string{"...", ""}, want: "0?"},
		{name: "only first", answers: []string{"..."}, want: "0?"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveCode(tc.answers)
			require.Equal(t, tc.want, got.Value)
			require.Equal(t, tc.perfect, got.Perfect)
		})
	}
}

func TestSuccessRate(t *testing.T) {
	require.Equal(t, "~10%", Code{Value: "04", Perfect: true}.SuccessRate())
	require.Equal(t, "~40%", Code{Value: "0?"}.SuccessRate())
}

func TestAnswerOr(t *testing.T) {
	answers := []string{"a", ""}
	require.Equal(t, "a", AnswerOr(answers, 0, "-"))
	require.Equal(t, "-", AnswerOr(answers, 1, "-"))
	require.Equal(t, "-", AnswerOr(answers, 5, "-"))
	require.Equal(t, "-", AnswerOr(answers, -1, "-"))
}
