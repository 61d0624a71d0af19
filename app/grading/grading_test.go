package grading

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darksoultig/stuwork/app/apperr"
)

type fakeGrader struct {
	response string
	err      error

	calls      int
	lastPrompt string
	lastImage  []byte
	lastMime   string
}

func (f *fakeGrader) Grade(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastImage = image
	f.lastMime = mimeType
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func validImage(t *testing.T) (string, []byte) {
	t.Helper()
	raw := []byte("fake image bytes")
	return base64.StdEncoding.EncodeToString(raw), raw
}

func TestGrade_UnconfiguredServiceFailsRegardlessOfInput(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	encoded, _ := validImage(t)

	_, err := svc.Grade(context.Background(), GradeInput{ImageBase64: encoded, Subject: "Math", FullScore: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, apperr.Unavailable, apperr.KindOf(err))

	// Still unavailable with invalid input: the configuration check wins.
	_, err = svc.Grade(context.Background(), GradeInput{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGrade_EmptyImageFailsBeforeExternalCall(t *testing.T) {
	t.Parallel()

	fake := &fakeGrader{response: "100/100"}
	svc := NewService(fake)

	_, err := svc.Grade(context.Background(), GradeInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoImage)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	assert.Zero(t, fake.calls, "grader must not be called for an empty image")
}

func TestGrade_MalformedBase64FailsBeforeExternalCall(t *testing.T) {
	t.Parallel()

	fake := &fakeGrader{response: "100/100"}
	svc := NewService(fake)

	_, err := svc.Grade(context.Background(), GradeInput{ImageBase64: "not!!base64??"})
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	assert.Zero(t, fake.calls)
}

func TestGrade_GraderFailureSurfacesAsInternal(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("quota exceeded")
	fake := &fakeGrader{err: transportErr}
	svc := NewService(fake)
	encoded, _ := validImage(t)

	_, err := svc.Grade(context.Background(), GradeInput{ImageBase64: encoded})
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	assert.Equal(t, 1, fake.calls)
}

func TestGrade_SuccessPath(t *testing.T) {
	t.Parallel()

	fake := &fakeGrader{response: "คะแนนที่ได้: 77/100 เขียนตอบได้ชัดเจน"}
	svc := NewService(fake)
	encoded, raw := validImage(t)

	result, err := svc.Grade(context.Background(), GradeInput{
		ImageBase64: encoded,
		Subject:     "Math",
		FullScore:   100,
		MimeType:    "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, 77, result.Score)
	assert.Equal(t, 100, result.FullScore)
	assert.Equal(t, fake.response, result.Feedback)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, raw, fake.lastImage, "decoded image bytes are forwarded untouched")
	assert.Equal(t, "image/png", fake.lastMime)
	assert.Equal(t, BuildPrompt("Math", 100), fake.lastPrompt)
}

func TestGrade_DefaultsApplied(t *testing.T) {
	t.Parallel()

	fake := &fakeGrader{response: "no score in this text"}
	svc := NewService(fake)
	encoded, _ := validImage(t)

	result, err := svc.Grade(context.Background(), GradeInput{ImageBase64: encoded})
	require.NoError(t, err)

	assert.Equal(t, DefaultFullScore, result.FullScore)
	assert.Equal(t, 80, result.Score, "fallback score is 80% of the default full score")
	assert.Equal(t, BuildPrompt(DefaultSubject, DefaultFullScore), fake.lastPrompt)
	assert.Equal(t, DefaultMimeType, fake.lastMime)
}

func TestConfigured(t *testing.T) {
	t.Parallel()

	assert.False(t, NewService(nil).Configured())
	assert.True(t, NewService(&fakeGrader{}).Configured())

	var svc *Service
	assert.False(t, svc.Configured())
}
