package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
)

func TestApplyMonotonicProgress(t *testing.T) {
	j := JobRecord{ID: "A1", Status: constants.JobStatusProcessing}

	j.Apply(StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30, Step: "Processando itens..."})
	require.Equal(t, 30, j.Progress)

	j.Apply(StatusUpdate{Status: constants.JobStatusProcessing, Progress: 10, Step: "Iniciando auditoria..."})
	require.Equal(t, 30, j.Progress, "progress must never move backwards")

	j.Apply(StatusUpdate{Status: constants.JobStatusProcessing, Progress: 30})
	require.Equal(t, 30, j.Progress)
}

func TestApplyClampsOutOfRange(t *testing.T) {
	j := JobRecord{}
	j.Apply(StatusUpdate{Status: constants.JobStatusProcessing, Progress: 250})
	require.Equal(t, 100, j.Progress)

	j2 := JobRecord{}
	j2.Apply(StatusUpdate{Status: constants.JobStatusProcessing, Progress: -5})
	require.Equal(t, 0, j2.Progress)
}

func TestApplyCompletedForcesFull(t *testing.T) {
	j := JobRecord{Progress: 60}
	j.Apply(StatusUpdate{Status: constants.JobStatusCompleted, Progress: 70})
	require.Equal(t, constants.JobStatusCompleted, j.Status)
	require.Equal(t, 100, j.Progress)
}

func TestApplyErrorKeepsMessage(t *testing.T) {
	j := JobRecord{Progress: 30}
	j.Apply(StatusUpdate{Status: constants.JobStatusError, Error: "bad checksum"})
	require.Equal(t, constants.JobStatusError, j.Status)
	require.Equal(t, "bad checksum", j.ErrorMessage)
	require.Equal(t, 30, j.Progress)
}

func TestApplyKeepsStepWhenEmpty(t *testing.T) {
	j := JobRecord{Step: "Processando itens..."}
	j.Apply(StatusUpdate{Status: constants.JobStatusProcessing, Progress: 40})
	require.Equal(t, "Processando itens...", j.Step)
}

func TestClassifyPassthrough(t *testing.T) {
	orig := NewUploadError("extension not allowed", nil)
	got := Classify(orig, KindTransport)
	require.Same(t, orig, got, "an already classified error keeps its kind")
	require.True(t, IsKind(got, KindUpload))
}

func TestClassifyWrapsRaw(t *testing.T) {
	raw := errors.New("dial tcp: refused")
	got := Classify(raw, KindTransport)
	require.True(t, IsKind(got, KindTransport))
	require.ErrorIs(t, got, raw)
	require.Nil(t, Classify(nil, KindTransport))
}
