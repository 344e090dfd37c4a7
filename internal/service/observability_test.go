package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiUseCaseObserver(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := MultiUseCaseObserver(a, nil, b)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "plan", Success: true})

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.Equal(t, "plan", b.events[0].Name)
}

func TestMultiUseCaseObserver_Collapses(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, MultiUseCaseObserver())
	assert.Equal(t, NoopUseCaseObserver{}, MultiUseCaseObserver(nil))

	only := &recordingObserver{}
	assert.Same(t, only, MultiUseCaseObserver(nil, only))
}
