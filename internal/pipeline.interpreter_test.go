package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSection_StepEventOrdering(t *testing.T) {
	sink := &recordingSink{}
	ct, err := ParseTemplate("{upper|trim}")
	require.NoError(t, err)
	_, err = RenderTemplate(ct, " sam ", sink, true)
	require.NoError(t, err)

	assert.Equal(t, []EventKind{
		EventPipelineStart,
		EventStepStart, EventStepEnd,
		EventStepStart, EventStepEnd,
		EventPipelineEnd,
	}, sink.kinds())
}

func TestEvaluateSection_MapEmitsItemEvents(t *testing.T) {
	sink := &recordingSink{}
	ct, err := ParseTemplate("{split:,:..|map:{upper}}")
	require.NoError(t, err)
	out, err := RenderTemplate(ct, "a,b", sink, true)
	require.NoError(t, err)
	assert.Equal(t, "A,B", out)

	var starts, ends int
	for _, ev := range sink.events {
		switch ev.Kind {
		case EventMapItemStart:
			starts++
		case EventMapItemEnd:
			ends++
		}
	}
	assert.Equal(t, 2, starts)
	assert.Equal(t, 2, ends)
}

func TestEvaluateSection_MapItemErrorWrapsIndex(t *testing.T) {
	ct, err := ParseTemplate(`{split:,:..|map:{slice:5}}`)
	require.NoError(t, err)
	_, err = RenderTemplate(ct, "a,b", nil, false)
	require.Error(t, err)
	pe, ok := err.(*PipelineError)
	require.True(t, ok)
	assert.Equal(t, KindMapItemError, pe.Kind)
}
