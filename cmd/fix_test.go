package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/solint/internal/domain"
	domainmocks "github.com/mouse-blink/solint/internal/domain/mocks"
	m "github.com/mouse-blink/solint/internal/model"
)

func TestFixCmd_EnablesFix(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := stubWorkflow(t, mockWorkflow)

	mockWorkflow.On("Lint", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"a.yaml"}, args.Paths) && args.Parallel == 3
	})).Return(domain.Summary{}, nil)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"fix", "--parallel", "3", "a.yaml"})

	require.NoError(t, cmd.Execute())
	assert.True(t, cfg.Fix)
}

func TestFixCmd_RemainingErrorsFail(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	stats := m.Count([]m.Problem{{Kind: m.KindFixed}, {Kind: m.KindError}})
	mockWorkflow.On("Lint", mock.Anything, mock.Anything).Return(domain.Summary{Statistics: stats}, nil)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"fix", "a.yaml"})

	require.ErrorIs(t, cmd.Execute(), errProblemsFound)
}

func TestFixCmd_Metadata(t *testing.T) {
	cmd := newFixCmd()

	assert.Equal(t, "fix FILE...", cmd.Use)
	assert.Equal(t, fixLongDescription, cmd.Long)
	assert.Nil(t, cmd.Flags().Lookup("fix"))
}
