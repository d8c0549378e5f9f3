package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ruimartins/billow/internal/document"
)

func TestDocumentsTableHeightTracksWindow(t *testing.T) {
	m := NewDocumentsModel(nil, nil, document.TypeInvoice)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 30, updated.(DocumentsModel).table.Height())
}

func TestDocumentsTableHeightClampedOnShortTerminal(t *testing.T) {
	m := NewDocumentsModel(nil, nil, document.TypeInvoice)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 6})
	assert.Equal(t, 3, updated.(DocumentsModel).table.Height())
}
